package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/TalkBridge-2025/mentorship-service/internal/events"
	"github.com/TalkBridge-2025/mentorship-service/internal/models"
	"github.com/TalkBridge-2025/mentorship-service/internal/repositories"
	"github.com/TalkBridge-2025/mentorship-service/internal/storage"
)

type uploadService struct {
	repo           repositories.Repository
	store          storage.ObjectStore
	logger         *slog.Logger
	eventPublisher events.EventPublisher
}

func NewUploadService(repo repositories.Repository, store storage.ObjectStore, logger *slog.Logger, publisher events.EventPublisher) UploadService {
	return &uploadService{
		repo:           repo,
		store:          store,
		logger:         logger,
		eventPublisher: publisher,
	}
}

// UploadVoice pushes the blob to object storage, then registers a voice
// record pointing at the resulting URL. The two steps are not atomic: when
// the record insert fails the uploaded object stays behind in the bucket.
// The orphaned URL is logged so it can be cleaned up out of band.
func (s *uploadService) UploadVoice(ctx context.Context, upload *VoiceUpload) (*models.VoiceRecord, error) {
	if s.store == nil {
		return nil, ErrUploadNotConfigured
	}

	if _, err := s.repo.User().GetByID(ctx, upload.UserID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	url, err := s.store.Upload(ctx, upload.Filename, upload.ContentType, upload.Body)
	if err != nil {
		s.logger.Error("Voice upload to object storage failed", "error", err, "user_id", upload.UserID)
		return nil, NewUpstreamError("storage", "upload", "failed to store voice recording", err)
	}

	record := &models.VoiceRecord{
		UserID:          upload.UserID,
		URL:             url,
		DurationSeconds: upload.DurationSeconds,
		Language:        upload.Language,
	}
	if err := s.repo.VoiceRecord().Create(ctx, record); err != nil {
		s.logger.Error("Voice record insert failed after upload, object orphaned", "url", url, "user_id", upload.UserID, "error", err)
		return nil, fmt.Errorf("failed to create voice record for uploaded object %s: %w", url, err)
	}

	s.publishVoiceUploaded(ctx, record)

	return record, nil
}

func (s *uploadService) publishVoiceUploaded(ctx context.Context, record *models.VoiceRecord) {
	if s.eventPublisher == nil {
		return
	}

	event := events.NewEvent(events.EventVoiceUploaded, map[string]interface{}{
		"voice_record_id": record.ID,
		"user_id":         record.UserID,
		"url":             record.URL,
	})
	if err := s.eventPublisher.Publish(ctx, "platform.voice", event); err != nil {
		s.logger.Warn("Failed to publish voice uploaded event", "error", err, "voice_record_id", record.ID)
	}
}
