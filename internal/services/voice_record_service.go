package services

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/TalkBridge-2025/mentorship-service/internal/models"
	"github.com/TalkBridge-2025/mentorship-service/internal/repositories"
	"github.com/TalkBridge-2025/mentorship-service/internal/validator"
)

type voiceRecordService struct {
	repo      repositories.Repository
	db        *gorm.DB
	logger    *slog.Logger
	validator *validator.Validator
}

func NewVoiceRecordService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger, validator *validator.Validator) VoiceRecordService {
	return &voiceRecordService{
		repo:      repo,
		db:        db,
		logger:    logger,
		validator: validator,
	}
}

func (s *voiceRecordService) Create(ctx context.Context, req *CreateVoiceRecordRequest) (*models.VoiceRecord, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	if _, err := s.repo.User().GetByID(ctx, req.UserID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	record := &models.VoiceRecord{
		UserID:          req.UserID,
		URL:             req.URL,
		DurationSeconds: req.DurationSeconds,
		Language:        req.Language,
		Transcript:      req.Transcript,
	}

	if err := s.repo.VoiceRecord().Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create voice record: %w", err)
	}

	return record, nil
}

func (s *voiceRecordService) GetByID(ctx context.Context, id uint) (*models.VoiceRecord, error) {
	record, err := s.repo.VoiceRecord().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrVoiceRecordNotFound
		}
		return nil, fmt.Errorf("failed to get voice record: %w", err)
	}
	return record, nil
}

func (s *voiceRecordService) ListByUser(ctx context.Context, userID uint) ([]*models.VoiceRecord, error) {
	records, err := s.repo.VoiceRecord().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list voice records: %w", err)
	}
	return records, nil
}

func (s *voiceRecordService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.VoiceRecord().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrVoiceRecordNotFound
		}
		return fmt.Errorf("failed to delete voice record: %w", err)
	}
	return nil
}
