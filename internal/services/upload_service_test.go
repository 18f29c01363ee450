package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/TalkBridge-2025/mentorship-service/internal/events"
	"github.com/TalkBridge-2025/mentorship-service/internal/models"
	"github.com/TalkBridge-2025/mentorship-service/internal/repositories"
)

// stubObjectStore fakes object storage uploads
type stubObjectStore struct {
	uploadFn func(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
}

func (s *stubObjectStore) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	return s.uploadFn(ctx, filename, contentType, body)
}

func TestUploadService_UploadVoice(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	ctx := context.Background()

	userRepo := &stubUserRepository{
		getByIDFn: func(ctx context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id}, nil
		},
	}

	t.Run("Stores_Blob_Then_Registers_Record", func(t *testing.T) {
		mockPublisher := events.NewMockEventPublisher(logger)
		store := &stubObjectStore{
			uploadFn: func(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
				return "https://bucket.s3.us-east-1.amazonaws.com/voice/abc.webm", nil
			},
		}
		voiceRepo := &stubVoiceRecordRepository{
			createFn: func(ctx context.Context, record *models.VoiceRecord) error {
				record.ID = 4
				return nil
			},
		}
		repo := &mockRepository{user: userRepo, voice: voiceRepo}
		service := NewUploadService(repo, store, logger, mockPublisher)

		record, err := service.UploadVoice(ctx, &VoiceUpload{
			UserID:          1,
			Filename:        "greeting.webm",
			ContentType:     "audio/webm",
			Body:            strings.NewReader("audio-bytes"),
			DurationSeconds: 12,
			Language:        "hy",
		})
		if err != nil {
			t.Fatalf("Failed to upload voice: %v", err)
		}
		if record.URL != "https://bucket.s3.us-east-1.amazonaws.com/voice/abc.webm" {
			t.Errorf("Expected record to carry the object URL, got %q", record.URL)
		}
		if record.DurationSeconds != 12 {
			t.Errorf("Expected duration 12, got %d", record.DurationSeconds)
		}

		published := mockPublisher.GetPublishedEvents()
		if len(published) != 1 {
			t.Fatalf("Expected 1 event, got %d", len(published))
		}
		if published[0].Type != events.EventVoiceUploaded {
			t.Errorf("Expected event type %q, got %q", events.EventVoiceUploaded, published[0].Type)
		}
	})

	t.Run("Nil_Store_Reports_Not_Configured", func(t *testing.T) {
		repo := &mockRepository{user: userRepo}
		service := NewUploadService(repo, nil, logger, nil)

		_, err := service.UploadVoice(ctx, &VoiceUpload{UserID: 1, Filename: "a.webm"})
		if !errors.Is(err, ErrUploadNotConfigured) {
			t.Fatalf("Expected ErrUploadNotConfigured, got %v", err)
		}
	})

	t.Run("Store_Failure_Becomes_Upstream_Error", func(t *testing.T) {
		store := &stubObjectStore{
			uploadFn: func(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
				return "", errors.New("access denied")
			},
		}
		repo := &mockRepository{user: userRepo}
		service := NewUploadService(repo, store, logger, nil)

		_, err := service.UploadVoice(ctx, &VoiceUpload{UserID: 1, Filename: "a.webm", Body: strings.NewReader("x")})
		var upstream *UpstreamError
		if !errors.As(err, &upstream) {
			t.Fatalf("Expected UpstreamError, got %v", err)
		}
		if upstream.Provider != "storage" {
			t.Errorf("Expected provider 'storage', got %q", upstream.Provider)
		}
	})

	t.Run("Record_Failure_Surfaces_Orphaned_URL", func(t *testing.T) {
		store := &stubObjectStore{
			uploadFn: func(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
				return "https://bucket.s3.us-east-1.amazonaws.com/voice/orphan.webm", nil
			},
		}
		voiceRepo := &stubVoiceRecordRepository{
			createFn: func(ctx context.Context, record *models.VoiceRecord) error {
				return errors.New("insert failed")
			},
		}
		repo := &mockRepository{user: userRepo, voice: voiceRepo}
		service := NewUploadService(repo, store, logger, nil)

		_, err := service.UploadVoice(ctx, &VoiceUpload{UserID: 1, Filename: "a.webm", Body: strings.NewReader("x")})
		if err == nil {
			t.Fatal("Expected error when record insert fails")
		}
		if !strings.Contains(err.Error(), "orphan.webm") {
			t.Errorf("Expected error to name the orphaned object, got %v", err)
		}
	})

	t.Run("Unknown_User_Returns_Not_Found", func(t *testing.T) {
		missingUserRepo := &stubUserRepository{
			getByIDFn: func(ctx context.Context, id uint) (*models.User, error) {
				return nil, repositories.ErrNotFound
			},
		}
		store := &stubObjectStore{
			uploadFn: func(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
				t.Fatal("Upload should not run for an unknown user")
				return "", nil
			},
		}
		repo := &mockRepository{user: missingUserRepo}
		service := NewUploadService(repo, store, logger, nil)

		_, err := service.UploadVoice(ctx, &VoiceUpload{UserID: 99, Filename: "a.webm"})
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("Expected ErrUserNotFound, got %v", err)
		}
	})
}
