package services

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/TalkBridge-2025/mentorship-service/internal/events"
	"github.com/TalkBridge-2025/mentorship-service/internal/models"
	"github.com/TalkBridge-2025/mentorship-service/internal/repositories"
	"github.com/TalkBridge-2025/mentorship-service/internal/validator"
)

func TestChatService_CreateSession(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	v := validator.New()
	ctx := context.Background()

	t.Run("Blank_Name_Defaults", func(t *testing.T) {
		var created *models.ChatSession
		chatRepo := &stubChatRepository{
			createSessionFn: func(ctx context.Context, session *models.ChatSession) error {
				session.ID = 3
				created = session
				return nil
			},
			getSessionFn: func(ctx context.Context, id uint) (*models.ChatSession, error) {
				return created, nil
			},
		}
		repo := &mockRepository{chat: chatRepo}
		service := NewChatService(repo, nil, logger, v, nil)

		session, err := service.CreateSession(ctx, &CreateSessionRequest{
			Name:         "   ",
			Participants: []validator.ChatParticipantRequest{{UserID: 1}, {UserID: 2}},
		})
		if err != nil {
			t.Fatalf("Failed to create session: %v", err)
		}
		if session.Name != models.DefaultSessionName {
			t.Errorf("Expected default name %q, got %q", models.DefaultSessionName, session.Name)
		}
		if len(created.Participants) != 2 {
			t.Errorf("Expected 2 participants, got %d", len(created.Participants))
		}
	})

	t.Run("Duplicate_Participants_Rejected", func(t *testing.T) {
		repo := &mockRepository{}
		service := NewChatService(repo, nil, logger, v, nil)

		_, err := service.CreateSession(ctx, &CreateSessionRequest{
			Participants: []validator.ChatParticipantRequest{{UserID: 1}, {UserID: 1}},
		})
		if err == nil {
			t.Fatal("Expected validation error for duplicate participants")
		}
	})

	t.Run("No_Participants_Rejected", func(t *testing.T) {
		repo := &mockRepository{}
		service := NewChatService(repo, nil, logger, v, nil)

		_, err := service.CreateSession(ctx, &CreateSessionRequest{Name: "Study group"})
		if err == nil {
			t.Fatal("Expected validation error for empty participant list")
		}
	})
}

func TestChatService_PostMessage(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	v := validator.New()
	ctx := context.Background()

	t.Run("Inserts_Message_And_Touches_Session", func(t *testing.T) {
		mockPublisher := events.NewMockEventPublisher(logger)
		var touchedID uint
		var touchedAt time.Time
		chatRepo := &stubChatRepository{
			getSessionFn: func(ctx context.Context, id uint) (*models.ChatSession, error) {
				return &models.ChatSession{ID: id, Name: "Practice"}, nil
			},
			createMessageFn: func(ctx context.Context, message *models.ChatMessage) error {
				message.ID = 11
				return nil
			},
			touchSessionFn: func(ctx context.Context, id uint, at time.Time) error {
				touchedID = id
				touchedAt = at
				return nil
			},
		}
		repo := &mockRepository{chat: chatRepo}
		service := NewChatService(repo, nil, logger, v, mockPublisher)

		message, err := service.PostMessage(ctx, &CreateMessageRequest{
			SessionID:          3,
			SenderID:           1,
			Text:               "Barev dzez",
			Language:           "hy",
			TranslatedText:     "Hello there",
			TranslatedLanguage: "en",
		})
		if err != nil {
			t.Fatalf("Failed to post message: %v", err)
		}
		if message.ID != 11 {
			t.Errorf("Expected message ID 11, got %d", message.ID)
		}
		if touchedID != 3 {
			t.Errorf("Expected session 3 touched, got %d", touchedID)
		}
		if touchedAt.IsZero() {
			t.Error("Expected a touch timestamp")
		}

		published := mockPublisher.GetPublishedEvents()
		if len(published) != 1 {
			t.Fatalf("Expected 1 event, got %d", len(published))
		}
		if published[0].Type != events.EventMessagePosted {
			t.Errorf("Expected event type %q, got %q", events.EventMessagePosted, published[0].Type)
		}
	})

	t.Run("Unknown_Session_Returns_Not_Found", func(t *testing.T) {
		chatRepo := &stubChatRepository{
			getSessionFn: func(ctx context.Context, id uint) (*models.ChatSession, error) {
				return nil, repositories.ErrNotFound
			},
		}
		repo := &mockRepository{chat: chatRepo}
		service := NewChatService(repo, nil, logger, v, nil)

		_, err := service.PostMessage(ctx, &CreateMessageRequest{
			SessionID: 99, SenderID: 1, Text: "hi", TranslatedText: "ola", TranslatedLanguage: "es",
		})
		if !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("Expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("Touch_Failure_Fails_The_Post", func(t *testing.T) {
		chatRepo := &stubChatRepository{
			getSessionFn: func(ctx context.Context, id uint) (*models.ChatSession, error) {
				return &models.ChatSession{ID: id}, nil
			},
			createMessageFn: func(ctx context.Context, message *models.ChatMessage) error {
				return nil
			},
			touchSessionFn: func(ctx context.Context, id uint, at time.Time) error {
				return errors.New("connection reset")
			},
		}
		repo := &mockRepository{chat: chatRepo}
		service := NewChatService(repo, nil, logger, v, nil)

		_, err := service.PostMessage(ctx, &CreateMessageRequest{
			SessionID: 3, SenderID: 1, Text: "hi", TranslatedText: "ola", TranslatedLanguage: "es",
		})
		if err == nil {
			t.Fatal("Expected error when session touch fails")
		}
	})

	t.Run("Missing_Translated_Text_Rejected", func(t *testing.T) {
		repo := &mockRepository{}
		service := NewChatService(repo, nil, logger, v, nil)

		_, err := service.PostMessage(ctx, &CreateMessageRequest{
			SessionID: 3,
			SenderID:  1,
			Text:      "hello",
		})
		if err == nil {
			t.Fatal("Expected validation error for missing translated text")
		}
	})

	t.Run("Translated_Text_Requires_Language", func(t *testing.T) {
		repo := &mockRepository{}
		service := NewChatService(repo, nil, logger, v, nil)

		_, err := service.PostMessage(ctx, &CreateMessageRequest{
			SessionID:      3,
			SenderID:       1,
			Text:           "hello",
			TranslatedText: "barev",
		})
		if err == nil {
			t.Fatal("Expected validation error for translated text without language")
		}
	})
}
