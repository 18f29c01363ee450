package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/TalkBridge-2025/mentorship-service/internal/events"
	"github.com/TalkBridge-2025/mentorship-service/internal/models"
	"github.com/TalkBridge-2025/mentorship-service/internal/repositories"
	"github.com/TalkBridge-2025/mentorship-service/internal/validator"
)

type chatService struct {
	repo           repositories.Repository
	db             *gorm.DB
	logger         *slog.Logger
	validator      *validator.Validator
	eventPublisher events.EventPublisher
}

func NewChatService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger, validator *validator.Validator, publisher events.EventPublisher) ChatService {
	return &chatService{
		repo:           repo,
		db:             db,
		logger:         logger,
		validator:      validator,
		eventPublisher: publisher,
	}
}

// CreateSession opens a conversation. At least one participant is required;
// each participant's user ID, role and language are stored verbatim.
func (s *chatService) CreateSession(ctx context.Context, req *CreateSessionRequest) (*models.ChatSession, error) {
	s.logger.Info("Creating chat session", "participants", len(req.Participants))

	if errs := s.validator.GetBusinessValidator().ValidateSessionCreate(req); len(errs) > 0 {
		return nil, errs
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = models.DefaultSessionName
	}

	session := &models.ChatSession{Name: name}
	for _, p := range req.Participants {
		session.Participants = append(session.Participants, models.ChatParticipant{
			UserID:   p.UserID,
			Role:     p.Role,
			Language: p.Language,
		})
	}

	if err := s.repo.Chat().CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create chat session: %w", err)
	}

	s.publishSessionStarted(ctx, session)

	return s.GetSession(ctx, session.ID)
}

func (s *chatService) GetSession(ctx context.Context, id uint) (*models.ChatSession, error) {
	session, err := s.repo.Chat().GetSession(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get chat session: %w", err)
	}
	return session, nil
}

func (s *chatService) ListSessionsByUser(ctx context.Context, userID uint) ([]*models.ChatSession, error) {
	sessions, err := s.repo.Chat().ListSessionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat sessions: %w", err)
	}
	return sessions, nil
}

func (s *chatService) DeleteSession(ctx context.Context, id uint) error {
	if err := s.repo.Chat().DeleteSession(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("failed to delete chat session: %w", err)
	}
	return nil
}

// PostMessage appends a message to a session. The message insert and the
// session's UpdatedAt touch run in one transaction; if either fails the
// whole operation fails and the error is returned, never swallowed.
func (s *chatService) PostMessage(ctx context.Context, req *CreateMessageRequest) (*models.ChatMessage, error) {
	if errs := s.validator.GetBusinessValidator().ValidateMessageCreate(req); len(errs) > 0 {
		return nil, errs
	}

	if _, err := s.repo.Chat().GetSession(ctx, req.SessionID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get chat session: %w", err)
	}

	message := &models.ChatMessage{
		SessionID:          req.SessionID,
		SenderID:           req.SenderID,
		Text:               req.Text,
		Language:           req.Language,
		TranslatedText:     req.TranslatedText,
		TranslatedLanguage: req.TranslatedLanguage,
		IsVoice:            req.IsVoice,
	}

	err := s.repo.WithTransaction(ctx, func(txRepo repositories.Repository) error {
		if err := txRepo.Chat().CreateMessage(ctx, message); err != nil {
			return err
		}
		return txRepo.Chat().TouchSession(ctx, req.SessionID, time.Now())
	})
	if err != nil {
		return nil, fmt.Errorf("failed to post message: %w", err)
	}

	s.publishMessagePosted(ctx, message)

	return message, nil
}

func (s *chatService) ListMessages(ctx context.Context, sessionID uint, filters repositories.MessageFilters) ([]*models.ChatMessage, error) {
	if _, err := s.repo.Chat().GetSession(ctx, sessionID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get chat session: %w", err)
	}

	messages, err := s.repo.Chat().ListMessages(ctx, sessionID, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	return messages, nil
}

// Event publishing is best-effort: a broker outage must not fail the write.

func (s *chatService) publishSessionStarted(ctx context.Context, session *models.ChatSession) {
	if s.eventPublisher == nil {
		return
	}

	event := events.NewEvent(events.EventSessionStarted, map[string]interface{}{
		"session_id":   session.ID,
		"participants": len(session.Participants),
	})
	if err := s.eventPublisher.Publish(ctx, "platform.chat", event); err != nil {
		s.logger.Warn("Failed to publish session started event", "error", err, "session_id", session.ID)
	}
}

func (s *chatService) publishMessagePosted(ctx context.Context, message *models.ChatMessage) {
	if s.eventPublisher == nil {
		return
	}

	event := events.NewEvent(events.EventMessagePosted, events.MessagePostedEvent{
		SessionID: message.SessionID,
		MessageID: message.ID,
		SenderID:  message.SenderID,
		IsVoice:   message.IsVoice,
	})
	if err := s.eventPublisher.Publish(ctx, "platform.chat", event); err != nil {
		s.logger.Warn("Failed to publish message posted event", "error", err, "message_id", message.ID)
	}
}
