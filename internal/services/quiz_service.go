package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/TalkBridge-2025/mentorship-service/internal/events"
	"github.com/TalkBridge-2025/mentorship-service/internal/models"
	"github.com/TalkBridge-2025/mentorship-service/internal/repositories"
	"github.com/TalkBridge-2025/mentorship-service/internal/validator"
)

type quizService struct {
	repo           repositories.Repository
	db             *gorm.DB
	logger         *slog.Logger
	validator      *validator.Validator
	eventPublisher events.EventPublisher
}

func NewQuizService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger, validator *validator.Validator, publisher events.EventPublisher) QuizService {
	return &quizService{
		repo:           repo,
		db:             db,
		logger:         logger,
		validator:      validator,
		eventPublisher: publisher,
	}
}

func (s *quizService) Create(ctx context.Context, req *CreateQuizRequest) (*models.Quiz, error) {
	s.logger.Info("Recording quiz", "user_id", req.UserID, "language", req.Language)

	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	if _, err := s.repo.User().GetByID(ctx, req.UserID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	quiz := &models.Quiz{
		UserID:   req.UserID,
		Title:    req.Title,
		Language: req.Language,
		Score:    req.Score,
	}

	if req.Result != nil {
		payload, err := json.Marshal(req.Result)
		if err != nil {
			return nil, fmt.Errorf("failed to encode quiz result: %w", err)
		}
		quiz.Result = datatypes.JSON(payload)
	}

	if err := s.repo.Quiz().Create(ctx, quiz); err != nil {
		return nil, fmt.Errorf("failed to create quiz: %w", err)
	}

	s.publishCompleted(ctx, quiz)

	return quiz, nil
}

func (s *quizService) GetByID(ctx context.Context, id uint) (*models.Quiz, error) {
	quiz, err := s.repo.Quiz().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}
	return quiz, nil
}

func (s *quizService) ListByUser(ctx context.Context, userID uint) ([]*models.Quiz, error) {
	quizzes, err := s.repo.Quiz().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list quizzes: %w", err)
	}
	return quizzes, nil
}

func (s *quizService) Update(ctx context.Context, id uint, req *UpdateQuizRequest) (*models.Quiz, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	quiz, err := s.repo.Quiz().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}

	if req.Title != nil {
		quiz.Title = *req.Title
	}
	if req.Language != nil {
		quiz.Language = *req.Language
	}
	if req.Score != nil {
		quiz.Score = *req.Score
	}
	if req.Result != nil {
		payload, err := json.Marshal(req.Result)
		if err != nil {
			return nil, fmt.Errorf("failed to encode quiz result: %w", err)
		}
		quiz.Result = datatypes.JSON(payload)
	}
	quiz.UpdatedAt = time.Now()

	if err := s.repo.Quiz().Update(ctx, quiz); err != nil {
		return nil, fmt.Errorf("failed to update quiz: %w", err)
	}

	return quiz, nil
}

func (s *quizService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Quiz().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrQuizNotFound
		}
		return fmt.Errorf("failed to delete quiz: %w", err)
	}
	return nil
}

func (s *quizService) publishCompleted(ctx context.Context, quiz *models.Quiz) {
	if s.eventPublisher == nil {
		return
	}

	event := events.NewEvent(events.EventQuizCompleted, events.QuizCompletedEvent{
		UserID:   quiz.UserID,
		QuizID:   quiz.ID,
		Language: quiz.Language,
		Score:    quiz.Score,
	})
	if err := s.eventPublisher.Publish(ctx, "platform.quizzes", event); err != nil {
		s.logger.Warn("Failed to publish quiz completed event", "error", err, "quiz_id", quiz.ID)
	}
}
