package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/TalkBridge-2025/mentorship-service/internal/models"
	"github.com/TalkBridge-2025/mentorship-service/internal/repositories"
	"github.com/TalkBridge-2025/mentorship-service/internal/validator"
)

type achievementService struct {
	repo      repositories.Repository
	db        *gorm.DB
	logger    *slog.Logger
	validator *validator.Validator
}

func NewAchievementService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger, validator *validator.Validator) AchievementService {
	return &achievementService{
		repo:      repo,
		db:        db,
		logger:    logger,
		validator: validator,
	}
}

func (s *achievementService) Create(ctx context.Context, req *CreateAchievementRequest) (*models.Achievement, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	if _, err := s.repo.User().GetByID(ctx, req.UserID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	achievement := &models.Achievement{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		EarnedAt:    req.EarnedAt,
	}

	if err := s.repo.Achievement().Create(ctx, achievement); err != nil {
		return nil, fmt.Errorf("failed to create achievement: %w", err)
	}

	return achievement, nil
}

func (s *achievementService) GetByID(ctx context.Context, id uint) (*models.Achievement, error) {
	achievement, err := s.repo.Achievement().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrAchievementNotFound
		}
		return nil, fmt.Errorf("failed to get achievement: %w", err)
	}
	return achievement, nil
}

func (s *achievementService) ListByUser(ctx context.Context, userID uint) ([]*models.Achievement, error) {
	achievements, err := s.repo.Achievement().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}
	return achievements, nil
}

func (s *achievementService) Update(ctx context.Context, id uint, req *UpdateAchievementRequest) (*models.Achievement, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	achievement, err := s.repo.Achievement().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrAchievementNotFound
		}
		return nil, fmt.Errorf("failed to get achievement: %w", err)
	}

	if req.Title != nil {
		achievement.Title = *req.Title
	}
	if req.Description != nil {
		achievement.Description = *req.Description
	}
	if req.Icon != nil {
		achievement.Icon = *req.Icon
	}
	if req.EarnedAt != nil {
		achievement.EarnedAt = req.EarnedAt
	}
	achievement.UpdatedAt = time.Now()

	if err := s.repo.Achievement().Update(ctx, achievement); err != nil {
		return nil, fmt.Errorf("failed to update achievement: %w", err)
	}

	return achievement, nil
}

func (s *achievementService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Achievement().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrAchievementNotFound
		}
		return fmt.Errorf("failed to delete achievement: %w", err)
	}
	return nil
}
