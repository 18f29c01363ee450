package services

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/TalkBridge-2025/mentorship-service/internal/events"
	"github.com/TalkBridge-2025/mentorship-service/internal/models"
	"github.com/TalkBridge-2025/mentorship-service/internal/repositories"
	"github.com/TalkBridge-2025/mentorship-service/internal/validator"
)

type badgeService struct {
	repo           repositories.Repository
	db             *gorm.DB
	logger         *slog.Logger
	validator      *validator.Validator
	eventPublisher events.EventPublisher
}

func NewBadgeService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger, validator *validator.Validator, publisher events.EventPublisher) BadgeService {
	return &badgeService{
		repo:           repo,
		db:             db,
		logger:         logger,
		validator:      validator,
		eventPublisher: publisher,
	}
}

// Award grants a badge to a user. Each badge name can be held once per user;
// repeat awards fail with ErrBadgeAlreadyEarned. The uniqueness is ultimately
// enforced by the (user_id, name) index, so concurrent awards cannot slip
// past the existence check.
func (s *badgeService) Award(ctx context.Context, req *CreateBadgeRequest) (*models.Badge, error) {
	s.logger.Info("Awarding badge", "user_id", req.UserID, "name", req.Name)

	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	if _, err := s.repo.User().GetByID(ctx, req.UserID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	exists, err := s.repo.Badge().ExistsByUserAndName(ctx, req.UserID, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check badge: %w", err)
	}
	if exists {
		return nil, ErrBadgeAlreadyEarned
	}

	badge := &models.Badge{
		UserID:      req.UserID,
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
	}

	if err := s.repo.Badge().Create(ctx, badge); err != nil {
		if repositories.IsDuplicateError(err) {
			return nil, ErrBadgeAlreadyEarned
		}
		return nil, fmt.Errorf("failed to create badge: %w", err)
	}

	s.publishAwarded(ctx, badge)

	return badge, nil
}

func (s *badgeService) GetByID(ctx context.Context, id uint) (*models.Badge, error) {
	badge, err := s.repo.Badge().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrBadgeNotFound
		}
		return nil, fmt.Errorf("failed to get badge: %w", err)
	}
	return badge, nil
}

func (s *badgeService) ListByUser(ctx context.Context, userID uint) ([]*models.Badge, error) {
	badges, err := s.repo.Badge().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list badges: %w", err)
	}
	return badges, nil
}

func (s *badgeService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Badge().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrBadgeNotFound
		}
		return fmt.Errorf("failed to delete badge: %w", err)
	}
	return nil
}

func (s *badgeService) publishAwarded(ctx context.Context, badge *models.Badge) {
	if s.eventPublisher == nil {
		return
	}

	event := events.NewEvent(events.EventBadgeAwarded, events.BadgeAwardedEvent{
		UserID:    badge.UserID,
		BadgeID:   badge.ID,
		BadgeName: badge.Name,
	})
	if err := s.eventPublisher.Publish(ctx, "platform.badges", event); err != nil {
		s.logger.Warn("Failed to publish badge awarded event", "error", err, "badge_id", badge.ID)
	}
}
