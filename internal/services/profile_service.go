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

type profileService struct {
	repo      repositories.Repository
	db        *gorm.DB
	logger    *slog.Logger
	validator *validator.Validator
}

func NewProfileService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger, validator *validator.Validator) ProfileService {
	return &profileService{
		repo:      repo,
		db:        db,
		logger:    logger,
		validator: validator,
	}
}

func (s *profileService) GetByID(ctx context.Context, id uint) (*models.Profile, error) {
	profile, err := s.repo.Profile().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

func (s *profileService) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	profile, err := s.repo.Profile().GetByUserID(ctx, userID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// Update applies the given fields to the user's profile, creating the
// profile if the user does not have one yet.
func (s *profileService) Update(ctx context.Context, userID uint, req *ProfileSaveRequest) (*models.Profile, error) {
	s.logger.Info("Updating profile", "user_id", userID)

	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	if _, err := s.repo.User().GetByID(ctx, userID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	err := s.repo.WithTransaction(ctx, func(txRepo repositories.Repository) error {
		profile, err := txRepo.Profile().GetByUserID(ctx, userID)
		switch {
		case err == nil:
			applyProfileFields(profile, req)
			profile.UpdatedAt = time.Now()
			return txRepo.Profile().Update(ctx, profile)
		case repositories.IsNotFoundError(err):
			return txRepo.Profile().Create(ctx, buildProfile(userID, req))
		default:
			return fmt.Errorf("failed to look up profile: %w", err)
		}
	})
	if err != nil {
		return nil, err
	}

	return s.GetByUserID(ctx, userID)
}

func (s *profileService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Profile().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrProfileNotFound
		}
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}
