package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/TalkBridge-2025/mentorship-service/internal/events"
	"github.com/TalkBridge-2025/mentorship-service/internal/models"
	"github.com/TalkBridge-2025/mentorship-service/internal/repositories"
	"github.com/TalkBridge-2025/mentorship-service/internal/validator"
)

type userService struct {
	repo           repositories.Repository
	db             *gorm.DB
	logger         *slog.Logger
	validator      *validator.Validator
	eventPublisher events.EventPublisher
}

func NewUserService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger, validator *validator.Validator, publisher events.EventPublisher) UserService {
	return &userService{
		repo:           repo,
		db:             db,
		logger:         logger,
		validator:      validator,
		eventPublisher: publisher,
	}
}

// Create registers a user. Posting an email that already exists degrades to
// an update of that user and an update-or-create of its profile, keeping the
// original user ID. The lookup and write run in one transaction.
func (s *userService) Create(ctx context.Context, req *CreateUserRequest) (*models.User, error) {
	s.logger.Info("Creating user", "email", req.Email)

	if errs := s.validator.GetBusinessValidator().ValidateUserCreate(req); len(errs) > 0 {
		return nil, errs
	}

	var userID uint
	var created bool
	err := s.repo.WithTransaction(ctx, func(txRepo repositories.Repository) error {
		existing, err := txRepo.User().GetByEmail(ctx, req.Email)
		switch {
		case err == nil:
			userID = existing.ID
			return s.applyToExisting(ctx, txRepo, existing, req)
		case repositories.IsNotFoundError(err):
			user := &models.User{
				Name:      req.Name,
				Email:     req.Email,
				AvatarURL: req.AvatarURL,
			}
			if req.AuthID != nil {
				user.AuthID = *req.AuthID
			}
			if req.Profile != nil {
				user.Profile = buildProfile(0, req.Profile)
			}
			if err := txRepo.User().Create(ctx, user); err != nil {
				return err
			}
			userID = user.ID
			created = true
			return nil
		default:
			return fmt.Errorf("failed to look up user by email: %w", err)
		}
	})
	if err != nil {
		return nil, err
	}

	if created {
		s.publishRegistered(ctx, userID, req.Email)
	}

	return s.GetByID(ctx, userID)
}

// applyToExisting updates account fields and performs the profile
// update-or-create half of the email upsert.
func (s *userService) applyToExisting(ctx context.Context, txRepo repositories.Repository, user *models.User, req *CreateUserRequest) error {
	user.Name = req.Name
	if req.AvatarURL != nil {
		user.AvatarURL = req.AvatarURL
	}
	if req.AuthID != nil {
		user.AuthID = *req.AuthID
	}
	user.UpdatedAt = time.Now()

	if err := txRepo.User().Update(ctx, user); err != nil {
		return err
	}

	if req.Profile == nil {
		return nil
	}

	profile, err := txRepo.Profile().GetByUserID(ctx, user.ID)
	switch {
	case err == nil:
		applyProfileFields(profile, req.Profile)
		profile.UpdatedAt = time.Now()
		return txRepo.Profile().Update(ctx, profile)
	case repositories.IsNotFoundError(err):
		return txRepo.Profile().Create(ctx, buildProfile(user.ID, req.Profile))
	default:
		return fmt.Errorf("failed to look up profile: %w", err)
	}
}

func (s *userService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.repo.User().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *userService) GetByIDWithRelations(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.repo.User().GetByIDWithRelations(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user with relations: %w", err)
	}
	return user, nil
}

func (s *userService) List(ctx context.Context, filters repositories.UserFilters) (*UserListResponse, error) {
	if filters.Limit <= 0 {
		filters.Limit = 20
	}
	if filters.Limit > 100 {
		filters.Limit = 100
	}

	users, total, err := s.repo.User().List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	page := (filters.Offset / filters.Limit) + 1
	return &UserListResponse{
		Users: users,
		Total: total,
		Page:  page,
		Size:  filters.Limit,
	}, nil
}

func (s *userService) Update(ctx context.Context, id uint, req *UpdateUserRequest) (*models.User, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	user, err := s.repo.User().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.AvatarURL != nil {
		user.AvatarURL = req.AvatarURL
	}
	user.UpdatedAt = time.Now()

	if err := s.repo.User().Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return s.GetByID(ctx, id)
}

func (s *userService) Delete(ctx context.Context, id uint) error {
	s.logger.Info("Deleting user", "user_id", id)

	if err := s.repo.User().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (s *userService) ListMentors(ctx context.Context) ([]*models.User, error) {
	mentors, err := s.repo.User().ListMentors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list mentors: %w", err)
	}
	return mentors, nil
}

// PromoteToMentor sets the user's profile expertise. A user without a
// profile gets one created as part of the promotion.
func (s *userService) PromoteToMentor(ctx context.Context, req *PromoteMentorRequest) (*models.User, error) {
	s.logger.Info("Promoting user to mentor", "user_id", req.UserID)

	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	if _, err := s.repo.User().GetByID(ctx, req.UserID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	err := s.repo.WithTransaction(ctx, func(txRepo repositories.Repository) error {
		profile, err := txRepo.Profile().GetByUserID(ctx, req.UserID)
		switch {
		case err == nil:
			profile.Expertise = &req.Expertise
			if req.Bio != nil {
				profile.Bio = *req.Bio
			}
			if req.Languages != nil {
				profile.Languages = models.StringList(req.Languages)
			}
			profile.UpdatedAt = time.Now()
			return txRepo.Profile().Update(ctx, profile)
		case repositories.IsNotFoundError(err):
			newProfile := &models.Profile{
				UserID:    req.UserID,
				Expertise: &req.Expertise,
				Languages: models.StringList(req.Languages),
			}
			if req.Bio != nil {
				newProfile.Bio = *req.Bio
			}
			return txRepo.Profile().Create(ctx, newProfile)
		default:
			return fmt.Errorf("failed to look up profile: %w", err)
		}
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(ctx, req.UserID)
}

// SyncFromIdentity links a provider-side identity to a local user row. A
// subject seen before resolves to its existing user after a liveness check
// against the provider; a new subject is provisioned through the email
// upsert, so an account created earlier through the API gets linked rather
// than duplicated.
func (s *userService) SyncFromIdentity(ctx context.Context, authID string) (*models.User, error) {
	identityRepo := s.repo.Identity()
	if identityRepo == nil {
		return nil, fmt.Errorf("identity provider not configured")
	}

	user, err := s.repo.User().GetByAuthID(ctx, authID)
	switch {
	case err == nil:
		active, err := identityRepo.Validate(ctx, authID)
		if err != nil {
			return nil, NewUpstreamError("identity", "validate", "failed to validate identity", err)
		}
		if !active {
			return nil, ErrIdentityDisabled
		}
		return user, nil
	case repositories.IsNotFoundError(err):
		return s.provisionFromIdentity(ctx, authID)
	default:
		return nil, fmt.Errorf("failed to look up user by auth id: %w", err)
	}
}

func (s *userService) provisionFromIdentity(ctx context.Context, authID string) (*models.User, error) {
	identity, err := s.repo.Identity().GetByAuthID(ctx, authID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrIdentityNotFound
		}
		return nil, NewUpstreamError("identity", "fetch", "failed to fetch identity", err)
	}
	if !identity.Active() {
		return nil, ErrIdentityDisabled
	}

	s.logger.Info("Provisioning user from identity", "auth_id", authID, "email", identity.Email)

	req := &CreateUserRequest{
		Name:   identity.DisplayName,
		Email:  identity.Email,
		AuthID: &identity.AuthID,
	}
	if req.Name == "" {
		req.Name = identity.Name
	}
	if identity.AvatarURL != "" {
		req.AvatarURL = &identity.AvatarURL
	}

	return s.Create(ctx, req)
}

func (s *userService) publishRegistered(ctx context.Context, userID uint, email string) {
	if s.eventPublisher == nil {
		return
	}

	event := events.NewEvent(events.EventUserRegistered, events.UserRegisteredEvent{
		UserID: userID,
		Email:  email,
	})
	if err := s.eventPublisher.Publish(ctx, "platform.users", event); err != nil {
		s.logger.Warn("Failed to publish user registered event", "error", err, "user_id", userID)
	}
}

func buildProfile(userID uint, req *ProfileSaveRequest) *models.Profile {
	profile := &models.Profile{
		UserID:    userID,
		Expertise: req.Expertise,
		Languages: models.StringList(req.Languages),
		Interests: models.StringList(req.Interests),
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Contact != nil {
		profile.Contact = *req.Contact
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	return profile
}

func applyProfileFields(profile *models.Profile, req *ProfileSaveRequest) {
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Contact != nil {
		profile.Contact = *req.Contact
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	if req.Expertise != nil {
		profile.Expertise = req.Expertise
	}
	if req.Languages != nil {
		profile.Languages = models.StringList(req.Languages)
	}
	if req.Interests != nil {
		profile.Interests = models.StringList(req.Interests)
	}
}
