package services

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/TalkBridge-2025/mentorship-service/internal/events"
	"github.com/TalkBridge-2025/mentorship-service/internal/models"
	"github.com/TalkBridge-2025/mentorship-service/internal/repositories"
	"github.com/TalkBridge-2025/mentorship-service/internal/validator"
)

func TestUserService_Create(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	v := validator.New()
	ctx := context.Background()

	t.Run("New_Email_Creates_User_And_Publishes_Event", func(t *testing.T) {
		mockPublisher := events.NewMockEventPublisher(logger)
		userRepo := &stubUserRepository{
			getByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
				return nil, repositories.ErrNotFound
			},
			createFn: func(ctx context.Context, user *models.User) error {
				user.ID = 42
				return nil
			},
			getByIDFn: func(ctx context.Context, id uint) (*models.User, error) {
				return &models.User{ID: id, Name: "Ani", Email: "ani@example.com"}, nil
			},
		}
		repo := &mockRepository{user: userRepo}
		service := NewUserService(repo, nil, logger, v, mockPublisher)

		user, err := service.Create(ctx, &CreateUserRequest{Name: "Ani", Email: "ani@example.com"})
		if err != nil {
			t.Fatalf("Failed to create user: %v", err)
		}
		if user.ID != 42 {
			t.Errorf("Expected user ID 42, got %d", user.ID)
		}

		published := mockPublisher.GetPublishedEvents()
		if len(published) != 1 {
			t.Fatalf("Expected 1 event, got %d", len(published))
		}
		if published[0].Type != events.EventUserRegistered {
			t.Errorf("Expected event type %q, got %q", events.EventUserRegistered, published[0].Type)
		}
	})

	t.Run("Existing_Email_Updates_In_Place", func(t *testing.T) {
		mockPublisher := events.NewMockEventPublisher(logger)
		var updated *models.User
		userRepo := &stubUserRepository{
			getByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
				return &models.User{ID: 5, Name: "Old Name", Email: email}, nil
			},
			createFn: func(ctx context.Context, user *models.User) error {
				t.Fatal("Create should not be called for an existing email")
				return nil
			},
			updateFn: func(ctx context.Context, user *models.User) error {
				updated = user
				return nil
			},
			getByIDFn: func(ctx context.Context, id uint) (*models.User, error) {
				return &models.User{ID: id, Name: "New Name", Email: "ani@example.com"}, nil
			},
		}
		repo := &mockRepository{user: userRepo}
		service := NewUserService(repo, nil, logger, v, mockPublisher)

		user, err := service.Create(ctx, &CreateUserRequest{Name: "New Name", Email: "ani@example.com"})
		if err != nil {
			t.Fatalf("Failed to upsert user: %v", err)
		}
		if user.ID != 5 {
			t.Errorf("Expected original user ID 5, got %d", user.ID)
		}
		if updated == nil || updated.Name != "New Name" {
			t.Errorf("Expected existing user renamed to 'New Name', got %+v", updated)
		}
		if published := mockPublisher.GetPublishedEvents(); len(published) != 0 {
			t.Errorf("Expected no registration event for an update, got %d", len(published))
		}
	})

	t.Run("Existing_Email_Creates_Missing_Profile", func(t *testing.T) {
		var createdProfile *models.Profile
		userRepo := &stubUserRepository{
			getByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
				return &models.User{ID: 5, Name: "Ani", Email: email}, nil
			},
			updateFn: func(ctx context.Context, user *models.User) error { return nil },
			getByIDFn: func(ctx context.Context, id uint) (*models.User, error) {
				return &models.User{ID: id}, nil
			},
		}
		profileRepo := &stubProfileRepository{
			getByUserIDFn: func(ctx context.Context, userID uint) (*models.Profile, error) {
				return nil, repositories.ErrNotFound
			},
			createFn: func(ctx context.Context, profile *models.Profile) error {
				createdProfile = profile
				return nil
			},
		}
		repo := &mockRepository{user: userRepo, profile: profileRepo}
		service := NewUserService(repo, nil, logger, v, nil)

		bio := "Language mentor"
		_, err := service.Create(ctx, &CreateUserRequest{
			Name:    "Ani",
			Email:   "ani@example.com",
			Profile: &ProfileSaveRequest{Bio: &bio, Languages: []string{"hy", "en"}},
		})
		if err != nil {
			t.Fatalf("Failed to upsert user with profile: %v", err)
		}
		if createdProfile == nil {
			t.Fatal("Expected a profile to be created for the existing user")
		}
		if createdProfile.UserID != 5 {
			t.Errorf("Expected profile bound to user 5, got %d", createdProfile.UserID)
		}
		if createdProfile.Bio != "Language mentor" {
			t.Errorf("Expected bio applied, got %q", createdProfile.Bio)
		}
	})

	t.Run("Blank_Name_Rejected", func(t *testing.T) {
		repo := &mockRepository{}
		service := NewUserService(repo, nil, logger, v, nil)

		_, err := service.Create(ctx, &CreateUserRequest{Name: "   ", Email: "ani@example.com"})
		if err == nil {
			t.Fatal("Expected validation error for blank name")
		}
	})
}

func TestUserService_List_Defaults(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	v := validator.New()

	var seenFilters repositories.UserFilters
	userRepo := &stubUserRepository{}
	repo := &mockRepository{user: &capturingListRepo{stubUserRepository: userRepo, capture: &seenFilters}}
	service := NewUserService(repo, nil, logger, v, nil)

	resp, err := service.List(context.Background(), repositories.UserFilters{Limit: 0, Offset: 40})
	if err != nil {
		t.Fatalf("Failed to list users: %v", err)
	}
	if seenFilters.Limit != 20 {
		t.Errorf("Expected default limit 20, got %d", seenFilters.Limit)
	}
	if resp.Page != 3 {
		t.Errorf("Expected page 3 for offset 40 with limit 20, got %d", resp.Page)
	}
}

// capturingListRepo records the filters List receives
type capturingListRepo struct {
	*stubUserRepository
	capture *repositories.UserFilters
}

func (c *capturingListRepo) List(ctx context.Context, filters repositories.UserFilters) ([]*models.User, int64, error) {
	*c.capture = filters
	return []*models.User{}, 0, nil
}

func TestUserService_SyncFromIdentity(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	v := validator.New()
	ctx := context.Background()

	t.Run("Known_Subject_Resolves_To_Local_User", func(t *testing.T) {
		userRepo := &stubUserRepository{
			getByAuthIDFn: func(ctx context.Context, authID string) (*models.User, error) {
				return &models.User{ID: 7, Name: "Ani", AuthID: authID}, nil
			},
		}
		identityRepo := &stubIdentityRepository{
			validateFn: func(ctx context.Context, authID string) (bool, error) {
				return true, nil
			},
		}
		repo := &mockRepository{user: userRepo, identity: identityRepo}
		service := NewUserService(repo, nil, logger, v, nil)

		user, err := service.SyncFromIdentity(ctx, "cas-7")
		if err != nil {
			t.Fatalf("Failed to sync identity: %v", err)
		}
		if user.ID != 7 {
			t.Errorf("Expected user ID 7, got %d", user.ID)
		}
	})

	t.Run("Disabled_Identity_Rejected", func(t *testing.T) {
		userRepo := &stubUserRepository{
			getByAuthIDFn: func(ctx context.Context, authID string) (*models.User, error) {
				return &models.User{ID: 7, AuthID: authID}, nil
			},
		}
		identityRepo := &stubIdentityRepository{
			validateFn: func(ctx context.Context, authID string) (bool, error) {
				return false, nil
			},
		}
		repo := &mockRepository{user: userRepo, identity: identityRepo}
		service := NewUserService(repo, nil, logger, v, nil)

		_, err := service.SyncFromIdentity(ctx, "cas-7")
		if !errors.Is(err, ErrIdentityDisabled) {
			t.Fatalf("Expected ErrIdentityDisabled, got %v", err)
		}
	})

	t.Run("First_Sight_Provisions_User", func(t *testing.T) {
		mockPublisher := events.NewMockEventPublisher(logger)
		var created *models.User
		userRepo := &stubUserRepository{
			getByAuthIDFn: func(ctx context.Context, authID string) (*models.User, error) {
				return nil, repositories.ErrNotFound
			},
			getByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
				return nil, repositories.ErrNotFound
			},
			createFn: func(ctx context.Context, user *models.User) error {
				user.ID = 21
				created = user
				return nil
			},
			getByIDFn: func(ctx context.Context, id uint) (*models.User, error) {
				return created, nil
			},
		}
		identityRepo := &stubIdentityRepository{
			getByAuthIDFn: func(ctx context.Context, authID string) (*models.Identity, error) {
				return &models.Identity{
					AuthID:      authID,
					Name:        "ani",
					DisplayName: "Ani Petrosyan",
					Email:       "ani@example.com",
				}, nil
			},
		}
		repo := &mockRepository{user: userRepo, identity: identityRepo}
		service := NewUserService(repo, nil, logger, v, mockPublisher)

		user, err := service.SyncFromIdentity(ctx, "cas-21")
		if err != nil {
			t.Fatalf("Failed to provision from identity: %v", err)
		}
		if user.ID != 21 {
			t.Errorf("Expected user ID 21, got %d", user.ID)
		}
		if created.AuthID != "cas-21" {
			t.Errorf("Expected auth ID carried onto the user, got %q", created.AuthID)
		}
		if created.Name != "Ani Petrosyan" {
			t.Errorf("Expected display name used, got %q", created.Name)
		}

		published := mockPublisher.GetPublishedEvents()
		if len(published) != 1 {
			t.Fatalf("Expected 1 event, got %d", len(published))
		}
		if published[0].Type != events.EventUserRegistered {
			t.Errorf("Expected event type %q, got %q", events.EventUserRegistered, published[0].Type)
		}
	})

	t.Run("Provisioning_Links_Existing_Email", func(t *testing.T) {
		var linked *models.User
		userRepo := &stubUserRepository{
			getByAuthIDFn: func(ctx context.Context, authID string) (*models.User, error) {
				return nil, repositories.ErrNotFound
			},
			getByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
				return &models.User{ID: 5, Name: "Ani", Email: email}, nil
			},
			updateFn: func(ctx context.Context, user *models.User) error {
				linked = user
				return nil
			},
			getByIDFn: func(ctx context.Context, id uint) (*models.User, error) {
				return &models.User{ID: id, Name: "Ani", AuthID: "cas-5"}, nil
			},
			createFn: func(ctx context.Context, user *models.User) error {
				t.Fatal("Create must not run for an existing email")
				return nil
			},
		}
		identityRepo := &stubIdentityRepository{
			getByAuthIDFn: func(ctx context.Context, authID string) (*models.Identity, error) {
				return &models.Identity{AuthID: authID, DisplayName: "Ani", Email: "ani@example.com"}, nil
			},
		}
		repo := &mockRepository{user: userRepo, identity: identityRepo}
		service := NewUserService(repo, nil, logger, v, nil)

		user, err := service.SyncFromIdentity(ctx, "cas-5")
		if err != nil {
			t.Fatalf("Failed to link identity: %v", err)
		}
		if user.ID != 5 {
			t.Errorf("Expected existing user ID 5, got %d", user.ID)
		}
		if linked == nil || linked.AuthID != "cas-5" {
			t.Errorf("Expected auth ID linked onto the existing user, got %+v", linked)
		}
	})

	t.Run("Unknown_Identity_Rejected", func(t *testing.T) {
		userRepo := &stubUserRepository{
			getByAuthIDFn: func(ctx context.Context, authID string) (*models.User, error) {
				return nil, repositories.ErrNotFound
			},
		}
		identityRepo := &stubIdentityRepository{
			getByAuthIDFn: func(ctx context.Context, authID string) (*models.Identity, error) {
				return nil, repositories.ErrNotFound
			},
		}
		repo := &mockRepository{user: userRepo, identity: identityRepo}
		service := NewUserService(repo, nil, logger, v, nil)

		_, err := service.SyncFromIdentity(ctx, "cas-404")
		if !errors.Is(err, ErrIdentityNotFound) {
			t.Fatalf("Expected ErrIdentityNotFound, got %v", err)
		}
	})
}
