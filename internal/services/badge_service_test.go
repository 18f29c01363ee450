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

func TestBadgeService_Award(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	v := validator.New()
	ctx := context.Background()

	userRepo := &stubUserRepository{
		getByIDFn: func(ctx context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Name: "Ani", Email: "ani@example.com"}, nil
		},
	}

	t.Run("Awards_New_Badge_And_Publishes_Event", func(t *testing.T) {
		mockPublisher := events.NewMockEventPublisher(logger)
		badgeRepo := &stubBadgeRepository{
			existsFn: func(ctx context.Context, userID uint, name string) (bool, error) {
				return false, nil
			},
			createFn: func(ctx context.Context, badge *models.Badge) error {
				badge.ID = 7
				return nil
			},
		}
		repo := &mockRepository{user: userRepo, badge: badgeRepo}
		service := NewBadgeService(repo, nil, logger, v, mockPublisher)

		badge, err := service.Award(ctx, &CreateBadgeRequest{UserID: 1, Name: "First Quiz"})
		if err != nil {
			t.Fatalf("Failed to award badge: %v", err)
		}
		if badge.ID != 7 {
			t.Errorf("Expected badge ID 7, got %d", badge.ID)
		}

		published := mockPublisher.GetPublishedEvents()
		if len(published) != 1 {
			t.Fatalf("Expected 1 event, got %d", len(published))
		}
		if published[0].Type != events.EventBadgeAwarded {
			t.Errorf("Expected event type %q, got %q", events.EventBadgeAwarded, published[0].Type)
		}
	})

	t.Run("Repeat_Award_Returns_Already_Earned", func(t *testing.T) {
		badgeRepo := &stubBadgeRepository{
			existsFn: func(ctx context.Context, userID uint, name string) (bool, error) {
				return true, nil
			},
			createFn: func(ctx context.Context, badge *models.Badge) error {
				t.Fatal("Create should not be called when badge already exists")
				return nil
			},
		}
		repo := &mockRepository{user: userRepo, badge: badgeRepo}
		service := NewBadgeService(repo, nil, logger, v, nil)

		_, err := service.Award(ctx, &CreateBadgeRequest{UserID: 1, Name: "First Quiz"})
		if !errors.Is(err, ErrBadgeAlreadyEarned) {
			t.Fatalf("Expected ErrBadgeAlreadyEarned, got %v", err)
		}
		if err.Error() != "Badge already earned" {
			t.Errorf("Expected error message 'Badge already earned', got %q", err.Error())
		}
	})

	t.Run("Concurrent_Insert_Duplicate_Maps_To_Already_Earned", func(t *testing.T) {
		badgeRepo := &stubBadgeRepository{
			existsFn: func(ctx context.Context, userID uint, name string) (bool, error) {
				return false, nil
			},
			createFn: func(ctx context.Context, badge *models.Badge) error {
				return repositories.ErrDuplicate
			},
		}
		repo := &mockRepository{user: userRepo, badge: badgeRepo}
		service := NewBadgeService(repo, nil, logger, v, nil)

		_, err := service.Award(ctx, &CreateBadgeRequest{UserID: 1, Name: "First Quiz"})
		if !errors.Is(err, ErrBadgeAlreadyEarned) {
			t.Fatalf("Expected ErrBadgeAlreadyEarned, got %v", err)
		}
	})

	t.Run("Unknown_User_Returns_Not_Found", func(t *testing.T) {
		missingUserRepo := &stubUserRepository{
			getByIDFn: func(ctx context.Context, id uint) (*models.User, error) {
				return nil, repositories.ErrNotFound
			},
		}
		repo := &mockRepository{user: missingUserRepo}
		service := NewBadgeService(repo, nil, logger, v, nil)

		_, err := service.Award(ctx, &CreateBadgeRequest{UserID: 99, Name: "First Quiz"})
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("Expected ErrUserNotFound, got %v", err)
		}
	})
}
