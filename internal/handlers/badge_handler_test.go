package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/TalkBridge-2025/mentorship-service/internal/models"
	"github.com/TalkBridge-2025/mentorship-service/internal/services"
	"github.com/TalkBridge-2025/mentorship-service/internal/utils"
)

// stubBadgeService implements services.BadgeService via function fields
type stubBadgeService struct {
	awardFn func(ctx context.Context, req *services.CreateBadgeRequest) (*models.Badge, error)
}

func (s *stubBadgeService) Award(ctx context.Context, req *services.CreateBadgeRequest) (*models.Badge, error) {
	return s.awardFn(ctx, req)
}

func (s *stubBadgeService) GetByID(ctx context.Context, id uint) (*models.Badge, error) {
	return nil, services.ErrBadgeNotFound
}

func (s *stubBadgeService) ListByUser(ctx context.Context, userID uint) ([]*models.Badge, error) {
	return nil, nil
}

func (s *stubBadgeService) Delete(ctx context.Context, id uint) error { return nil }

func newBadgeTestRouter(service services.BadgeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := utils.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stdout, nil)))
	handler := NewBadgeHandler(service, logger)

	router := gin.New()
	router.POST("/badges", handler.AwardBadge)
	return router
}

func TestBadgeHandler_AwardBadge(t *testing.T) {
	t.Run("Created_Returns_201", func(t *testing.T) {
		service := &stubBadgeService{
			awardFn: func(ctx context.Context, req *services.CreateBadgeRequest) (*models.Badge, error) {
				return &models.Badge{ID: 7, UserID: req.UserID, Name: req.Name}, nil
			},
		}
		router := newBadgeTestRouter(service)

		body := strings.NewReader(`{"user_id": 1, "name": "First Quiz"}`)
		req := httptest.NewRequest(http.MethodPost, "/badges", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("Repeat_Award_Returns_409_With_Message", func(t *testing.T) {
		service := &stubBadgeService{
			awardFn: func(ctx context.Context, req *services.CreateBadgeRequest) (*models.Badge, error) {
				return nil, services.ErrBadgeAlreadyEarned
			},
		}
		router := newBadgeTestRouter(service)

		body := strings.NewReader(`{"user_id": 1, "name": "First Quiz"}`)
		req := httptest.NewRequest(http.MethodPost, "/badges", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("Expected 409, got %d: %s", w.Code, w.Body.String())
		}

		var resp ErrorResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if resp.Error != "Badge already earned" {
			t.Errorf("Expected error 'Badge already earned', got %q", resp.Error)
		}
	})

	t.Run("Malformed_Payload_Returns_400", func(t *testing.T) {
		service := &stubBadgeService{
			awardFn: func(ctx context.Context, req *services.CreateBadgeRequest) (*models.Badge, error) {
				t.Fatal("Award should not be called for a malformed payload")
				return nil, nil
			},
		}
		router := newBadgeTestRouter(service)

		req := httptest.NewRequest(http.MethodPost, "/badges", strings.NewReader(`{not json`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("Expected 400, got %d", w.Code)
		}
	})
}
