package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TalkBridge-2025/mentorship-service/internal/services"
	"github.com/TalkBridge-2025/mentorship-service/internal/utils"
)

type BadgeHandler struct {
	BaseHandler
	badgeService services.BadgeService
}

func NewBadgeHandler(badgeService services.BadgeService, logger utils.Logger) *BadgeHandler {
	return &BadgeHandler{
		BaseHandler:  NewBaseHandler(logger),
		badgeService: badgeService,
	}
}

// AwardBadge grants a badge. Awarding a badge the user already holds
// answers 409 with the literal message "Badge already earned".
func (h *BadgeHandler) AwardBadge(c *gin.Context) {
	var req services.CreateBadgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	badge, err := h.badgeService.Award(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, badge)
}

func (h *BadgeHandler) GetBadge(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	badge, err := h.badgeService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, badge)
}

func (h *BadgeHandler) ListBadgesByUser(c *gin.Context) {
	userID := h.parseIDParam(c, "user_id")
	if userID == 0 {
		return
	}

	badges, err := h.badgeService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, badges)
}

func (h *BadgeHandler) DeleteBadge(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	if err := h.badgeService.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BadgeHandler) handleServiceError(c *gin.Context, err error) {
	if h.handleCommonErrors(c, err) {
		return
	}

	switch {
	case errors.Is(err, services.ErrBadgeAlreadyEarned):
		c.JSON(http.StatusConflict, ErrorResponse{Error: services.ErrBadgeAlreadyEarned.Error()})
	case errors.Is(err, services.ErrBadgeNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Badge not found"})
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
	default:
		h.logger.Error("Badge operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
