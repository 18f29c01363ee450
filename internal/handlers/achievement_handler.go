package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TalkBridge-2025/mentorship-service/internal/services"
	"github.com/TalkBridge-2025/mentorship-service/internal/utils"
)

type AchievementHandler struct {
	BaseHandler
	achievementService services.AchievementService
}

func NewAchievementHandler(achievementService services.AchievementService, logger utils.Logger) *AchievementHandler {
	return &AchievementHandler{
		BaseHandler:        NewBaseHandler(logger),
		achievementService: achievementService,
	}
}

func (h *AchievementHandler) CreateAchievement(c *gin.Context) {
	var req services.CreateAchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	achievement, err := h.achievementService.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, achievement)
}

func (h *AchievementHandler) GetAchievement(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	achievement, err := h.achievementService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, achievement)
}

func (h *AchievementHandler) ListAchievementsByUser(c *gin.Context) {
	userID := h.parseIDParam(c, "user_id")
	if userID == 0 {
		return
	}

	achievements, err := h.achievementService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, achievements)
}

func (h *AchievementHandler) UpdateAchievement(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	var req services.UpdateAchievementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	achievement, err := h.achievementService.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, achievement)
}

func (h *AchievementHandler) DeleteAchievement(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	if err := h.achievementService.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AchievementHandler) handleServiceError(c *gin.Context, err error) {
	if h.handleCommonErrors(c, err) {
		return
	}

	switch {
	case errors.Is(err, services.ErrAchievementNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Achievement not found"})
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
	default:
		h.logger.Error("Achievement operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
