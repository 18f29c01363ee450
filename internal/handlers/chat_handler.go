package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TalkBridge-2025/mentorship-service/internal/repositories"
	"github.com/TalkBridge-2025/mentorship-service/internal/services"
	"github.com/TalkBridge-2025/mentorship-service/internal/utils"
)

type ChatHandler struct {
	BaseHandler
	chatService services.ChatService
}

func NewChatHandler(chatService services.ChatService, logger utils.Logger) *ChatHandler {
	return &ChatHandler{
		BaseHandler: NewBaseHandler(logger),
		chatService: chatService,
	}
}

func (h *ChatHandler) CreateSession(c *gin.Context) {
	var req services.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	session, err := h.chatService.CreateSession(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, session)
}

func (h *ChatHandler) GetSession(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	session, err := h.chatService.GetSession(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// ListSessionsByUser returns the user's sessions, most recently active first
func (h *ChatHandler) ListSessionsByUser(c *gin.Context) {
	userID := h.parseIDParam(c, "user_id")
	if userID == 0 {
		return
	}

	sessions, err := h.chatService.ListSessionsByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sessions)
}

func (h *ChatHandler) DeleteSession(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	if err := h.chatService.DeleteSession(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// PostMessage appends a message and bumps the session's activity timestamp
func (h *ChatHandler) PostMessage(c *gin.Context) {
	var req services.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	message, err := h.chatService.PostMessage(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, message)
}

// ListMessages returns a session's messages, oldest first
func (h *ChatHandler) ListMessages(c *gin.Context) {
	sessionID := h.parseIDParam(c, "id")
	if sessionID == 0 {
		return
	}

	filters := repositories.MessageFilters{
		SenderID: h.parseUintQuery(c, "sender_id"),
		Limit:    h.parseIntQuery(c, "limit", 0),
		Offset:   h.parseIntQuery(c, "offset", 0),
	}

	messages, err := h.chatService.ListMessages(c.Request.Context(), sessionID, filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

func (h *ChatHandler) handleServiceError(c *gin.Context, err error) {
	if h.handleCommonErrors(c, err) {
		return
	}

	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Chat session not found"})
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
	default:
		h.logger.Error("Chat operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
