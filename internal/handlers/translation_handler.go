package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TalkBridge-2025/mentorship-service/internal/services"
	"github.com/TalkBridge-2025/mentorship-service/internal/utils"
)

type TranslationHandler struct {
	BaseHandler
	translationService services.TranslationService
}

func NewTranslationHandler(translationService services.TranslationService, logger utils.Logger) *TranslationHandler {
	return &TranslationHandler{
		BaseHandler:        NewBaseHandler(logger),
		translationService: translationService,
	}
}

// Translate forwards one text to the translation provider. One provider
// call per request; nothing is cached or retried.
func (h *TranslationHandler) Translate(c *gin.Context) {
	var req services.TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	resp, err := h.translationService.Translate(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// TranslateQuery serves the same translation over GET with query parameters.
func (h *TranslationHandler) TranslateQuery(c *gin.Context) {
	req := services.TranslateRequest{
		Text:           c.Query("text"),
		SourceLanguage: c.Query("from"),
		TargetLanguage: c.Query("to"),
	}

	resp, err := h.translationService.Translate(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *TranslationHandler) handleServiceError(c *gin.Context, err error) {
	if h.handleCommonErrors(c, err) {
		return
	}

	switch {
	case errors.Is(err, services.ErrTranslationNotConfigured):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Translation is not configured"})
	default:
		h.logger.Error("Translation failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
