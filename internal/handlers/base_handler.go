package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/TalkBridge-2025/mentorship-service/internal/services"
	"github.com/TalkBridge-2025/mentorship-service/internal/utils"
	"github.com/TalkBridge-2025/mentorship-service/internal/validator"
)

// ErrorResponse is the error body every endpoint returns
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// BaseHandler carries the pieces shared by all handlers
type BaseHandler struct {
	logger utils.Logger
}

func NewBaseHandler(logger utils.Logger) BaseHandler {
	return BaseHandler{logger: logger}
}

// parseIDParam parses a numeric path parameter. On failure it writes the 400
// response itself and returns 0; callers just return.
func (h *BaseHandler) parseIDParam(c *gin.Context, name string) uint {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid " + name + " parameter",
			Details: raw,
		})
		return 0
	}
	return uint(id)
}

// parseUintQuery parses an optional numeric query parameter
func (h *BaseHandler) parseUintQuery(c *gin.Context, name string) *uint {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil
	}
	u := uint(v)
	return &u
}

// parseIntQuery parses an optional numeric query parameter with a default
func (h *BaseHandler) parseIntQuery(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func (h *BaseHandler) LogRequest(c *gin.Context, msg string, args ...any) {
	utils.LoggerFromContext(c.Request.Context(), h.logger).Info(msg, args...)
}

// handleCommonErrors maps the error shapes every handler shares: validation
// failures to 400 and upstream provider failures to 500 with the captured
// details. Returns true when it wrote a response.
func (h *BaseHandler) handleCommonErrors(c *gin.Context, err error) bool {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Validation failed",
			Details: validationErrors,
		})
		return true
	}

	var upstream *services.UpstreamError
	if errors.As(err, &upstream) {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   upstream.Provider + " request failed",
			Details: upstream.Details,
		})
		return true
	}

	return false
}
