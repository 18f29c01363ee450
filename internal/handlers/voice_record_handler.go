package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/TalkBridge-2025/mentorship-service/internal/services"
	"github.com/TalkBridge-2025/mentorship-service/internal/utils"
)

type VoiceRecordHandler struct {
	BaseHandler
	voiceService  services.VoiceRecordService
	uploadService services.UploadService
}

func NewVoiceRecordHandler(voiceService services.VoiceRecordService, uploadService services.UploadService, logger utils.Logger) *VoiceRecordHandler {
	return &VoiceRecordHandler{
		BaseHandler:   NewBaseHandler(logger),
		voiceService:  voiceService,
		uploadService: uploadService,
	}
}

// CreateVoiceRecord registers a recording that already lives at a URL
func (h *VoiceRecordHandler) CreateVoiceRecord(c *gin.Context) {
	var req services.CreateVoiceRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	record, err := h.voiceService.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

// UploadVoice receives a multipart audio file, stores it in object storage
// and registers the voice record in one request
func (h *VoiceRecordHandler) UploadVoice(c *gin.Context) {
	raw := c.PostForm("user_id")
	if raw == "" {
		raw = c.Query("user_id")
	}
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || parsed == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Valid user_id is required",
			Details: raw,
		})
		return
	}
	userID := uint(parsed)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Audio file is required",
			Details: err.Error(),
		})
		return
	}
	defer file.Close()

	h.LogRequest(c, "Uploading voice recording", "user_id", userID, "filename", header.Filename)

	upload := &services.VoiceUpload{
		UserID:          userID,
		Filename:        header.Filename,
		ContentType:     header.Header.Get("Content-Type"),
		Body:            file,
		DurationSeconds: h.parseIntQuery(c, "duration_seconds", 0),
		Language:        c.Query("language"),
	}

	record, err := h.uploadService.UploadVoice(c.Request.Context(), upload)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

func (h *VoiceRecordHandler) GetVoiceRecord(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	record, err := h.voiceService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

func (h *VoiceRecordHandler) ListVoiceRecordsByUser(c *gin.Context) {
	userID := h.parseIDParam(c, "user_id")
	if userID == 0 {
		return
	}

	records, err := h.voiceService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

func (h *VoiceRecordHandler) DeleteVoiceRecord(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	if err := h.voiceService.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *VoiceRecordHandler) handleServiceError(c *gin.Context, err error) {
	if h.handleCommonErrors(c, err) {
		return
	}

	switch {
	case errors.Is(err, services.ErrVoiceRecordNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Voice record not found"})
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
	case errors.Is(err, services.ErrUploadNotConfigured):
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "File upload is not configured"})
	default:
		h.logger.Error("Voice record operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
