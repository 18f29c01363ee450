package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TalkBridge-2025/mentorship-service/internal/services"
	"github.com/TalkBridge-2025/mentorship-service/internal/utils"
)

type ResumeHandler struct {
	BaseHandler
	resumeService services.ResumeService
}

func NewResumeHandler(resumeService services.ResumeService, logger utils.Logger) *ResumeHandler {
	return &ResumeHandler{
		BaseHandler:   NewBaseHandler(logger),
		resumeService: resumeService,
	}
}

// SaveResume creates or replaces the user's resume. A user holds at most
// one; repeated saves answer with the same resume ID.
func (h *ResumeHandler) SaveResume(c *gin.Context) {
	var req services.SaveResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	resume, err := h.resumeService.Save(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resume)
}

func (h *ResumeHandler) GetResume(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	resume, err := h.resumeService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resume)
}

func (h *ResumeHandler) GetResumeByUser(c *gin.Context) {
	userID := h.parseIDParam(c, "user_id")
	if userID == 0 {
		return
	}

	resume, err := h.resumeService.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resume)
}

func (h *ResumeHandler) UpdateResume(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	var req services.UpdateResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	resume, err := h.resumeService.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resume)
}

func (h *ResumeHandler) DeleteResume(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	if err := h.resumeService.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DownloadResumePDF renders the stored resume as a PDF attachment
func (h *ResumeHandler) DownloadResumePDF(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	h.LogRequest(c, "Rendering resume PDF", "resume_id", id)

	var buf bytes.Buffer
	if err := h.resumeService.RenderPDF(c.Request.Context(), id, &buf); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="resume-%d.pdf"`, id))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func (h *ResumeHandler) handleServiceError(c *gin.Context, err error) {
	if h.handleCommonErrors(c, err) {
		return
	}

	switch {
	case errors.Is(err, services.ErrResumeNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Resume not found"})
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
	default:
		h.logger.Error("Resume operation failed", "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
