package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/TalkBridge-2025/mentorship-service/internal/models"
	"github.com/TalkBridge-2025/mentorship-service/internal/pdfgen"
	"github.com/TalkBridge-2025/mentorship-service/internal/repositories"
	"github.com/TalkBridge-2025/mentorship-service/internal/validator"
)

type resumeService struct {
	repo      repositories.Repository
	db        *gorm.DB
	logger    *slog.Logger
	validator *validator.Validator
}

func NewResumeService(repo repositories.Repository, db *gorm.DB, logger *slog.Logger, validator *validator.Validator) ResumeService {
	return &resumeService{
		repo:      repo,
		db:        db,
		logger:    logger,
		validator: validator,
	}
}

// Save stores a user's resume. A user holds at most one; saving again
// replaces the content of the existing row and keeps its ID. The lookup and
// write run inside one transaction so concurrent saves cannot create a
// second row.
func (s *resumeService) Save(ctx context.Context, req *SaveResumeRequest) (*models.Resume, error) {
	s.logger.Info("Saving resume", "user_id", req.UserID)

	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	if _, err := s.repo.User().GetByID(ctx, req.UserID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	resume := &models.Resume{
		UserID:         req.UserID,
		FullName:       req.FullName,
		Headline:       req.Headline,
		Summary:        req.Summary,
		Email:          req.Email,
		Phone:          req.Phone,
		Education:      req.Education,
		Skills:         models.StringList(req.Skills),
		Achievements:   models.StringList(req.Achievements),
		Projects:       models.StringList(req.Projects),
		Certifications: models.StringList(req.Certifications),
	}

	err := s.repo.WithTransaction(ctx, func(txRepo repositories.Repository) error {
		return txRepo.Resume().Upsert(ctx, resume)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save resume: %w", err)
	}

	return s.GetByID(ctx, resume.ID)
}

func (s *resumeService) GetByID(ctx context.Context, id uint) (*models.Resume, error) {
	resume, err := s.repo.Resume().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrResumeNotFound
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return resume, nil
}

func (s *resumeService) GetByUserID(ctx context.Context, userID uint) (*models.Resume, error) {
	resume, err := s.repo.Resume().GetByUserID(ctx, userID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrResumeNotFound
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return resume, nil
}

// Update applies a partial update keyed by resume ID
func (s *resumeService) Update(ctx context.Context, id uint, req *UpdateResumeRequest) (*models.Resume, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	resume, err := s.repo.Resume().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrResumeNotFound
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}

	if req.FullName != nil {
		resume.FullName = *req.FullName
	}
	if req.Headline != nil {
		resume.Headline = *req.Headline
	}
	if req.Summary != nil {
		resume.Summary = *req.Summary
	}
	if req.Email != nil {
		resume.Email = *req.Email
	}
	if req.Phone != nil {
		resume.Phone = *req.Phone
	}
	if req.Education != nil {
		resume.Education = *req.Education
	}
	if req.Skills != nil {
		resume.Skills = models.StringList(req.Skills)
	}
	if req.Achievements != nil {
		resume.Achievements = models.StringList(req.Achievements)
	}
	if req.Projects != nil {
		resume.Projects = models.StringList(req.Projects)
	}
	if req.Certifications != nil {
		resume.Certifications = models.StringList(req.Certifications)
	}
	resume.UpdatedAt = time.Now()

	if err := s.repo.Resume().Update(ctx, resume); err != nil {
		return nil, fmt.Errorf("failed to update resume: %w", err)
	}

	return resume, nil
}

func (s *resumeService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Resume().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrResumeNotFound
		}
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	return nil
}

// RenderPDF writes the stored resume as a PDF document
func (s *resumeService) RenderPDF(ctx context.Context, id uint, w io.Writer) error {
	resume, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	layout := pdfgen.Build(resume)
	if err := pdfgen.Render(layout, w); err != nil {
		return fmt.Errorf("failed to render resume %d: %w", id, err)
	}
	return nil
}
