package services

import (
	"context"
	"io"

	"github.com/TalkBridge-2025/mentorship-service/internal/models"
	"github.com/TalkBridge-2025/mentorship-service/internal/repositories"
	"github.com/TalkBridge-2025/mentorship-service/internal/validator"
)

// ===== REQUEST/RESPONSE DTOs =====

// Use business validator types
type CreateUserRequest = validator.UserCreateRequest
type UpdateUserRequest = validator.UserUpdateRequest
type ProfileSaveRequest = validator.ProfileSaveRequest
type CreateQuizRequest = validator.QuizCreateRequest
type UpdateQuizRequest = validator.QuizUpdateRequest
type CreateAchievementRequest = validator.AchievementCreateRequest
type UpdateAchievementRequest = validator.AchievementUpdateRequest
type CreateBadgeRequest = validator.BadgeCreateRequest
type CreateVoiceRecordRequest = validator.VoiceRecordCreateRequest
type SaveResumeRequest = validator.ResumeSaveRequest
type CreateSessionRequest = validator.ChatSessionCreateRequest
type CreateMessageRequest = validator.ChatMessageCreateRequest
type TranslateRequest = validator.TranslateRequest

type UserListResponse struct {
	Users []*models.User `json:"users"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Size  int            `json:"size"`
}

// UpdateResumeRequest is the partial update keyed by resume ID; nil fields
// are left untouched, non-nil list fields replace the stored lists.
type UpdateResumeRequest struct {
	FullName       *string  `json:"full_name" validate:"omitempty,min=1,max=200"`
	Headline       *string  `json:"headline" validate:"omitempty,max=255"`
	Summary        *string  `json:"summary" validate:"omitempty,max=5000"`
	Email          *string  `json:"email" validate:"omitempty,email"`
	Phone          *string  `json:"phone" validate:"omitempty,max=64"`
	Education      *string  `json:"education" validate:"omitempty,max=5000"`
	Skills         []string `json:"skills" validate:"omitempty,max=50,dive,max=100"`
	Achievements   []string `json:"achievements" validate:"omitempty,max=50,dive,max=255"`
	Projects       []string `json:"projects" validate:"omitempty,max=50,dive,max=255"`
	Certifications []string `json:"certifications" validate:"omitempty,max=50,dive,max=255"`
}

// PromoteMentorRequest sets a profile's expertise, turning the user into a
// mentor. Optional fields are applied alongside.
type PromoteMentorRequest struct {
	UserID    uint     `json:"user_id" validate:"required"`
	Expertise string   `json:"expertise" validate:"required,min=1,max=255"`
	Bio       *string  `json:"bio" validate:"omitempty,max=2000"`
	Languages []string `json:"languages" validate:"omitempty,max=20,dive,language_code"`
}

// TranslateResponse carries a single provider translation
type TranslateResponse struct {
	TranslatedText string `json:"translated_text"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
}

// VoiceUpload describes one multipart upload handed to the upload service
type VoiceUpload struct {
	UserID          uint
	Filename        string
	ContentType     string
	Body            io.Reader
	DurationSeconds int
	Language        string
}

// ===== SERVICE INTERFACES =====

type UserService interface {
	// Create upserts by email: posting an existing email updates that user
	// and its profile instead of creating a duplicate.
	Create(ctx context.Context, req *CreateUserRequest) (*models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByIDWithRelations(ctx context.Context, id uint) (*models.User, error)
	List(ctx context.Context, filters repositories.UserFilters) (*UserListResponse, error)
	Update(ctx context.Context, id uint, req *UpdateUserRequest) (*models.User, error)
	Delete(ctx context.Context, id uint) error

	// Mentor operations
	ListMentors(ctx context.Context) ([]*models.User, error)
	PromoteToMentor(ctx context.Context, req *PromoteMentorRequest) (*models.User, error)

	// SyncFromIdentity resolves an identity-provider subject to the local
	// user, provisioning one on first sight. Returns ErrIdentityDisabled
	// for forbidden or deleted identities.
	SyncFromIdentity(ctx context.Context, authID string) (*models.User, error)
}

type ProfileService interface {
	GetByID(ctx context.Context, id uint) (*models.Profile, error)
	GetByUserID(ctx context.Context, userID uint) (*models.Profile, error)
	Update(ctx context.Context, userID uint, req *ProfileSaveRequest) (*models.Profile, error)
	Delete(ctx context.Context, id uint) error
}

type QuizService interface {
	Create(ctx context.Context, req *CreateQuizRequest) (*models.Quiz, error)
	GetByID(ctx context.Context, id uint) (*models.Quiz, error)
	ListByUser(ctx context.Context, userID uint) ([]*models.Quiz, error)
	Update(ctx context.Context, id uint, req *UpdateQuizRequest) (*models.Quiz, error)
	Delete(ctx context.Context, id uint) error
}

type AchievementService interface {
	Create(ctx context.Context, req *CreateAchievementRequest) (*models.Achievement, error)
	GetByID(ctx context.Context, id uint) (*models.Achievement, error)
	ListByUser(ctx context.Context, userID uint) ([]*models.Achievement, error)
	Update(ctx context.Context, id uint, req *UpdateAchievementRequest) (*models.Achievement, error)
	Delete(ctx context.Context, id uint) error
}

type BadgeService interface {
	// Award returns ErrBadgeAlreadyEarned when the user already holds a
	// badge with the same name.
	Award(ctx context.Context, req *CreateBadgeRequest) (*models.Badge, error)
	GetByID(ctx context.Context, id uint) (*models.Badge, error)
	ListByUser(ctx context.Context, userID uint) ([]*models.Badge, error)
	Delete(ctx context.Context, id uint) error
}

type VoiceRecordService interface {
	Create(ctx context.Context, req *CreateVoiceRecordRequest) (*models.VoiceRecord, error)
	GetByID(ctx context.Context, id uint) (*models.VoiceRecord, error)
	ListByUser(ctx context.Context, userID uint) ([]*models.VoiceRecord, error)
	Delete(ctx context.Context, id uint) error
}

type ResumeService interface {
	// Save upserts by user: repeated saves update the same row in place.
	Save(ctx context.Context, req *SaveResumeRequest) (*models.Resume, error)
	GetByID(ctx context.Context, id uint) (*models.Resume, error)
	GetByUserID(ctx context.Context, userID uint) (*models.Resume, error)
	Update(ctx context.Context, id uint, req *UpdateResumeRequest) (*models.Resume, error)
	Delete(ctx context.Context, id uint) error

	// RenderPDF writes the stored resume as a PDF document
	RenderPDF(ctx context.Context, id uint, w io.Writer) error
}

type ChatService interface {
	CreateSession(ctx context.Context, req *CreateSessionRequest) (*models.ChatSession, error)
	GetSession(ctx context.Context, id uint) (*models.ChatSession, error)
	ListSessionsByUser(ctx context.Context, userID uint) ([]*models.ChatSession, error)
	DeleteSession(ctx context.Context, id uint) error

	PostMessage(ctx context.Context, req *CreateMessageRequest) (*models.ChatMessage, error)
	ListMessages(ctx context.Context, sessionID uint, filters repositories.MessageFilters) ([]*models.ChatMessage, error)
}

type TranslationService interface {
	Translate(ctx context.Context, req *TranslateRequest) (*TranslateResponse, error)
}

type UploadService interface {
	// UploadVoice stores the audio blob and registers a VoiceRecord with
	// its public URL.
	UploadVoice(ctx context.Context, upload *VoiceUpload) (*models.VoiceRecord, error)
}

// ===== SERVICE MANAGER =====

type ServiceManager interface {
	// Core service getters
	User() UserService
	Profile() ProfileService
	Quiz() QuizService
	Achievement() AchievementService
	Badge() BadgeService
	VoiceRecord() VoiceRecordService
	Resume() ResumeService
	Chat() ChatService
	Translation() TranslationService
	Upload() UploadService

	// Health and lifecycle
	Initialize(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
