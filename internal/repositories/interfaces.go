package repositories

import (
	"context"
	"time"

	"github.com/TalkBridge-2025/mentorship-service/internal/models"
)

// ===== SHARED FILTER STRUCTS =====

type UserFilters struct {
	Email     *string          `json:"email"`
	Name      *string          `json:"name"`
	Role      *models.UserRole `json:"role"`
	Limit     int              `json:"limit"`
	Offset    int              `json:"offset"`
	SortBy    string           `json:"sort_by"`    // "created_at", "name"
	SortOrder string           `json:"sort_order"` // "asc", "desc"
}

type QuizFilters struct {
	UserID   *uint      `json:"user_id"`
	Language *string    `json:"language"`
	DateFrom *time.Time `json:"date_from"`
	DateTo   *time.Time `json:"date_to"`
	Limit    int        `json:"limit"`
	Offset   int        `json:"offset"`
}

type MessageFilters struct {
	SenderID *uint `json:"sender_id"`
	Limit    int   `json:"limit"`
	Offset   int   `json:"offset"`
}

// ===== ENTITY REPOSITORIES =====

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByAuthID(ctx context.Context, authID string) (*models.User, error)
	GetByIDWithRelations(ctx context.Context, id uint) (*models.User, error)
	List(ctx context.Context, filters UserFilters) ([]*models.User, int64, error)
	ListMentors(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *models.Profile) error
	GetByID(ctx context.Context, id uint) (*models.Profile, error)
	GetByUserID(ctx context.Context, userID uint) (*models.Profile, error)
	Update(ctx context.Context, profile *models.Profile) error
	Delete(ctx context.Context, id uint) error
}

type QuizRepository interface {
	Create(ctx context.Context, quiz *models.Quiz) error
	GetByID(ctx context.Context, id uint) (*models.Quiz, error)
	ListByUser(ctx context.Context, userID uint) ([]*models.Quiz, error)
	List(ctx context.Context, filters QuizFilters) ([]*models.Quiz, int64, error)
	Update(ctx context.Context, quiz *models.Quiz) error
	Delete(ctx context.Context, id uint) error
}

type AchievementRepository interface {
	Create(ctx context.Context, achievement *models.Achievement) error
	GetByID(ctx context.Context, id uint) (*models.Achievement, error)
	ListByUser(ctx context.Context, userID uint) ([]*models.Achievement, error)
	Update(ctx context.Context, achievement *models.Achievement) error
	Delete(ctx context.Context, id uint) error
}

type BadgeRepository interface {
	// Create returns ErrDuplicate when the user already holds a badge with
	// the same name.
	Create(ctx context.Context, badge *models.Badge) error
	GetByID(ctx context.Context, id uint) (*models.Badge, error)
	ListByUser(ctx context.Context, userID uint) ([]*models.Badge, error)
	ExistsByUserAndName(ctx context.Context, userID uint, name string) (bool, error)
	Delete(ctx context.Context, id uint) error
}

type VoiceRecordRepository interface {
	Create(ctx context.Context, record *models.VoiceRecord) error
	GetByID(ctx context.Context, id uint) (*models.VoiceRecord, error)
	ListByUser(ctx context.Context, userID uint) ([]*models.VoiceRecord, error)
	Delete(ctx context.Context, id uint) error
}

type ResumeRepository interface {
	// Upsert creates the user's resume or, when one already exists, updates
	// it in place keeping the original row ID.
	Upsert(ctx context.Context, resume *models.Resume) error
	GetByID(ctx context.Context, id uint) (*models.Resume, error)
	GetByUserID(ctx context.Context, userID uint) (*models.Resume, error)
	Update(ctx context.Context, resume *models.Resume) error
	Delete(ctx context.Context, id uint) error
}

type ChatRepository interface {
	CreateSession(ctx context.Context, session *models.ChatSession) error
	GetSession(ctx context.Context, id uint) (*models.ChatSession, error)
	ListSessionsByUser(ctx context.Context, userID uint) ([]*models.ChatSession, error)
	TouchSession(ctx context.Context, id uint, at time.Time) error
	DeleteSession(ctx context.Context, id uint) error

	CreateMessage(ctx context.Context, message *models.ChatMessage) error
	ListMessages(ctx context.Context, sessionID uint, filters MessageFilters) ([]*models.ChatMessage, error)
}

// IdentityRepository reads identities from the external identity provider.
// It is read-only from this service's point of view.
type IdentityRepository interface {
	GetByAuthID(ctx context.Context, authID string) (*models.Identity, error)
	Validate(ctx context.Context, authID string) (bool, error)
}
