package repositories

import "context"

// Repository aggregates every entity repository behind one interface.
type Repository interface {
	// Account domain
	User() UserRepository
	Profile() ProfileRepository

	// Learning domain
	Quiz() QuizRepository
	Achievement() AchievementRepository
	Badge() BadgeRepository
	VoiceRecord() VoiceRecordRepository

	// Career domain
	Resume() ResumeRepository

	// Conversation domain
	Chat() ChatRepository

	// Identity provider (read-only, external)
	Identity() IdentityRepository

	// Transaction support
	WithTransaction(ctx context.Context, fn func(Repository) error) error

	// Health check
	Ping(ctx context.Context) error

	// Close connections
	Close() error
}

// RepositoryManager manages repository lifecycle.
type RepositoryManager interface {
	// Initialize repositories with database connections
	Initialize() error

	// Get repository instance
	GetRepository() Repository

	// Health check for all repositories
	HealthCheck(ctx context.Context) error

	// Graceful shutdown
	Shutdown(ctx context.Context) error
}
