package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/TalkBridge-2025/mentorship-service/internal/cache"
	"github.com/TalkBridge-2025/mentorship-service/internal/repositories"
	"github.com/TalkBridge-2025/mentorship-service/internal/repositories/casdoor"
)

// PostgreSQLRepository implements the main Repository interface
type PostgreSQLRepository struct {
	db           *gorm.DB
	redisClient  *redis.Client
	cacheManager *cache.CacheManager

	// Repository instances
	user        repositories.UserRepository
	profile     repositories.ProfileRepository
	quiz        repositories.QuizRepository
	achievement repositories.AchievementRepository
	badge       repositories.BadgeRepository
	voiceRecord repositories.VoiceRecordRepository
	resume      repositories.ResumeRepository
	chat        repositories.ChatRepository
	identity    repositories.IdentityRepository
}

// RepositoryConfig holds configuration for repository initialization
type RepositoryConfig struct {
	DB            *gorm.DB
	RedisClient   *redis.Client
	CasdoorConfig casdoor.CasdoorConfig
}

// NewPostgreSQLRepository creates a new repository with all sub-repositories
func NewPostgreSQLRepository(config RepositoryConfig) repositories.Repository {
	repo := &PostgreSQLRepository{
		db:           config.DB,
		redisClient:  config.RedisClient,
		cacheManager: cache.NewCacheManager(config.RedisClient),
	}

	repo.initSubRepositories(config.DB)

	// Identity repository uses Casdoor, not the local database. Left nil
	// when no provider is configured.
	if config.CasdoorConfig.Enabled() {
		repo.identity = casdoor.NewIdentityCasdoor(config.CasdoorConfig, config.RedisClient)
	}

	return repo
}

func (r *PostgreSQLRepository) initSubRepositories(db *gorm.DB) {
	r.user = NewUserPostgreSQL(db, r.redisClient)
	r.profile = NewProfilePostgreSQL(db, r.redisClient)
	r.quiz = NewQuizPostgreSQL(db)
	r.achievement = NewAchievementPostgreSQL(db)
	r.badge = NewBadgePostgreSQL(db)
	r.voiceRecord = NewVoiceRecordPostgreSQL(db)
	r.resume = NewResumePostgreSQL(db, r.redisClient)
	r.chat = NewChatPostgreSQL(db, r.redisClient)
}

// User returns the user repository
func (r *PostgreSQLRepository) User() repositories.UserRepository {
	return r.user
}

// Profile returns the profile repository
func (r *PostgreSQLRepository) Profile() repositories.ProfileRepository {
	return r.profile
}

// Quiz returns the quiz repository
func (r *PostgreSQLRepository) Quiz() repositories.QuizRepository {
	return r.quiz
}

// Achievement returns the achievement repository
func (r *PostgreSQLRepository) Achievement() repositories.AchievementRepository {
	return r.achievement
}

// Badge returns the badge repository
func (r *PostgreSQLRepository) Badge() repositories.BadgeRepository {
	return r.badge
}

// VoiceRecord returns the voice record repository
func (r *PostgreSQLRepository) VoiceRecord() repositories.VoiceRecordRepository {
	return r.voiceRecord
}

// Resume returns the resume repository
func (r *PostgreSQLRepository) Resume() repositories.ResumeRepository {
	return r.resume
}

// Chat returns the chat repository
func (r *PostgreSQLRepository) Chat() repositories.ChatRepository {
	return r.chat
}

// Identity returns the external identity repository
func (r *PostgreSQLRepository) Identity() repositories.IdentityRepository {
	return r.identity
}

// WithTransaction executes a function within a database transaction
func (r *PostgreSQLRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &PostgreSQLRepository{
			db:           tx,
			redisClient:  r.redisClient,
			cacheManager: r.cacheManager,
		}

		txRepo.initSubRepositories(tx)

		// Identity repository doesn't need a transaction (it's external)
		txRepo.identity = r.identity

		return fn(txRepo)
	})
}

// Ping checks the health of database and cache connections
func (r *PostgreSQLRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	if r.redisClient != nil {
		if err := r.cacheManager.HealthCheck(ctx); err != nil {
			return fmt.Errorf("cache ping failed: %w", err)
		}
	}

	return nil
}

// Close closes all connections
func (r *PostgreSQLRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	if r.redisClient != nil {
		if err := r.redisClient.Close(); err != nil {
			return fmt.Errorf("failed to close Redis: %w", err)
		}
	}

	return nil
}

// RepositoryManager implements the RepositoryManager interface
type RepositoryManager struct {
	config RepositoryConfig
	repo   repositories.Repository
}

// NewRepositoryManager creates a new repository manager
func NewRepositoryManager(config RepositoryConfig) repositories.RepositoryManager {
	return &RepositoryManager{
		config: config,
	}
}

// Initialize initializes all repositories and connections
func (rm *RepositoryManager) Initialize() error {
	if rm.config.DB == nil {
		return fmt.Errorf("database connection is required")
	}

	sqlDB, err := rm.config.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}

	if rm.config.RedisClient != nil {
		if _, err := rm.config.RedisClient.Ping(ctx).Result(); err != nil {
			return fmt.Errorf("Redis connection failed: %w", err)
		}
	}

	rm.repo = NewPostgreSQLRepository(rm.config)

	return nil
}

// GetRepository returns the repository instance
func (rm *RepositoryManager) GetRepository() repositories.Repository {
	return rm.repo
}

// HealthCheck checks the health of all repository connections
func (rm *RepositoryManager) HealthCheck(ctx context.Context) error {
	if rm.repo == nil {
		return fmt.Errorf("repository not initialized")
	}

	return rm.repo.Ping(ctx)
}

// Shutdown gracefully shuts down all repository connections
func (rm *RepositoryManager) Shutdown(ctx context.Context) error {
	if rm.repo == nil {
		return nil
	}

	return rm.repo.Close()
}
