package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/TalkBridge-2025/mentorship-service/internal/events"
	"github.com/TalkBridge-2025/mentorship-service/internal/repositories"
	"github.com/TalkBridge-2025/mentorship-service/internal/storage"
	"github.com/TalkBridge-2025/mentorship-service/internal/translator"
	"github.com/TalkBridge-2025/mentorship-service/internal/validator"
)

// ServiceManagerConfig holds configuration for the service manager
type ServiceManagerConfig struct {
	EnableDebugLogging bool
	LogLevel           slog.Level

	DefaultTimeout time.Duration
}

// ServiceManagerDeps bundles the external dependencies services are built
// from. ObjectStore and TranslatorClient may be nil; the corresponding
// services then report their not-configured errors instead of failing at
// startup.
type ServiceManagerDeps struct {
	DB               *gorm.DB
	Repo             repositories.Repository
	Logger           *slog.Logger
	Validator        *validator.Validator
	EventPublisher   events.EventPublisher
	ObjectStore      storage.ObjectStore
	TranslatorClient *translator.Client
}

// serviceManager implements ServiceManager interface
type serviceManager struct {
	deps   ServiceManagerDeps
	config ServiceManagerConfig

	// Service instances
	userService        UserService
	profileService     ProfileService
	quizService        QuizService
	achievementService AchievementService
	badgeService       BadgeService
	voiceRecordService VoiceRecordService
	resumeService      ResumeService
	chatService        ChatService
	translationService TranslationService
	uploadService      UploadService

	// Lifecycle management
	initialized bool
	shutdown    bool
	mu          sync.RWMutex
}

// NewServiceManager creates a new service manager with all dependencies
func NewServiceManager(deps ServiceManagerDeps, config ServiceManagerConfig) ServiceManager {
	return &serviceManager{
		deps:   deps,
		config: config,
	}
}

// NewDefaultServiceManager creates a service manager with default configuration
func NewDefaultServiceManager(deps ServiceManagerDeps) ServiceManager {
	config := ServiceManagerConfig{
		EnableDebugLogging: false,
		LogLevel:           slog.LevelInfo,
		DefaultTimeout:     30 * time.Second,
	}

	return NewServiceManager(deps, config)
}

// Initialize sets up all services and their dependencies
func (sm *serviceManager) Initialize(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	sm.deps.Logger.Info("Initializing service manager")

	if sm.deps.Repo == nil {
		return fmt.Errorf("repository is required")
	}
	if sm.deps.Validator == nil {
		return fmt.Errorf("validator is required")
	}

	sm.initializeServices()

	sm.initialized = true
	sm.deps.Logger.Info("Service manager initialized successfully")

	return nil
}

func (sm *serviceManager) initializeServices() {
	d := sm.deps

	sm.userService = NewUserService(d.Repo, d.DB, d.Logger, d.Validator, d.EventPublisher)
	sm.profileService = NewProfileService(d.Repo, d.DB, d.Logger, d.Validator)
	sm.quizService = NewQuizService(d.Repo, d.DB, d.Logger, d.Validator, d.EventPublisher)
	sm.achievementService = NewAchievementService(d.Repo, d.DB, d.Logger, d.Validator)
	sm.badgeService = NewBadgeService(d.Repo, d.DB, d.Logger, d.Validator, d.EventPublisher)
	sm.voiceRecordService = NewVoiceRecordService(d.Repo, d.DB, d.Logger, d.Validator)
	sm.resumeService = NewResumeService(d.Repo, d.DB, d.Logger, d.Validator)
	sm.chatService = NewChatService(d.Repo, d.DB, d.Logger, d.Validator, d.EventPublisher)
	sm.translationService = NewTranslationService(d.TranslatorClient, d.Logger, d.Validator)
	sm.uploadService = NewUploadService(d.Repo, d.ObjectStore, d.Logger, d.EventPublisher)

	if d.TranslatorClient == nil {
		d.Logger.Warn("Translation provider not configured, translate requests will be rejected")
	}
	if d.ObjectStore == nil {
		d.Logger.Warn("Object storage not configured, voice uploads will be rejected")
	}

	d.Logger.Info("All services initialized")
}

// Service getters

func (sm *serviceManager) User() UserService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.userService
}

func (sm *serviceManager) Profile() ProfileService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.profileService
}

func (sm *serviceManager) Quiz() QuizService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.quizService
}

func (sm *serviceManager) Achievement() AchievementService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.achievementService
}

func (sm *serviceManager) Badge() BadgeService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.badgeService
}

func (sm *serviceManager) VoiceRecord() VoiceRecordService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.voiceRecordService
}

func (sm *serviceManager) Resume() ResumeService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.resumeService
}

func (sm *serviceManager) Chat() ChatService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.chatService
}

func (sm *serviceManager) Translation() TranslationService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.translationService
}

func (sm *serviceManager) Upload() UploadService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		panic("service manager not initialized")
	}
	return sm.uploadService
}

// Health and lifecycle

func (sm *serviceManager) HealthCheck(ctx context.Context) error {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		return fmt.Errorf("service manager not initialized")
	}

	if sm.shutdown {
		return fmt.Errorf("service manager is shut down")
	}

	if err := sm.deps.Repo.Ping(ctx); err != nil {
		return fmt.Errorf("repository health check failed: %w", err)
	}

	return nil
}

func (sm *serviceManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.shutdown {
		return nil
	}

	sm.deps.Logger.Info("Shutting down service manager")

	if sm.deps.EventPublisher != nil {
		if err := sm.deps.EventPublisher.Close(); err != nil {
			sm.deps.Logger.Error("Failed to close event publisher", "error", err)
		}
	}

	if err := sm.deps.Repo.Close(); err != nil {
		sm.deps.Logger.Error("Failed to close repository", "error", err)
	}

	sm.shutdown = true
	sm.deps.Logger.Info("Service manager shut down completed")

	return nil
}

// WithTimeout creates a context with the default timeout
func (sm *serviceManager) WithTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, sm.config.DefaultTimeout)
}
