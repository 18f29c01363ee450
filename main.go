package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/TalkBridge-2025/mentorship-service/internal/config"
	"github.com/TalkBridge-2025/mentorship-service/internal/events"
	"github.com/TalkBridge-2025/mentorship-service/internal/handlers"
	"github.com/TalkBridge-2025/mentorship-service/internal/repositories/casdoor"
	"github.com/TalkBridge-2025/mentorship-service/internal/repositories/postgres"
	"github.com/TalkBridge-2025/mentorship-service/internal/services"
	"github.com/TalkBridge-2025/mentorship-service/internal/storage"
	"github.com/TalkBridge-2025/mentorship-service/internal/translator"
	"github.com/TalkBridge-2025/mentorship-service/internal/utils"
	"github.com/TalkBridge-2025/mentorship-service/internal/validator"
	"github.com/TalkBridge-2025/mentorship-service/pkg"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	slogLogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	logger := utils.NewSlogLogger(slogLogger)

	// Initialize database
	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize Redis (if configured)
	var redisClient *redis.Client
	if cfg.Redis.URL != "" {
		redisClient, err = pkg.NewRedisClient(cfg)
		if err != nil {
			log.Printf("Warning: Failed to initialize Redis: %v", err)
		}
	}

	casdoorConfig := casdoor.CasdoorConfig{
		Endpoint:         cfg.Casdoor.Endpoint,
		ClientID:         cfg.Casdoor.ClientID,
		ClientSecret:     cfg.Casdoor.ClientSecret,
		Certificate:      cfg.Casdoor.Certificate,
		OrganizationName: cfg.Casdoor.Organization,
		ApplicationName:  cfg.Casdoor.Application,
	}

	// Initialize repositories
	repoManager := postgres.NewRepositoryManager(postgres.RepositoryConfig{
		DB:            db,
		RedisClient:   redisClient,
		CasdoorConfig: casdoorConfig,
	})
	if err := repoManager.Initialize(); err != nil {
		log.Fatalf("Failed to initialize repositories: %v", err)
	}

	// Initialize validator
	v := validator.New()

	// Event publisher: Kafka when brokers are configured, otherwise an
	// in-memory sink so the write paths behave identically.
	var eventPublisher events.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		eventPublisher, err = events.NewKafkaEventPublisher(cfg.Kafka.Brokers, slogLogger)
		if err != nil {
			log.Fatalf("Failed to initialize event publisher: %v", err)
		}
	} else {
		slogLogger.Warn("No Kafka brokers configured, events stay in memory")
		eventPublisher = events.NewMockEventPublisher(slogLogger)
	}

	// Object storage (if configured)
	var objectStore storage.ObjectStore
	s3Config := storage.Config{
		Bucket:        cfg.S3.Bucket,
		Region:        cfg.S3.Region,
		KeyPrefix:     cfg.S3.KeyPrefix,
		PublicBaseURL: cfg.S3.PublicBaseURL,
	}
	if s3Config.Enabled() {
		store, err := storage.NewS3Store(context.Background(), s3Config, slogLogger)
		if err != nil {
			log.Fatalf("Failed to initialize object storage: %v", err)
		}
		objectStore = store
	}

	// Translation provider (if configured)
	var translatorClient *translator.Client
	translatorConfig := translator.Config{
		BaseURL: cfg.Translator.BaseURL,
		APIKey:  cfg.Translator.APIKey,
		Timeout: cfg.Translator.Timeout,
	}
	if translatorConfig.Enabled() {
		translatorClient = translator.NewClient(translatorConfig, slogLogger)
	}

	// Initialize services
	serviceManager := services.NewDefaultServiceManager(services.ServiceManagerDeps{
		DB:               db,
		Repo:             repoManager.GetRepository(),
		Logger:           slogLogger,
		Validator:        v,
		EventPublisher:   eventPublisher,
		ObjectStore:      objectStore,
		TranslatorClient: translatorClient,
	})
	if err := serviceManager.Initialize(context.Background()); err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}

	// Initialize handlers
	handlerManager := handlers.NewHandlerManager(serviceManager, logger, casdoorConfig)

	// Setup Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	handlers.SetupMiddleware(router, logger)
	handlerManager.SetupRoutes(router)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	go func() {
		logger.Info("Starting server", "port", cfg.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	if err := serviceManager.Shutdown(ctx); err != nil {
		log.Printf("Failed to shutdown services: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	if redisClient != nil {
		redisClient.Close()
	}

	logger.Info("Server exited")
}
