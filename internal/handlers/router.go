package handlers

import (
	"github.com/gin-gonic/gin"

	casdoorrepo "github.com/TalkBridge-2025/mentorship-service/internal/repositories/casdoor"
	"github.com/TalkBridge-2025/mentorship-service/internal/services"
	"github.com/TalkBridge-2025/mentorship-service/internal/utils"
)

type HandlerManager struct {
	userHandler        *UserHandler
	profileHandler     *ProfileHandler
	quizHandler        *QuizHandler
	achievementHandler *AchievementHandler
	badgeHandler       *BadgeHandler
	voiceHandler       *VoiceRecordHandler
	resumeHandler      *ResumeHandler
	chatHandler        *ChatHandler
	translationHandler *TranslationHandler
	authMiddleware     *CasdoorAuthMiddleware
	serviceManager     services.ServiceManager
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	logger utils.Logger,
	casdoorConfig casdoorrepo.CasdoorConfig,
) *HandlerManager {
	return &HandlerManager{
		userHandler:        NewUserHandler(serviceManager.User(), logger),
		profileHandler:     NewProfileHandler(serviceManager.Profile(), logger),
		quizHandler:        NewQuizHandler(serviceManager.Quiz(), logger),
		achievementHandler: NewAchievementHandler(serviceManager.Achievement(), logger),
		badgeHandler:       NewBadgeHandler(serviceManager.Badge(), logger),
		voiceHandler:       NewVoiceRecordHandler(serviceManager.VoiceRecord(), serviceManager.Upload(), logger),
		resumeHandler:      NewResumeHandler(serviceManager.Resume(), logger),
		chatHandler:        NewChatHandler(serviceManager.Chat(), logger),
		translationHandler: NewTranslationHandler(serviceManager.Translation(), logger),
		authMiddleware:     NewCasdoorAuthMiddleware(casdoorConfig, serviceManager.User(), logger),
		serviceManager:     serviceManager,
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1")
	v1.Use(hm.authMiddleware.AuthMiddleware())
	{
		users := v1.Group("/users")
		{
			users.POST("", hm.userHandler.CreateUser)
			users.GET("", hm.userHandler.ListUsers)
			users.GET("/:id", hm.userHandler.GetUser)
			users.GET("/:id/details", hm.userHandler.GetUserWithRelations)
			users.PUT("/:id", hm.userHandler.UpdateUser)
			users.DELETE("/:id", hm.userHandler.DeleteUser)

			// Per-user sub-resources
			users.GET("/:id/profile", hm.wrapUserParam(hm.profileHandler.GetProfileByUser))
			users.PUT("/:id/profile", hm.wrapUserParam(hm.profileHandler.UpdateProfileByUser))
			users.GET("/:id/quizzes", hm.wrapUserParam(hm.quizHandler.ListQuizzesByUser))
			users.GET("/:id/achievements", hm.wrapUserParam(hm.achievementHandler.ListAchievementsByUser))
			users.GET("/:id/badges", hm.wrapUserParam(hm.badgeHandler.ListBadgesByUser))
			users.GET("/:id/voice-records", hm.wrapUserParam(hm.voiceHandler.ListVoiceRecordsByUser))
			users.GET("/:id/resume", hm.wrapUserParam(hm.resumeHandler.GetResumeByUser))
			users.GET("/:id/chat-sessions", hm.wrapUserParam(hm.chatHandler.ListSessionsByUser))
		}

		mentors := v1.Group("/mentors")
		{
			mentors.GET("", hm.userHandler.ListMentors)
			mentors.POST("/promote", hm.userHandler.PromoteToMentor)
		}

		profiles := v1.Group("/profiles")
		{
			profiles.GET("/:id", hm.profileHandler.GetProfile)
			profiles.DELETE("/:id", hm.profileHandler.DeleteProfile)
		}

		quizzes := v1.Group("/quizzes")
		{
			quizzes.POST("", hm.quizHandler.CreateQuiz)
			quizzes.GET("/:id", hm.quizHandler.GetQuiz)
			quizzes.PUT("/:id", hm.quizHandler.UpdateQuiz)
			quizzes.DELETE("/:id", hm.quizHandler.DeleteQuiz)
		}

		achievements := v1.Group("/achievements")
		{
			achievements.POST("", hm.achievementHandler.CreateAchievement)
			achievements.GET("/:id", hm.achievementHandler.GetAchievement)
			achievements.PUT("/:id", hm.achievementHandler.UpdateAchievement)
			achievements.DELETE("/:id", hm.achievementHandler.DeleteAchievement)
		}

		badges := v1.Group("/badges")
		{
			badges.POST("", hm.badgeHandler.AwardBadge)
			badges.GET("/:id", hm.badgeHandler.GetBadge)
			badges.DELETE("/:id", hm.badgeHandler.DeleteBadge)
		}

		voiceRecords := v1.Group("/voice-records")
		{
			voiceRecords.POST("", hm.voiceHandler.CreateVoiceRecord)
			voiceRecords.POST("/upload", hm.voiceHandler.UploadVoice)
			voiceRecords.GET("/:id", hm.voiceHandler.GetVoiceRecord)
			voiceRecords.DELETE("/:id", hm.voiceHandler.DeleteVoiceRecord)
		}

		resumes := v1.Group("/resumes")
		{
			resumes.POST("", hm.resumeHandler.SaveResume)
			resumes.GET("/:id", hm.resumeHandler.GetResume)
			resumes.GET("/:id/pdf", hm.resumeHandler.DownloadResumePDF)
			resumes.PUT("/:id", hm.resumeHandler.UpdateResume)
			resumes.DELETE("/:id", hm.resumeHandler.DeleteResume)
		}

		chat := v1.Group("/chat")
		{
			chat.POST("/sessions", hm.chatHandler.CreateSession)
			chat.GET("/sessions/:id", hm.chatHandler.GetSession)
			chat.GET("/sessions/:id/messages", hm.chatHandler.ListMessages)
			chat.DELETE("/sessions/:id", hm.chatHandler.DeleteSession)
			chat.POST("/messages", hm.chatHandler.PostMessage)
		}

		v1.POST("/translate", hm.translationHandler.Translate)
		v1.GET("/translate", hm.translationHandler.TranslateQuery)
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		if err := hm.serviceManager.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(503, gin.H{
				"status":  "unhealthy",
				"service": "mentorship-service",
				"error":   err.Error(),
			})
			return
		}
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "mentorship-service",
		})
	})
}

// wrapUserParam adapts handlers that read the "user_id" path parameter to
// routes that bind it as ":id" under /users.
func (hm *HandlerManager) wrapUserParam(handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Params = append(c.Params, gin.Param{Key: "user_id", Value: c.Param("id")})
		handler(c)
	}
}
