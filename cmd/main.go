package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/garimatiwari2004/jobeefie-backend/config"
	"github.com/garimatiwari2004/jobeefie-backend/database"
	_ "github.com/garimatiwari2004/jobeefie-backend/docs" // Swagger docs
	"github.com/garimatiwari2004/jobeefie-backend/internal/controller"
	"github.com/garimatiwari2004/jobeefie-backend/internal/logger"
	"github.com/garimatiwari2004/jobeefie-backend/internal/model"
	"github.com/garimatiwari2004/jobeefie-backend/internal/repository"
	"github.com/garimatiwari2004/jobeefie-backend/internal/service"
)

// @title Jobeefie API
// @version 1.0
// @description Resume analysis and AI mock-interview backend.
// @host localhost:5000
// @BasePath /
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewOnboardingRepository,
			repository.NewSessionRepository,
			repository.NewReportRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewGeminiClient,
			service.NewInterviewAIService,
			service.NewInterviewService,
			service.NewOnboardingService,
			service.NewResumeAnalyzerService,
			service.NewPDFParserService,
			service.NewStorageService,
		),

		// API Controllers Layer
		fx.Provide(
			controller.NewOnboardingController,
			controller.NewResumeController,
			controller.NewInterviewController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(EnsureUploadDir),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	onboardingCtrl *controller.OnboardingController,
	resumeCtrl *controller.ResumeController,
	interviewCtrl *controller.InterviewController,
) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "jobeefie backend running"})
	})

	onboardingGroup := router.Group("/api/onboarding")
	{
		onboardingGroup.POST("", onboardingCtrl.CreateProfile)
		onboardingGroup.GET("/:clerkId", onboardingCtrl.GetProfile)
	}

	resumeGroup := router.Group("/api/resume")
	{
		resumeGroup.POST("/upload", resumeCtrl.UploadResume)
	}

	mockGroup := router.Group("/api/mock")
	{
		mockGroup.POST("/start", interviewCtrl.StartSession)
		mockGroup.GET("/next/:sessionId", interviewCtrl.NextQuestion)
		mockGroup.POST("/answer", interviewCtrl.SubmitAnswer)
		mockGroup.POST("/finish", interviewCtrl.FinishSession)
		mockGroup.GET("/report/:reportId", interviewCtrl.GetReport)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Jobeefie API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Onboarding{},
		&model.InterviewSession{},
		&model.InterviewReport{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

func EnsureUploadDir(storage service.StorageService) error {
	return storage.EnsureUploadDir()
}
