package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Deepanshu41008/Yapassio-platform/internal/ai"
	"github.com/Deepanshu41008/Yapassio-platform/internal/auth"
	"github.com/Deepanshu41008/Yapassio-platform/internal/cache"
	"github.com/Deepanshu41008/Yapassio-platform/internal/config"
	"github.com/Deepanshu41008/Yapassio-platform/internal/handlers"
	"github.com/Deepanshu41008/Yapassio-platform/internal/logger"
	"github.com/Deepanshu41008/Yapassio-platform/internal/middleware"
	"github.com/Deepanshu41008/Yapassio-platform/internal/models"
	"github.com/Deepanshu41008/Yapassio-platform/internal/repositories"
	"github.com/Deepanshu41008/Yapassio-platform/internal/routes"
	"github.com/Deepanshu41008/Yapassio-platform/internal/services"
	"github.com/Deepanshu41008/Yapassio-platform/internal/validator"
	"github.com/Deepanshu41008/Yapassio-platform/internal/workers"
)

func Run() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	log := logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format)
	log.Info("configuration loaded", map[string]interface{}{"env": cfg.Server.Env})

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		log.WithError(err).Error("failed to connect to database", nil)
		panic(err)
	}
	if err := gormDB.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		log.WithError(err).Error("failed to ensure uuid extension", nil)
		panic(err)
	}
	if err := gormDB.AutoMigrate(&models.Mentor{}, &models.Student{}, &models.MatchingRequest{}); err != nil {
		log.WithError(err).Error("database migration failed", nil)
		panic(err)
	}
	log.Info("database connected", nil)

	router, err := SetupRouter(context.Background(), cfg, gormDB, log)
	if err != nil {
		log.WithError(err).Error("failed to set up router", nil)
		panic(err)
	}

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("server starting", map[string]interface{}{"address": address})
	if err := router.Run(address); err != nil {
		log.WithError(err).Error("server stopped", nil)
		panic(err)
	}
}

// SetupRouter wires repositories, services and handlers onto a gin engine.
// Redis and Gemini are both optional: without them the platform runs with
// cold profile reads and degraded scoring.
func SetupRouter(ctx context.Context, cfg *config.Config, gormDB *gorm.DB, log logger.Logger) (*gin.Engine, error) {
	var collaborator ai.Collaborator
	if cfg.Gemini.APIKey != "" {
		client, err := ai.NewGeminiClient(ctx, cfg.Gemini)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize gemini client: %w", err)
		}
		collaborator = client
	} else {
		log.Warn("no gemini api key configured; embeddings and explanations disabled", nil)
	}

	var profileCache *cache.ProfileCache
	if cfg.Redis.Addr != "" {
		profileCache = cache.NewProfileCache(cache.NewRedisClient(cfg.Redis), cfg.Redis.CacheTTL)
		log.Info("redis profile cache enabled", map[string]interface{}{"addr": cfg.Redis.Addr})
	}

	mentorRepo := repositories.NewMentorRepository(gormDB)
	studentRepo := repositories.NewStudentRepository(gormDB)
	requestRepo := repositories.NewMatchingRequestRepository(gormDB)

	workers.NewExpiryWorker(requestRepo, time.Hour, log).Start(ctx)

	matchingService := services.NewMatchingService(
		studentRepo, mentorRepo, requestRepo, collaborator, profileCache, cfg.Matching, log)
	profileService := services.NewProfileService(
		mentorRepo, studentRepo, collaborator, profileCache, log)

	base := handlers.NewBaseHandler(validator.New(), log)
	appHandlers := &handlers.AppHandlers{
		MatchingHandler: handlers.NewMatchingHandler(base, matchingService),
		ProfileHandler:  handlers.NewProfileHandler(base, profileService),
		HealthHandler:   handlers.NewHealthHandler(gormDB),
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(log))

	routes.RegisterRoutes(router, appHandlers, auth.NewTokenManager(cfg.JWT.Secret))

	return router, nil
}
