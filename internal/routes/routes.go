package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Deepanshu41008/Yapassio-platform/internal/auth"
	"github.com/Deepanshu41008/Yapassio-platform/internal/handlers"
	"github.com/Deepanshu41008/Yapassio-platform/internal/middleware"
	"github.com/Deepanshu41008/Yapassio-platform/internal/models"
)

// RegisterRoutes wires every endpoint under /api/v1. Profile reads and
// matching are open to any authenticated user; verification is admin only.
func RegisterRoutes(router *gin.Engine, appHandlers *handlers.AppHandlers, tokens *auth.TokenManager) {
	router.GET("/health", appHandlers.HealthHandler.Health)

	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(tokens))
	{
		api.POST("/mentors", appHandlers.ProfileHandler.RegisterMentor)
		api.GET("/mentors/:mentorId", appHandlers.ProfileHandler.GetMentor)
		api.POST("/students", appHandlers.ProfileHandler.UpsertStudent)
		api.GET("/students/:studentId", appHandlers.ProfileHandler.GetStudent)

		matching := api.Group("/matching")
		{
			matching.POST("/find-mentors", appHandlers.MatchingHandler.FindMentors)
			matching.POST("/request-connection", appHandlers.MatchingHandler.RequestConnection)
			matching.GET("/weights", appHandlers.MatchingHandler.GetWeights)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.RequireRoles(models.UserRoleAdmin))
		{
			admin.PUT("/mentors/:mentorId/verify", appHandlers.ProfileHandler.VerifyMentor)
		}
	}
}
