package routes

import (
	"unibridge_backend/internal/auth"
	"unibridge_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers, guard *auth.Guard) {
	ginRouter.GET("/health", handlers.HealthCheck)

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.UserHandler.RegisterRoutes(api, guard)
		appHandlers.StudentProfileHandler.RegisterRoutes(api, guard)
		appHandlers.OrganizationProfileHandler.RegisterRoutes(api, guard)
		appHandlers.ProjectHandler.RegisterRoutes(api, guard)
		appHandlers.ApplicationHandler.RegisterRoutes(api, guard)
	}
}
