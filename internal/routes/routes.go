package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crm_backend/internal/auth"
	"crm_backend/internal/handlers"
	"crm_backend/internal/middleware"
)

// RegisterRoutes wires every HTTP route. Login is the only endpoint
// outside the auth middleware besides the health probe.
func RegisterRoutes(
	ginRouter *gin.Engine,
	tokens *auth.TokenManager,
	appHandlers *handlers.AppHandlers,
) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := ginRouter.Group("/api/v1")

	appHandlers.AuthHandler.RegisterPublicRoutes(api)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(tokens))
	{
		appHandlers.AuthHandler.RegisterRoutes(protected)
		appHandlers.UserHandler.RegisterRoutes(protected)
		appHandlers.ProfileHandler.RegisterRoutes(protected)
		appHandlers.BrandHandler.RegisterRoutes(protected)
		appHandlers.BillingHandler.RegisterRoutes(protected)
		appHandlers.ConnectionHandler.RegisterRoutes(protected)
	}
}
