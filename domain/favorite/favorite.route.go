package favorite

import (
	"cinelogBackend/auth"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(route *gin.Engine, handler Handler, authManager auth.AuthManager) {
	routes := route.Group("/api/favorites", authManager.AuthenticatorMiddleware())
	{
		routes.GET("", handler.Get)
		routes.POST("", handler.Add)
		routes.DELETE("", handler.Remove)
		routes.POST("/:movieId/toggle", handler.Toggle)
	}

	// The status check accepts anonymous callers.
	statusRoutes := route.Group("/api/favorites", authManager.OptionalAuthenticatorMiddleware())
	{
		statusRoutes.GET("/:movieId", handler.Status)
	}
}
