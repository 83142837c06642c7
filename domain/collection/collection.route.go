package collection

import (
	"cinelogBackend/auth"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(route *gin.Engine, handler Handler, authManager auth.AuthManager) {
	routes := route.Group("/api/collections", authManager.AuthenticatorMiddleware())
	{
		routes.GET("", handler.Get)
		routes.POST("", handler.Create)
		routes.GET("/:collectionId", handler.GetByUuid)
		routes.PUT("/:collectionId", handler.Update)
		routes.DELETE("/:collectionId", handler.Delete)
		routes.POST("/:collectionId/movies", handler.AddMovie)
		routes.DELETE("/:collectionId/movies", handler.RemoveMovie)
		routes.GET("/:collectionId/movies/:movieId", handler.MovieStatus)
		routes.GET("/:collectionId/export", handler.Export)
	}

	// Registered outside the collections group so the path does not collide
	// with the :collectionId wildcard.
	importRoutes := route.Group("/api/import", authManager.AuthenticatorMiddleware())
	{
		importRoutes.POST("/collections", handler.Import)
	}
}
