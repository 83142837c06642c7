package movie

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(route *gin.Engine, handler Handler) {
	routes := route.Group("/api/movies")
	{
		routes.GET("/popular", handler.Popular)
		routes.GET("/top-rated", handler.TopRated)
		routes.GET("/now-playing", handler.NowPlaying)
		routes.GET("/upcoming", handler.Upcoming)
		routes.GET("/search", handler.Search)
		routes.GET("/genres", handler.Genres)
		routes.GET("/genre/:genreId", handler.ByGenre)
		routes.GET("/:movieId", handler.Details)
		routes.GET("/:movieId/similar", handler.Similar)
		routes.GET("/:movieId/credits", handler.Credits)
		routes.GET("/:movieId/videos", handler.Videos)
	}
}
