package movie

import (
	"cinelogBackend/utils"
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type (
	Handler interface {
		Popular(ctx *gin.Context)
		TopRated(ctx *gin.Context)
		NowPlaying(ctx *gin.Context)
		Upcoming(ctx *gin.Context)
		Search(ctx *gin.Context)
		Genres(ctx *gin.Context)
		ByGenre(ctx *gin.Context)
		Details(ctx *gin.Context)
		Similar(ctx *gin.Context)
		Credits(ctx *gin.Context)
		Videos(ctx *gin.Context)
	}

	movieHandler struct {
		tmdbClient TmdbClient
	}
)

func CreateHandler(tmdbClient TmdbClient) Handler {
	return &movieHandler{
		tmdbClient: tmdbClient,
	}
}

func (h *movieHandler) Popular(ctx *gin.Context) {
	h.servePage(ctx, h.tmdbClient.Popular)
}

func (h *movieHandler) TopRated(ctx *gin.Context) {
	h.servePage(ctx, h.tmdbClient.TopRated)
}

func (h *movieHandler) NowPlaying(ctx *gin.Context) {
	h.servePage(ctx, h.tmdbClient.NowPlaying)
}

func (h *movieHandler) Upcoming(ctx *gin.Context) {
	h.servePage(ctx, h.tmdbClient.Upcoming)
}

func (h *movieHandler) Search(ctx *gin.Context) {
	query := strings.TrimSpace(ctx.Query("query"))
	if query == "" {
		ctx.JSON(utils.CreateErrorResponse(utils.ErrValidation))
		return
	}

	result, err := h.tmdbClient.Search(ctx, query, pageParam(ctx))
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, result)
}

func (h *movieHandler) Genres(ctx *gin.Context) {
	result, err := h.tmdbClient.Genres(ctx)
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, result)
}

func (h *movieHandler) ByGenre(ctx *gin.Context) {
	genreId, err := strconv.ParseInt(ctx.Param("genreId"), 10, 64)
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(utils.ErrValidation))
		return
	}

	result, err := h.tmdbClient.ByGenre(ctx, genreId, pageParam(ctx))
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, result)
}

func (h *movieHandler) Details(ctx *gin.Context) {
	movieId, ok := movieIdParam(ctx)
	if !ok {
		return
	}

	result, err := h.tmdbClient.Details(ctx, movieId)
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, result)
}

func (h *movieHandler) Similar(ctx *gin.Context) {
	movieId, ok := movieIdParam(ctx)
	if !ok {
		return
	}

	result, err := h.tmdbClient.Similar(ctx, movieId, pageParam(ctx))
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, result)
}

func (h *movieHandler) Credits(ctx *gin.Context) {
	movieId, ok := movieIdParam(ctx)
	if !ok {
		return
	}

	result, err := h.tmdbClient.Credits(ctx, movieId)
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, result)
}

func (h *movieHandler) Videos(ctx *gin.Context) {
	movieId, ok := movieIdParam(ctx)
	if !ok {
		return
	}

	result, err := h.tmdbClient.Videos(ctx, movieId)
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, result)
}

func (h *movieHandler) servePage(ctx *gin.Context, fetch func(ctx context.Context, page int) (*PageOut, error)) {
	result, err := fetch(ctx, pageParam(ctx))
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, result)
}

func pageParam(ctx *gin.Context) int {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}

	return page
}

func movieIdParam(ctx *gin.Context) (int64, bool) {
	movieId, err := strconv.ParseInt(ctx.Param("movieId"), 10, 64)
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(utils.ErrMovieIdInvalid))
		return 0, false
	}

	return movieId, true
}
