package favorite

import (
	"cinelogBackend/auth"
	"cinelogBackend/utils"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type (
	Handler interface {
		Get(ctx *gin.Context)
		Status(ctx *gin.Context)
		Add(ctx *gin.Context)
		Remove(ctx *gin.Context)
		Toggle(ctx *gin.Context)
	}

	favoriteHandler struct {
		favoriteService Service
	}
)

func CreateHandler(favoriteService Service) Handler {
	return &favoriteHandler{
		favoriteService: favoriteService,
	}
}

func (h *favoriteHandler) Get(ctx *gin.Context) {
	authUser := ctx.MustGet(auth.AuthUserKey).(auth.AuthenticatedUser)
	result, err := h.favoriteService.Get(ctx, authUser)
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, ListOut{Favorites: result})
}

// Status Reports whether the movie is favorited. Anonymous callers get a plain
// negative answer instead of an auth error so the web client can render before
// login.
func (h *favoriteHandler) Status(ctx *gin.Context) {
	movieId, err := strconv.ParseInt(ctx.Param("movieId"), 10, 64)
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(utils.ErrMovieIdInvalid))
		return
	}

	rawUser, ok := ctx.Get(auth.AuthUserKey)
	if !ok {
		ctx.JSON(http.StatusOK, StatusOut{IsFavorite: false})
		return
	}

	isFavorite, err := h.favoriteService.IsFavorite(ctx, movieId, rawUser.(auth.AuthenticatedUser))
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, StatusOut{IsFavorite: isFavorite})
}

func (h *favoriteHandler) Add(ctx *gin.Context) {
	payload := FavoriteIn{}
	if err := ctx.Bind(&payload); err != nil || payload.MovieID == nil {
		ctx.JSON(utils.CreateErrorResponse(utils.ErrMovieIdInvalid))
		return
	}

	authUser := ctx.MustGet(auth.AuthUserKey).(auth.AuthenticatedUser)
	if err := h.favoriteService.Add(ctx, *payload.MovieID, authUser); err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, AddOut{Success: true, Favorite: *payload.MovieID})
}

func (h *favoriteHandler) Remove(ctx *gin.Context) {
	rawMovieId, ok := ctx.GetQuery("movieId")
	if !ok {
		ctx.JSON(utils.CreateErrorResponse(utils.ErrMovieIdRequired))
		return
	}

	movieId, err := strconv.ParseInt(rawMovieId, 10, 64)
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(utils.ErrMovieIdInvalid))
		return
	}

	authUser := ctx.MustGet(auth.AuthUserKey).(auth.AuthenticatedUser)
	if err := h.favoriteService.Remove(ctx, movieId, authUser); err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(utils.CreateSuccessResponse())
}

func (h *favoriteHandler) Toggle(ctx *gin.Context) {
	movieId, err := strconv.ParseInt(ctx.Param("movieId"), 10, 64)
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(utils.ErrMovieIdInvalid))
		return
	}

	authUser := ctx.MustGet(auth.AuthUserKey).(auth.AuthenticatedUser)
	isFavorite, err := h.favoriteService.Toggle(ctx, movieId, authUser)
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, ToggleOut{Success: true, IsFavorite: isFavorite})
}
