package collection

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
		GetByUuid(ctx *gin.Context)
		Create(ctx *gin.Context)
		Update(ctx *gin.Context)
		Delete(ctx *gin.Context)
		AddMovie(ctx *gin.Context)
		RemoveMovie(ctx *gin.Context)
		MovieStatus(ctx *gin.Context)
		Export(ctx *gin.Context)
		Import(ctx *gin.Context)
	}

	collectionHandler struct {
		collectionService Service
	}
)

func CreateHandler(collectionService Service) Handler {
	return &collectionHandler{
		collectionService: collectionService,
	}
}

func (h *collectionHandler) Get(ctx *gin.Context) {
	authUser := ctx.MustGet(auth.AuthUserKey).(auth.AuthenticatedUser)
	result, err := h.collectionService.Get(ctx, authUser)
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, ListOut{Collections: result})
}

func (h *collectionHandler) GetByUuid(ctx *gin.Context) {
	authUser := ctx.MustGet(auth.AuthUserKey).(auth.AuthenticatedUser)
	result, err := h.collectionService.GetByUuid(ctx, ctx.Param("collectionId"), authUser)
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, ItemOut{Collection: *result})
}

func (h *collectionHandler) Create(ctx *gin.Context) {
	payload := CollectionIn{}
	if err := ctx.Bind(&payload); err != nil {
		ctx.JSON(utils.CreateErrorResponse(utils.ErrValidation))
		return
	}

	authUser := ctx.MustGet(auth.AuthUserKey).(auth.AuthenticatedUser)
	result, err := h.collectionService.Create(ctx, payload, authUser)
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, ItemOut{Collection: *result})
}

func (h *collectionHandler) Update(ctx *gin.Context) {
	payload := CollectionUpdateIn{}
	if err := ctx.Bind(&payload); err != nil {
		ctx.JSON(utils.CreateErrorResponse(utils.ErrValidation))
		return
	}

	authUser := ctx.MustGet(auth.AuthUserKey).(auth.AuthenticatedUser)
	result, err := h.collectionService.Update(ctx, payload, ctx.Param("collectionId"), authUser)
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, ItemOut{Collection: *result})
}

func (h *collectionHandler) Delete(ctx *gin.Context) {
	authUser := ctx.MustGet(auth.AuthUserKey).(auth.AuthenticatedUser)
	if err := h.collectionService.Delete(ctx, ctx.Param("collectionId"), authUser); err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(utils.CreateSuccessResponse())
}

func (h *collectionHandler) AddMovie(ctx *gin.Context) {
	payload := CollectionMovieIn{}
	if err := ctx.Bind(&payload); err != nil || payload.MovieID == nil {
		ctx.JSON(utils.CreateErrorResponse(utils.ErrMovieIdInvalid))
		return
	}

	authUser := ctx.MustGet(auth.AuthUserKey).(auth.AuthenticatedUser)
	if err := h.collectionService.AddMovie(ctx, ctx.Param("collectionId"), *payload.MovieID, authUser); err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(utils.CreateSuccessResponse())
}

// RemoveMovie The movie to remove is passed as a query parameter, mirroring how
// the web client issues deletes.
func (h *collectionHandler) RemoveMovie(ctx *gin.Context) {
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
	if err := h.collectionService.RemoveMovie(ctx, ctx.Param("collectionId"), movieId, authUser); err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(utils.CreateSuccessResponse())
}

func (h *collectionHandler) MovieStatus(ctx *gin.Context) {
	movieId, err := strconv.ParseInt(ctx.Param("movieId"), 10, 64)
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(utils.ErrMovieIdInvalid))
		return
	}

	authUser := ctx.MustGet(auth.AuthUserKey).(auth.AuthenticatedUser)
	isInCollection, err := h.collectionService.HasMovie(ctx, ctx.Param("collectionId"), movieId, authUser)
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, MovieStatusOut{IsInCollection: isInCollection})
}

func (h *collectionHandler) Export(ctx *gin.Context) {
	authUser := ctx.MustGet(auth.AuthUserKey).(auth.AuthenticatedUser)
	result, err := h.collectionService.Export(ctx, ctx.Param("collectionId"), authUser)
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, ExportOut{Export: result})
}

func (h *collectionHandler) Import(ctx *gin.Context) {
	payload := ImportIn{}
	if err := ctx.Bind(&payload); err != nil || payload.Data == "" {
		ctx.JSON(utils.CreateErrorResponse(utils.ErrImportInvalid))
		return
	}

	authUser := ctx.MustGet(auth.AuthUserKey).(auth.AuthenticatedUser)
	result, err := h.collectionService.Import(ctx, payload, authUser)
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, ItemOut{Collection: *result})
}
