package user

import (
	"cinelogBackend/config"
	"cinelogBackend/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type (
	Handler interface {
		LoginNative(ctx *gin.Context)
		Logout(ctx *gin.Context)
		LoginOpenId(ctx *gin.Context)
		LoginOpenIdSuccess(ctx *gin.Context)
		RefreshToken(ctx *gin.Context)
		AuthConfig(ctx *gin.Context)
	}

	userHandler struct {
		userService Service
		config      *config.CinelogConfig
	}
)

func CreateHandler(userService Service, config *config.CinelogConfig) Handler {
	return &userHandler{
		userService: userService,
		config:      config,
	}
}

func (h *userHandler) RefreshToken(ctx *gin.Context) {
	authToken, err := ctx.Cookie("authToken")
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(utils.ErrUnauthorized))
		return
	}

	accessToken, err := h.userService.RefreshAccessToken(authToken)
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(utils.ErrTokenInvalid))
		return
	}

	ctx.SetCookie("accessToken", accessToken, 0, "/", "", false, false)
	ctx.JSON(http.StatusOK, gin.H{"accessToken": accessToken})
}

func (h *userHandler) AuthConfig(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, AuthConfigOut{
		NativeEnabled: h.config.Auth.EnableNativeAdmin,
		OpenIdEnabled: h.config.Auth.OpenIdIssuer != "",
	})
}

func (h *userHandler) LoginNative(ctx *gin.Context) {
	payload := CredentialsIn{}
	if err := ctx.Bind(&payload); err != nil {
		ctx.JSON(utils.CreateErrorResponse(utils.ErrInvalidCredentials))
		return
	}

	authToken, accessToken, err := h.userService.LoginNative(payload)
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.SetCookie("authToken", authToken, 0, "/", "", false, true)
	ctx.SetCookie("accessToken", accessToken, 0, "/", "", false, false)
	ctx.JSON(utils.CreateSuccessResponse())
}

func (h *userHandler) Logout(ctx *gin.Context) {
	ctx.SetCookie("authToken", "", -1, "/", "", false, true)
	ctx.SetCookie("accessToken", "", -1, "/", "", false, false)
	ctx.JSON(utils.CreateSuccessResponse())
}

func (h *userHandler) LoginOpenId(ctx *gin.Context) {
	if h.config.Auth.OpenIdIssuer == "" {
		ctx.JSON(utils.CreateErrorResponse(utils.ErrOpenIDAuthDisabled))
		return
	}

	url := h.userService.GetAuthCodeURL(ctx.Request.Referer())
	http.Redirect(ctx.Writer, ctx.Request, url, http.StatusFound)
}

func (h *userHandler) LoginOpenIdSuccess(ctx *gin.Context) {
	authToken, accessToken, err := h.userService.AuthenticateWithCode(ctx, ctx.Query("code"))
	if err != nil {
		ctx.JSON(utils.CreateErrorResponse(err))
		return
	}

	ctx.SetCookie("authToken", authToken, 0, "/", "", false, true)
	ctx.SetCookie("accessToken", accessToken, 0, "/", "", false, false)

	http.Redirect(ctx.Writer, ctx.Request, ctx.Query("state"), http.StatusFound)
}
