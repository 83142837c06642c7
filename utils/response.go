package utils

import (
	"errors"
	"net/http"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

func CreateSuccessResponse() (int, SuccessResponse) {
	return http.StatusOK, SuccessResponse{Success: true}
}

// CreateErrorResponse Translates a service error into an HTTP status and error body.
// Unknown errors are treated as store failures and surfaced as 500 with the
// message passed through.
func CreateErrorResponse(err error) (int, ErrorResponse) {
	switch {
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrCollectionNameEmpty),
		errors.Is(err, ErrMovieIdRequired),
		errors.Is(err, ErrMovieIdInvalid),
		errors.Is(err, ErrImportInvalid),
		errors.Is(err, ErrInvalidCredentials):
		return http.StatusBadRequest, ErrorResponse{Code: 400, Message: err.Error()}
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, ErrTokenInvalid),
		// A session whose user row no longer exists is treated as unauthenticated
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrOpenIDAuthDisabled),
		errors.Is(err, ErrNativeAuthDisabled):
		return http.StatusUnauthorized, ErrorResponse{Code: 401, Message: err.Error()}
	case errors.Is(err, ErrCollectionNotFound),
		errors.Is(err, ErrFavoriteNotFound):
		return http.StatusNotFound, ErrorResponse{Code: 404, Message: err.Error()}
	case errors.Is(err, ErrFavoriteExists),
		errors.Is(err, ErrMovieInCollection):
		return http.StatusConflict, ErrorResponse{Code: 409, Message: err.Error()}
	case errors.Is(err, ErrRateLimitExceeded):
		return http.StatusTooManyRequests, ErrorResponse{Code: 429, Message: err.Error()}
	}

	return http.StatusInternalServerError, ErrorResponse{Code: 500, Message: err.Error()}
}
