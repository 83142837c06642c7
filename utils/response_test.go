package utils

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateErrorResponse_StatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{ErrCollectionNameEmpty, http.StatusBadRequest},
		{ErrMovieIdRequired, http.StatusBadRequest},
		{ErrImportInvalid, http.StatusBadRequest},
		{ErrUnauthorized, http.StatusUnauthorized},
		{ErrTokenInvalid, http.StatusUnauthorized},
		{ErrUserNotFound, http.StatusUnauthorized},
		{ErrCollectionNotFound, http.StatusNotFound},
		{ErrFavoriteExists, http.StatusConflict},
		{ErrMovieInCollection, http.StatusConflict},
		{ErrRateLimitExceeded, http.StatusTooManyRequests},
		{ErrDatabase, http.StatusInternalServerError},
	}

	for _, testCase := range cases {
		status, body := CreateErrorResponse(testCase.err)
		assert.Equal(t, testCase.status, status)
		assert.Equal(t, testCase.status, body.Code)
		assert.Equal(t, testCase.err.Error(), body.Message)
	}
}

func TestCreateErrorResponse_UnknownErrorPassesMessageThrough(t *testing.T) {
	status, body := CreateErrorResponse(errors.New("disk on fire"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "disk on fire", body.Message)
}

func TestCreateSuccessResponse(t *testing.T) {
	status, body := CreateSuccessResponse()
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, body.Success)
}
