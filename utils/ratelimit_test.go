package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A zero refill rate with a burst of one lets exactly one request through per client.
func setupLimitedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RateLimiterMiddleware(0, 1))
	router.GET("/ping", func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	return router
}

func limitedRequest(router *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", "/ping", nil)
	req.RemoteAddr = remoteAddr

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestRateLimiter_RejectsWhenBucketIsEmpty(t *testing.T) {
	router := setupLimitedRouter()

	first := limitedRequest(router, "10.0.0.1:40000")
	require.Equal(t, http.StatusOK, first.Code)

	second := limitedRequest(router, "10.0.0.1:40000")
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Contains(t, second.Body.String(), ErrRateLimitExceeded.Error())
}

func TestRateLimiter_BucketsArePerClient(t *testing.T) {
	router := setupLimitedRouter()

	require.Equal(t, http.StatusOK, limitedRequest(router, "10.0.0.1:40000").Code)
	require.Equal(t, http.StatusTooManyRequests, limitedRequest(router, "10.0.0.1:40001").Code)

	// A different client IP gets its own bucket
	assert.Equal(t, http.StatusOK, limitedRequest(router, "10.0.0.2:40000").Code)
}
