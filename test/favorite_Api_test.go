package test

import (
	"bytes"
	"cinelogBackend/auth"
	"cinelogBackend/domain/favorite"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// === GET ===
func TestGetFavorites(t *testing.T) {
	router, authManager, _ := SetupTestServer(t)

	token, err := authManager.CreateAccessToken(auth.AuthenticatedUser{UserId: TestUserOne})
	require.NoError(t, err)

	req, _ := http.NewRequest("GET", "/api/favorites", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var response favorite.ListOut
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &response))
	assert.ElementsMatch(t, []int64{101, 202}, response.Favorites)
}

func TestGetFavorites_OtherUserIsEmpty(t *testing.T) {
	router, authManager, _ := SetupTestServer(t)

	token, err := authManager.CreateAccessToken(auth.AuthenticatedUser{UserId: TestUserTwo})
	require.NoError(t, err)

	req, _ := http.NewRequest("GET", "/api/favorites", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var response favorite.ListOut
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &response))
	assert.Empty(t, response.Favorites)
}

func TestGetFavorites_Unauthorized(t *testing.T) {
	router, _, _ := SetupTestServer(t)

	req, _ := http.NewRequest("GET", "/api/favorites", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

// === Status ===
func TestFavoriteStatus(t *testing.T) {
	router, authManager, _ := SetupTestServer(t)

	token, err := authManager.CreateAccessToken(auth.AuthenticatedUser{UserId: TestUserOne})
	require.NoError(t, err)

	req, _ := http.NewRequest("GET", "/api/favorites/101", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var response favorite.StatusOut
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &response))
	assert.True(t, response.IsFavorite)
}

func TestFavoriteStatus_Anonymous(t *testing.T) {
	router, _, _ := SetupTestServer(t)

	// No session: the check answers negatively instead of rejecting
	req, _ := http.NewRequest("GET", "/api/favorites/101", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var response favorite.StatusOut
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &response))
	assert.False(t, response.IsFavorite)
}

func TestFavoriteStatus_InvalidMovieId(t *testing.T) {
	router, _, _ := SetupTestServer(t)

	req, _ := http.NewRequest("GET", "/api/favorites/not-a-number", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

// === POST ===
func TestAddFavorite(t *testing.T) {
	router, authManager, _ := SetupTestServer(t)

	token, err := authManager.CreateAccessToken(auth.AuthenticatedUser{UserId: TestUserTwo})
	require.NoError(t, err)

	movieId := int64(550)
	payload, _ := json.Marshal(favorite.FavoriteIn{MovieID: &movieId})

	req, _ := http.NewRequest("POST", "/api/favorites", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// A successful insert answers 200, not 201
	assert.Equal(t, http.StatusOK, resp.Code)

	var response favorite.AddOut
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, int64(550), response.Favorite)

	// The same movie again is a conflict
	payload, _ = json.Marshal(favorite.FavoriteIn{MovieID: &movieId})
	dupReq, _ := http.NewRequest("POST", "/api/favorites", bytes.NewBuffer(payload))
	dupReq.Header.Set("Content-Type", "application/json")
	dupReq.AddCookie(&http.Cookie{Name: "accessToken", Value: token})

	dupResp := httptest.NewRecorder()
	router.ServeHTTP(dupResp, dupReq)
	assert.Equal(t, http.StatusConflict, dupResp.Code)
}

func TestAddFavorite_Duplicate(t *testing.T) {
	router, authManager, db := SetupTestServer(t)

	token, err := authManager.CreateAccessToken(auth.AuthenticatedUser{UserId: TestUserOne})
	require.NoError(t, err)

	// Movie 101 is already favorited
	movieId := int64(101)
	payload, _ := json.Marshal(favorite.FavoriteIn{MovieID: &movieId})

	req, _ := http.NewRequest("POST", "/api/favorites", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusConflict, resp.Code)

	var count int64
	db.Model(&favorite.UserFavorite{}).Where("movie_id = ?", 101).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAddFavorite_MissingMovieId(t *testing.T) {
	router, authManager, _ := SetupTestServer(t)

	token, err := authManager.CreateAccessToken(auth.AuthenticatedUser{UserId: TestUserOne})
	require.NoError(t, err)

	req, _ := http.NewRequest("POST", "/api/favorites", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

// === DELETE ===
func TestRemoveFavorite(t *testing.T) {
	router, authManager, db := SetupTestServer(t)

	token, err := authManager.CreateAccessToken(auth.AuthenticatedUser{UserId: TestUserOne})
	require.NoError(t, err)

	req, _ := http.NewRequest("DELETE", "/api/favorites?movieId=101", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var count int64
	db.Model(&favorite.UserFavorite{}).Where("movie_id = ?", 101).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestRemoveFavorite_AbsentIsOk(t *testing.T) {
	router, authManager, _ := SetupTestServer(t)

	token, err := authManager.CreateAccessToken(auth.AuthenticatedUser{UserId: TestUserOne})
	require.NoError(t, err)

	req, _ := http.NewRequest("DELETE", "/api/favorites?movieId=99999", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestRemoveFavorite_MissingQuery(t *testing.T) {
	router, authManager, _ := SetupTestServer(t)

	token, err := authManager.CreateAccessToken(auth.AuthenticatedUser{UserId: TestUserOne})
	require.NoError(t, err)

	req, _ := http.NewRequest("DELETE", "/api/favorites", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

// === Toggle ===
func TestToggleFavorite_FlipsAndRestores(t *testing.T) {
	router, authManager, db := SetupTestServer(t)

	token, err := authManager.CreateAccessToken(auth.AuthenticatedUser{UserId: TestUserOne})
	require.NoError(t, err)

	toggle := func() favorite.ToggleOut {
		req, _ := http.NewRequest("POST", "/api/favorites/101/toggle", nil)
		req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})

		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		require.Equal(t, http.StatusOK, resp.Code)

		var response favorite.ToggleOut
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &response))
		return response
	}

	// 101 starts favorited, so the first toggle removes it
	first := toggle()
	assert.False(t, first.IsFavorite)

	second := toggle()
	assert.True(t, second.IsFavorite)

	// State is back to exactly one row
	var count int64
	db.Model(&favorite.UserFavorite{}).Where("movie_id = ?", 101).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestToggleFavorite_Unauthorized(t *testing.T) {
	router, _, _ := SetupTestServer(t)

	req, _ := http.NewRequest("POST", "/api/favorites/101/toggle", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
