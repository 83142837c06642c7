package test

import (
	"cinelogBackend/domain/user"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// === POST === login
func TestLoginNative_Disabled(t *testing.T) {
	// Native admin login is off in the test configuration
	router, _, _ := SetupTestServer(t)

	body := `{"username":"admin","password":"secret"}`
	req := httptest.NewRequest("POST", "/api/users/login/native", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestLoginNative_MalformedBody(t *testing.T) {
	router, _, _ := SetupTestServer(t)

	req := httptest.NewRequest("POST", "/api/users/login/native", strings.NewReader(`{"username":`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

// === POST === logout
func TestLogout_ClearsCookies(t *testing.T) {
	router, _, _ := SetupTestServer(t)

	req := httptest.NewRequest("POST", "/api/users/logout", nil)
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	for _, cookie := range resp.Result().Cookies() {
		if cookie.Name == "accessToken" || cookie.Name == "authToken" {
			assert.Empty(t, cookie.Value)
			assert.Negative(t, cookie.MaxAge)
		}
	}
}

// === GET === login config
func TestAuthConfig(t *testing.T) {
	router, _, _ := SetupTestServer(t)

	req := httptest.NewRequest("GET", "/api/users/login/config", nil)
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var response user.AuthConfigOut
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &response))
	assert.False(t, response.NativeEnabled)
	assert.False(t, response.OpenIdEnabled)
}

// === GET === login openid
func TestLoginOpenId_Disabled(t *testing.T) {
	router, _, _ := SetupTestServer(t)

	req := httptest.NewRequest("GET", "/api/users/login/openid", nil)
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

// === GET === refresh
func TestRefreshToken_NoAuthToken(t *testing.T) {
	router, _, _ := SetupTestServer(t)

	req := httptest.NewRequest("GET", "/api/users/login/refresh", nil)
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestRefreshToken_ValidAuthToken(t *testing.T) {
	router, authManager, _ := SetupTestServer(t)

	authToken, err := authManager.CreateAuthToken(TestUserOne)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/users/login/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "authToken", Value: authToken})
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &response))
	assert.NotEmpty(t, response["accessToken"])

	// The refreshed token authenticates API calls
	authedReq := httptest.NewRequest("GET", "/api/favorites", nil)
	authedReq.AddCookie(&http.Cookie{Name: "accessToken", Value: response["accessToken"]})
	authedResp := httptest.NewRecorder()
	router.ServeHTTP(authedResp, authedReq)

	assert.Equal(t, http.StatusOK, authedResp.Code)
}

func TestRefreshToken_InvalidAuthToken(t *testing.T) {
	router, _, _ := SetupTestServer(t)

	req := httptest.NewRequest("GET", "/api/users/login/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "authToken", Value: "broken.token.value"})
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
