package test

import (
	"cinelogBackend/auth"
	"cinelogBackend/config"
	"errors"

	"github.com/gin-gonic/gin"
)

// MockAuthManager Lets unit tests force a fixed caller without issuing tokens.
type MockAuthManager struct {
	User auth.AuthenticatedUser
}

func (m MockAuthManager) Init(config *config.CinelogConfig) {}

func (m MockAuthManager) CreateAuthToken(userId string) (string, error) {
	return "mock-auth-token", nil
}

func (m MockAuthManager) CreateAccessToken(authUser auth.AuthenticatedUser) (string, error) {
	return "mock-access-token", nil
}

func (m MockAuthManager) AuthenticateUser(tokenString string) (*auth.AuthenticatedUser, error) {
	user := m.User
	return &user, nil
}

func (m MockAuthManager) LoginNative(username string, password string) (string, string, error) {
	return "mock-token", "mock-access", nil
}

func (m MockAuthManager) GetAuthCodeURL(stateToken string) string {
	return "https://mock-auth"
}

func (m MockAuthManager) AuthenticateWithCode(authCode string, mapper func(string, string) (string, error)) (*auth.AuthenticatedUser, error) {
	userId, err := mapper("mock-sub", "mock-profile")
	if err != nil {
		return nil, err
	}
	return &auth.AuthenticatedUser{UserId: userId}, nil
}

func (m MockAuthManager) RefreshAccessToken(authToken string) (string, error) {
	if authToken == "" {
		return "", errors.New("token missing")
	}
	return "refreshed-token", nil
}

func (m MockAuthManager) RegisterTestUser(user auth.AuthenticatedUser) (string, error) {
	return user.UserId, nil
}

func (m MockAuthManager) AuthenticatorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(auth.AuthUserKey, m.User)
		c.Next()
	}
}

func (m MockAuthManager) OptionalAuthenticatorMiddleware() gin.HandlerFunc {
	return m.AuthenticatorMiddleware()
}
