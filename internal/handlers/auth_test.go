package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/freelance-marketplace-api/internal/constants"
	"github.com/yukikurage/freelance-marketplace-api/internal/dto"
)

func TestAuthHandler_Login(t *testing.T) {
	env := setupTestEnv(t)
	user := env.createUser(t, "alice", "alice@example.com")

	w := env.request(t, http.MethodPost, "/api/users/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "password123",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.TokenResponse
	decode(t, w, &response)
	require.NotEmpty(t, response.AccessToken)
	require.Equal(t, "bearer", response.TokenType)
	require.Equal(t, user.ID, response.User.ID)

	cookies := w.Result().Cookies()
	var found bool
	for _, c := range cookies {
		if c.Name == constants.AccessTokenCookie {
			found = true
			require.NotEmpty(t, c.Value)
			require.True(t, c.HttpOnly)
		}
	}
	require.True(t, found, "access token cookie must be set")
}

func TestAuthHandler_LoginWrongPassword(t *testing.T) {
	env := setupTestEnv(t)
	env.createUser(t, "alice", "alice@example.com")

	w := env.request(t, http.MethodPost, "/api/users/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "wrong-password",
	})

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_LoginUnknownEmail(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/users/login", "", map[string]string{
		"email":    "nobody@example.com",
		"password": "password123",
	})

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_GetCurrentUser(t *testing.T) {
	env := setupTestEnv(t)
	user := env.createUser(t, "alice", "alice@example.com")

	w := env.request(t, http.MethodGet, "/api/users/me", env.token(t, user.ID), nil)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserDTO
	decode(t, w, &response)
	require.Equal(t, user.ID, response.ID)
	require.Equal(t, "alice@example.com", response.Email)
}

func TestAuthHandler_MissingTokenIsDistinctFromInvalid(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/users/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "No credentials provided")

	w = env.request(t, http.MethodGet, "/api/users/me", "not-a-token", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "Invalid or expired token")
}

func TestAuthHandler_TokenForDeletedUser(t *testing.T) {
	env := setupTestEnv(t)
	user := env.createUser(t, "alice", "alice@example.com")
	token := env.token(t, user.ID)

	require.NoError(t, env.db.Delete(user).Error)

	w := env.request(t, http.MethodGet, "/api/users/me", token, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Logout(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/users/logout", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var cleared bool
	for _, c := range w.Result().Cookies() {
		if c.Name == constants.AccessTokenCookie {
			cleared = true
			require.Empty(t, c.Value)
		}
	}
	require.True(t, cleared, "logout must expire the cookie")
}
