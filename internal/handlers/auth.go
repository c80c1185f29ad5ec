package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/freelance-marketplace-api/internal/auth"
	"github.com/yukikurage/freelance-marketplace-api/internal/constants"
	"github.com/yukikurage/freelance-marketplace-api/internal/dto"
	apierrors "github.com/yukikurage/freelance-marketplace-api/internal/errors"
	"github.com/yukikurage/freelance-marketplace-api/internal/services"
)

// AuthHandler coordinates login, logout and caller introspection.
type AuthHandler struct {
	authService *services.AuthService
	jwtSecret   string
	expiresMin  int
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, jwtSecret string, expiresMin int) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		jwtSecret:   jwtSecret,
		expiresMin:  expiresMin,
	}
}

// Login verifies credentials, issues a signed token and sets it as the
// access_token cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.Login(services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			apierrors.Unauthorized(c, err.Error())
		} else {
			apierrors.InternalError(c, "")
		}
		return
	}

	token, err := auth.Sign(h.jwtSecret, user.ID, h.expiresMin)
	if err != nil {
		apierrors.InternalError(c, "Failed to issue token")
		return
	}

	c.SetCookie(constants.AccessTokenCookie, token, h.expiresMin*60, "/", "", false, true)
	c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        dto.ToUserDTO(*user),
	})
}

// Logout clears the access token cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(constants.AccessTokenCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// GetCurrentUser returns the authenticated user.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	user, ok := currentUser(c, h.authService)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}
