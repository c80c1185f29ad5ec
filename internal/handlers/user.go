package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/freelance-marketplace-api/internal/constants"
	"github.com/yukikurage/freelance-marketplace-api/internal/dto"
	apierrors "github.com/yukikurage/freelance-marketplace-api/internal/errors"
	"github.com/yukikurage/freelance-marketplace-api/internal/repository"
	"github.com/yukikurage/freelance-marketplace-api/internal/services"
	"github.com/yukikurage/freelance-marketplace-api/internal/utils"
)

// UserHandler coordinates user registration and management endpoints.
type UserHandler struct {
	authService *services.AuthService
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(authService *services.AuthService, userService *services.UserService) *UserHandler {
	return &UserHandler{
		authService: authService,
		userService: userService,
	}
}

// Register creates a new user account. Open to everyone.
func (h *UserHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Name     string  `json:"name" binding:"required,max=100"`
		Email    string  `json:"email" binding:"required,email"`
		Password string  `json:"password" binding:"required"`
		RoleID   *uint64 `json:"role_id"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.authService.Register(services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		RoleID:   req.RoleID,
	})
	if err != nil {
		h.respondUserError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserDTO(*user))
}

// List returns users with filters. Admin-only (enforced by route middleware).
func (h *UserHandler) List(c *gin.Context) {
	roleID, ok := queryUint64(c, "role_id")
	if !ok {
		return
	}

	filter := repository.UserFilter{
		RoleID: roleID,
		Search: c.Query("search"),
	}
	params := utils.GetPaginationParams(c)

	users, total, err := h.userService.List(filter, params)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch users")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserListResponse(users, params, total))
}

// Get returns a user by id: the user themself or an admin.
func (h *UserHandler) Get(c *gin.Context) {
	viewer, ok := currentUser(c, h.authService)
	if !ok {
		return
	}
	targetID, ok := pathID(c)
	if !ok {
		return
	}

	user, err := h.userService.Get(viewer, targetID)
	if err != nil {
		h.respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// Update applies a partial update to a user: self or admin.
func (h *UserHandler) Update(c *gin.Context) {
	actor, ok := currentUser(c, h.authService)
	if !ok {
		return
	}
	targetID, ok := pathID(c)
	if !ok {
		return
	}

	type UpdateRequest struct {
		Name   *string `json:"name"`
		Email  *string `json:"email" binding:"omitempty,email"`
		RoleID *uint64 `json:"role_id"`
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.Update(actor, targetID, services.UpdateUserInput{
		Name:   req.Name,
		Email:  req.Email,
		RoleID: req.RoleID,
	})
	if err != nil {
		h.respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// ChangePassword updates a user's password: self (with old password) or
// admin.
func (h *UserHandler) ChangePassword(c *gin.Context) {
	actor, ok := currentUser(c, h.authService)
	if !ok {
		return
	}
	targetID, ok := pathID(c)
	if !ok {
		return
	}

	type PasswordRequest struct {
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password" binding:"required"`
	}

	var req PasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "New password is required")
		return
	}

	err := h.userService.ChangePassword(actor, targetID, services.ChangePasswordInput{
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		h.respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Password changed successfully",
	})
}

// Delete removes a user: self or admin, with the last-user guard.
func (h *UserHandler) Delete(c *gin.Context) {
	actor, ok := currentUser(c, h.authService)
	if !ok {
		return
	}
	targetID, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.userService.Delete(actor, targetID); err != nil {
		h.respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User deleted successfully",
	})
}

func (h *UserHandler) respondUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPasswordTooShort):
		apierrors.BadRequest(c, fmt.Sprintf("Password must be at least %d characters", constants.MinPasswordLength))
	case errors.Is(err, services.ErrEmailTaken):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrRoleNotFound):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrUserAccessDenied):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrOldPasswordRequired),
		errors.Is(err, services.ErrOldPasswordWrong),
		errors.Is(err, services.ErrLastUser):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrFailedToHashPassword):
		apierrors.InternalError(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
