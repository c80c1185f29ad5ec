package services

import (
	"errors"
	"fmt"

	"github.com/yukikurage/freelance-marketplace-api/internal/constants"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/repository"
	"github.com/yukikurage/freelance-marketplace-api/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserAccessDenied    = errors.New("not allowed to access this user")
	ErrOldPasswordRequired = errors.New("old password is required")
	ErrOldPasswordWrong    = errors.New("old password is incorrect")
	ErrLastUser            = errors.New("cannot delete the last remaining user")
)

// UserService handles user management beyond registration and login.
type UserService struct {
	userRepo    repository.UserRepository
	authService *AuthService
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, authService *AuthService) *UserService {
	return &UserService{
		userRepo:    userRepo,
		authService: authService,
	}
}

// List returns users matching the filter. Admin-only; enforced at the route.
func (s *UserService) List(filter repository.UserFilter, params utils.PaginationParams) ([]models.User, int64, error) {
	return s.userRepo.List(filter, params)
}

// Get returns a user visible to the viewer: the user themself or an admin.
func (s *UserService) Get(viewer *models.User, targetID uint64) (*models.User, error) {
	if viewer.ID != targetID {
		admin, err := s.authService.IsAdmin(viewer)
		if err != nil {
			return nil, err
		}
		if !admin {
			return nil, ErrUserAccessDenied
		}
	}

	user, err := s.userRepo.FindByID(targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// UpdateUserInput applies only the fields that are present.
type UpdateUserInput struct {
	Name   *string
	Email  *string
	RoleID *uint64
}

// Update applies a partial update to the target user. Allowed for the user
// themself or an admin; an email change must keep emails unique.
func (s *UserService) Update(actor *models.User, targetID uint64, input UpdateUserInput) (*models.User, error) {
	user, err := s.userRepo.FindByID(targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if actor.ID != targetID {
		admin, err := s.authService.IsAdmin(actor)
		if err != nil {
			return nil, err
		}
		if !admin {
			return nil, ErrUserAccessDenied
		}
	}

	if input.Email != nil && *input.Email != user.Email {
		if _, err := s.userRepo.FindByEmail(*input.Email); err == nil {
			return nil, ErrEmailTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		user.Email = *input.Email
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.RoleID != nil {
		user.RoleID = *input.RoleID
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// ChangePasswordInput carries the password change payload.
type ChangePasswordInput struct {
	OldPassword string
	NewPassword string
}

// ChangePassword updates the target user's password digest. Non-admin actors
// must present the current password; the new one must satisfy the minimum
// length.
func (s *UserService) ChangePassword(actor *models.User, targetID uint64, input ChangePasswordInput) error {
	admin, err := s.authService.IsAdmin(actor)
	if err != nil {
		return err
	}
	if !admin && actor.ID != targetID {
		return ErrUserAccessDenied
	}

	user, err := s.userRepo.FindByID(targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if !admin {
		if input.OldPassword == "" {
			return ErrOldPasswordRequired
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(input.OldPassword)); err != nil {
			return ErrOldPasswordWrong
		}
	}

	if len(input.NewPassword) < constants.MinPasswordLength {
		return ErrPasswordTooShort
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return ErrFailedToHashPassword
	}
	user.HashedPassword = string(hashed)

	if err := s.userRepo.Update(user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// Delete removes the target user. Allowed for the user themself or an admin.
// A non-admin cannot delete themself while they are the sole remaining user.
func (s *UserService) Delete(actor *models.User, targetID uint64) error {
	admin, err := s.authService.IsAdmin(actor)
	if err != nil {
		return err
	}
	if !admin && actor.ID != targetID {
		return ErrUserAccessDenied
	}

	if !admin && actor.ID == targetID {
		count, err := s.userRepo.Count()
		if err != nil {
			return fmt.Errorf("failed to count users: %w", err)
		}
		if count <= 1 {
			return ErrLastUser
		}
	}

	if _, err := s.userRepo.FindByID(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if err := s.userRepo.Delete(targetID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
