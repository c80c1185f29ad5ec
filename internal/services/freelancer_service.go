package services

import (
	"errors"
	"fmt"

	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/repository"
	"github.com/yukikurage/freelance-marketplace-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrFreelancerNotFound = errors.New("freelancer profile not found")
	ErrProfileExists      = errors.New("freelancer profile for this user already exists")
	ErrNotProfileOwner    = errors.New("only the profile owner can perform this action")
)

// FreelancerService handles freelancer profile business logic.
type FreelancerService struct {
	freelancerRepo repository.FreelancerRepository
	userRepo       repository.UserRepository
}

// NewFreelancerService creates a new FreelancerService.
func NewFreelancerService(freelancerRepo repository.FreelancerRepository, userRepo repository.UserRepository) *FreelancerService {
	return &FreelancerService{
		freelancerRepo: freelancerRepo,
		userRepo:       userRepo,
	}
}

// List returns freelancer profiles matching the filter.
func (s *FreelancerService) List(filter repository.FreelancerFilter, params utils.PaginationParams) ([]models.FreelancerProfile, int64, error) {
	return s.freelancerRepo.List(filter, params)
}

// Get returns a freelancer profile by ID.
func (s *FreelancerService) Get(id uint64) (*models.FreelancerProfile, error) {
	profile, err := s.freelancerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFreelancerNotFound
		}
		return nil, fmt.Errorf("failed to find freelancer profile: %w", err)
	}
	return profile, nil
}

// CreateFreelancerInput represents input for creating a freelancer profile.
type CreateFreelancerInput struct {
	UserID       uint64
	Bio          string
	HourlyRate   *float64
	PortfolioURL string
}

// Create creates a freelancer profile for the target user. The user must
// exist and at most one profile may exist per user.
func (s *FreelancerService) Create(input CreateFreelancerInput) (*models.FreelancerProfile, error) {
	if _, err := s.userRepo.FindByID(input.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if _, err := s.freelancerRepo.FindByUserID(input.UserID); err == nil {
		return nil, ErrProfileExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check profile: %w", err)
	}

	profile := &models.FreelancerProfile{
		UserID:       input.UserID,
		Bio:          input.Bio,
		HourlyRate:   input.HourlyRate,
		PortfolioURL: input.PortfolioURL,
	}

	if err := s.freelancerRepo.Create(profile); err != nil {
		return nil, fmt.Errorf("failed to create freelancer profile: %w", err)
	}
	return profile, nil
}

// UpdateFreelancerInput applies only the fields that are present.
type UpdateFreelancerInput struct {
	Bio          *string
	HourlyRate   *float64
	PortfolioURL *string
}

// Update applies a partial update to the profile. Only the owning user may
// update it.
func (s *FreelancerService) Update(actorID, profileID uint64, input UpdateFreelancerInput) (*models.FreelancerProfile, error) {
	profile, err := s.Get(profileID)
	if err != nil {
		return nil, err
	}

	if actorID != profile.UserID {
		return nil, ErrNotProfileOwner
	}

	if input.Bio != nil {
		profile.Bio = *input.Bio
	}
	if input.HourlyRate != nil {
		profile.HourlyRate = input.HourlyRate
	}
	if input.PortfolioURL != nil {
		profile.PortfolioURL = *input.PortfolioURL
	}

	if err := s.freelancerRepo.Update(profile); err != nil {
		return nil, fmt.Errorf("failed to update freelancer profile: %w", err)
	}
	return profile, nil
}

// Delete removes the profile. Only the owning user may delete it.
func (s *FreelancerService) Delete(actorID, profileID uint64) error {
	profile, err := s.Get(profileID)
	if err != nil {
		return err
	}

	if actorID != profile.UserID {
		return ErrNotProfileOwner
	}

	if err := s.freelancerRepo.Delete(profileID); err != nil {
		return fmt.Errorf("failed to delete freelancer profile: %w", err)
	}
	return nil
}
