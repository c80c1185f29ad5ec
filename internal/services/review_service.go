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
	ErrReviewNotFound = errors.New("review not found")
	ErrNotReviewer    = errors.New("only the review author can perform this action")
	ErrReviewExists   = errors.New("a review for this project already exists")
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
)

// ReviewService enforces the review ownership and uniqueness rules.
type ReviewService struct {
	reviewRepo     repository.ReviewRepository
	projectRepo    repository.ProjectRepository
	freelancerRepo repository.FreelancerRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviewRepo repository.ReviewRepository, projectRepo repository.ProjectRepository, freelancerRepo repository.FreelancerRepository) *ReviewService {
	return &ReviewService{
		reviewRepo:     reviewRepo,
		projectRepo:    projectRepo,
		freelancerRepo: freelancerRepo,
	}
}

// List returns reviews matching the filter, newest first.
func (s *ReviewService) List(filter repository.ReviewFilter, params utils.PaginationParams) ([]models.Review, int64, error) {
	return s.reviewRepo.List(filter, params)
}

// Get returns a review by ID.
func (s *ReviewService) Get(id uint64) (*models.Review, error) {
	review, err := s.reviewRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to find review: %w", err)
	}
	return review, nil
}

// CreateReviewInput represents input for creating a review.
type CreateReviewInput struct {
	Rating       int
	Comment      string
	ProjectID    uint64
	ReviewerID   uint64
	FreelancerID uint64
}

// Create creates a review. Project and freelancer must exist, the caller must
// be the asserted reviewer, and only one review is allowed per
// (project, reviewer) pair.
func (s *ReviewService) Create(callerID uint64, input CreateReviewInput) (*models.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, ErrInvalidRating
	}

	if _, err := s.projectRepo.FindByID(input.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	if _, err := s.freelancerRepo.FindByID(input.FreelancerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFreelancerNotFound
		}
		return nil, fmt.Errorf("failed to find freelancer profile: %w", err)
	}

	if callerID != input.ReviewerID {
		return nil, ErrNotReviewer
	}

	if _, err := s.reviewRepo.FindByProjectAndReviewer(input.ProjectID, input.ReviewerID); err == nil {
		return nil, ErrReviewExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check review: %w", err)
	}

	review := &models.Review{
		Rating:       input.Rating,
		Comment:      input.Comment,
		ProjectID:    input.ProjectID,
		ReviewerID:   input.ReviewerID,
		FreelancerID: input.FreelancerID,
	}

	if err := s.reviewRepo.Create(review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return review, nil
}

// UpdateReviewInput applies only the fields that are present.
type UpdateReviewInput struct {
	Rating  *int
	Comment *string
}

// Update applies a partial update. Only the review author may update.
func (s *ReviewService) Update(callerID, reviewID uint64, input UpdateReviewInput) (*models.Review, error) {
	review, err := s.Get(reviewID)
	if err != nil {
		return nil, err
	}

	if callerID != review.ReviewerID {
		return nil, ErrNotReviewer
	}

	if input.Rating != nil {
		if *input.Rating < 1 || *input.Rating > 5 {
			return nil, ErrInvalidRating
		}
		review.Rating = *input.Rating
	}
	if input.Comment != nil {
		review.Comment = *input.Comment
	}

	if err := s.reviewRepo.Update(review); err != nil {
		return nil, fmt.Errorf("failed to update review: %w", err)
	}
	return review, nil
}

// Delete removes the review. Only the review author may delete.
func (s *ReviewService) Delete(callerID, reviewID uint64) error {
	review, err := s.Get(reviewID)
	if err != nil {
		return err
	}

	if callerID != review.ReviewerID {
		return ErrNotReviewer
	}

	if err := s.reviewRepo.Delete(reviewID); err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	return nil
}
