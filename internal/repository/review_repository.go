package repository

import (
	"github.com/yukikurage/freelance-marketplace-api/internal/database"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/utils"
	"gorm.io/gorm"
)

// GormReviewRepository is a GORM implementation of ReviewRepository
type GormReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new ReviewRepository
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &GormReviewRepository{db: db}
}

// Create creates a new review
func (r *GormReviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

// FindByID finds a review by ID
func (r *GormReviewRepository) FindByID(id uint64) (*models.Review, error) {
	var review models.Review
	if err := r.db.First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// FindByProjectAndReviewer finds the review for a (project, reviewer) pair
func (r *GormReviewRepository) FindByProjectAndReviewer(projectID, reviewerID uint64) (*models.Review, error) {
	var review models.Review
	if err := r.db.Where("project_id = ? AND reviewer_id = ?", projectID, reviewerID).
		First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// List retrieves reviews ordered by creation time, newest first
func (r *GormReviewRepository) List(filter ReviewFilter, params utils.PaginationParams) ([]models.Review, int64, error) {
	query := r.db.Model(&models.Review{})

	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.FreelancerID != nil {
		query = query.Where("freelancer_id = ?", *filter.FreelancerID)
	}
	if filter.MinRating != nil {
		query = query.Where("rating >= ?", *filter.MinRating)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []models.Review
	if err := query.Order("created_at DESC").
		Scopes(database.Paginate(params)).
		Find(&reviews).Error; err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

// Update updates a review
func (r *GormReviewRepository) Update(review *models.Review) error {
	return r.db.Save(review).Error
}

// Delete deletes a review
func (r *GormReviewRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Review{}, id).Error
}
