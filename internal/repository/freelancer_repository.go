package repository

import (
	"github.com/yukikurage/freelance-marketplace-api/internal/database"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/utils"
	"gorm.io/gorm"
)

// GormFreelancerRepository is a GORM implementation of FreelancerRepository
type GormFreelancerRepository struct {
	db *gorm.DB
}

// NewFreelancerRepository creates a new FreelancerRepository
func NewFreelancerRepository(db *gorm.DB) FreelancerRepository {
	return &GormFreelancerRepository{db: db}
}

// Create creates a new freelancer profile
func (r *GormFreelancerRepository) Create(profile *models.FreelancerProfile) error {
	return r.db.Create(profile).Error
}

// FindByID finds a freelancer profile by ID
func (r *GormFreelancerRepository) FindByID(id uint64) (*models.FreelancerProfile, error) {
	var profile models.FreelancerProfile
	if err := r.db.First(&profile, id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindByUserID finds the profile owned by a user, if any
func (r *GormFreelancerRepository) FindByUserID(userID uint64) (*models.FreelancerProfile, error) {
	var profile models.FreelancerProfile
	if err := r.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// List retrieves freelancer profiles with filtering and pagination. The
// search term matches the owner's name as well as the profile bio, so the
// query joins users.
func (r *GormFreelancerRepository) List(filter FreelancerFilter, params utils.PaginationParams) ([]models.FreelancerProfile, int64, error) {
	query := r.db.Model(&models.FreelancerProfile{}).
		Joins("JOIN users ON users.id = freelancer_profiles.user_id")

	if filter.MinRate != nil {
		query = query.Where("freelancer_profiles.hourly_rate >= ?", *filter.MinRate)
	}
	if filter.MaxRate != nil {
		query = query.Where("freelancer_profiles.hourly_rate <= ?", *filter.MaxRate)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("LOWER(users.name) LIKE LOWER(?) OR LOWER(freelancer_profiles.bio) LIKE LOWER(?)", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var profiles []models.FreelancerProfile
	if err := query.Order("freelancer_profiles.id").
		Scopes(database.Paginate(params)).
		Find(&profiles).Error; err != nil {
		return nil, 0, err
	}

	return profiles, total, nil
}

// Update updates a freelancer profile
func (r *GormFreelancerRepository) Update(profile *models.FreelancerProfile) error {
	return r.db.Save(profile).Error
}

// Delete deletes a freelancer profile
func (r *GormFreelancerRepository) Delete(id uint64) error {
	return r.db.Delete(&models.FreelancerProfile{}, id).Error
}
