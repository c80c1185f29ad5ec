package repository

import (
	"github.com/yukikurage/freelance-marketplace-api/internal/database"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/utils"
	"gorm.io/gorm"
)

// GormSkillRepository is a GORM implementation of SkillRepository
type GormSkillRepository struct {
	db *gorm.DB
}

// NewSkillRepository creates a new SkillRepository
func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &GormSkillRepository{db: db}
}

// Create creates a new skill
func (r *GormSkillRepository) Create(skill *models.Skill) error {
	return r.db.Create(skill).Error
}

// FindByID finds a skill by ID
func (r *GormSkillRepository) FindByID(id uint64) (*models.Skill, error) {
	var skill models.Skill
	if err := r.db.First(&skill, id).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

// FindByName finds a skill by exact name
func (r *GormSkillRepository) FindByName(name string) (*models.Skill, error) {
	var skill models.Skill
	if err := r.db.Where("name = ?", name).First(&skill).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

// List retrieves skills ordered by name. Search is a case-insensitive
// substring match.
func (r *GormSkillRepository) List(filter SkillFilter, params utils.PaginationParams) ([]models.Skill, int64, error) {
	query := r.db.Model(&models.Skill{})

	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var skills []models.Skill
	if err := query.Order("name").
		Scopes(database.Paginate(params)).
		Find(&skills).Error; err != nil {
		return nil, 0, err
	}

	return skills, total, nil
}

// Update updates a skill
func (r *GormSkillRepository) Update(skill *models.Skill) error {
	return r.db.Save(skill).Error
}

// Delete deletes a skill
func (r *GormSkillRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Skill{}, id).Error
}

// CreateLink links a freelancer profile to a skill
func (r *GormSkillRepository) CreateLink(link *models.FreelancerSkill) error {
	return r.db.Create(link).Error
}

// FindLink finds a specific freelancer-skill link
func (r *GormSkillRepository) FindLink(freelancerID, skillID uint64) (*models.FreelancerSkill, error) {
	var link models.FreelancerSkill
	if err := r.db.Where("freelancer_id = ? AND skill_id = ?", freelancerID, skillID).
		First(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

// ListLinks retrieves freelancer-skill links with filtering
func (r *GormSkillRepository) ListLinks(filter FreelancerSkillFilter) ([]models.FreelancerSkill, error) {
	query := r.db.Model(&models.FreelancerSkill{})

	if filter.FreelancerID != nil {
		query = query.Where("freelancer_id = ?", *filter.FreelancerID)
	}
	if filter.SkillID != nil {
		query = query.Where("skill_id = ?", *filter.SkillID)
	}

	var links []models.FreelancerSkill
	if err := query.Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// DeleteLink removes a freelancer-skill link
func (r *GormSkillRepository) DeleteLink(freelancerID, skillID uint64) error {
	return r.db.Where("freelancer_id = ? AND skill_id = ?", freelancerID, skillID).
		Delete(&models.FreelancerSkill{}).Error
}
