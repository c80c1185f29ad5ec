package repository

import (
	"github.com/yukikurage/freelance-marketplace-api/internal/database"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/utils"
	"gorm.io/gorm"
)

// GormProposalRepository is a GORM implementation of ProposalRepository
type GormProposalRepository struct {
	db *gorm.DB
}

// NewProposalRepository creates a new ProposalRepository
func NewProposalRepository(db *gorm.DB) ProposalRepository {
	return &GormProposalRepository{db: db}
}

// Create creates a new proposal
func (r *GormProposalRepository) Create(proposal *models.Proposal) error {
	return r.db.Create(proposal).Error
}

// FindByID finds a proposal by ID
func (r *GormProposalRepository) FindByID(id uint64) (*models.Proposal, error) {
	var proposal models.Proposal
	if err := r.db.First(&proposal, id).Error; err != nil {
		return nil, err
	}
	return &proposal, nil
}

// FindByProjectAndFreelancer finds the proposal for a (project, freelancer) pair
func (r *GormProposalRepository) FindByProjectAndFreelancer(projectID, freelancerID uint64) (*models.Proposal, error) {
	var proposal models.Proposal
	if err := r.db.Where("project_id = ? AND freelancer_id = ?", projectID, freelancerID).
		First(&proposal).Error; err != nil {
		return nil, err
	}
	return &proposal, nil
}

// List retrieves proposals ordered by submission time, newest first
func (r *GormProposalRepository) List(filter ProposalFilter, params utils.PaginationParams) ([]models.Proposal, int64, error) {
	query := r.db.Model(&models.Proposal{})

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.FreelancerID != nil {
		query = query.Where("freelancer_id = ?", *filter.FreelancerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var proposals []models.Proposal
	if err := query.Order("submitted_at DESC").
		Scopes(database.Paginate(params)).
		Find(&proposals).Error; err != nil {
		return nil, 0, err
	}

	return proposals, total, nil
}

// Update updates a proposal
func (r *GormProposalRepository) Update(proposal *models.Proposal) error {
	return r.db.Save(proposal).Error
}

// Delete deletes a proposal
func (r *GormProposalRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Proposal{}, id).Error
}
