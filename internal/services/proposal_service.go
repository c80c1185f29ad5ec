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
	ErrProposalNotFound      = errors.New("proposal not found")
	ErrNotProposalOwner      = errors.New("only the submitting freelancer can perform this action")
	ErrProjectNotOpen        = errors.New("cannot submit a proposal to a project that is not open")
	ErrProposalExists        = errors.New("a proposal for this project already exists")
	ErrProposalTerminal      = errors.New("cannot edit an accepted or rejected proposal")
	ErrProposalAccepted      = errors.New("cannot delete an accepted proposal")
	ErrInvalidProposalStatus = errors.New("invalid proposal status")
)

// ProposalService enforces the proposal ownership and state rules.
type ProposalService struct {
	proposalRepo   repository.ProposalRepository
	projectRepo    repository.ProjectRepository
	freelancerRepo repository.FreelancerRepository
}

// NewProposalService creates a new ProposalService.
func NewProposalService(proposalRepo repository.ProposalRepository, projectRepo repository.ProjectRepository, freelancerRepo repository.FreelancerRepository) *ProposalService {
	return &ProposalService{
		proposalRepo:   proposalRepo,
		projectRepo:    projectRepo,
		freelancerRepo: freelancerRepo,
	}
}

// List returns proposals matching the filter, newest first.
func (s *ProposalService) List(filter repository.ProposalFilter, params utils.PaginationParams) ([]models.Proposal, int64, error) {
	return s.proposalRepo.List(filter, params)
}

// Get returns a proposal by ID.
func (s *ProposalService) Get(id uint64) (*models.Proposal, error) {
	proposal, err := s.proposalRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProposalNotFound
		}
		return nil, fmt.Errorf("failed to find proposal: %w", err)
	}
	return proposal, nil
}

// CreateProposalInput represents input for submitting a proposal.
type CreateProposalInput struct {
	ProjectID     uint64
	FreelancerID  uint64
	CoverMessage  string
	ProposedPrice float64
	Status        models.ProposalStatus
}

// Create submits a proposal. The project must exist and be open, the
// freelancer profile must exist and belong to the caller, and the
// (project, freelancer) pair must not already have a proposal. The same pair
// is also guarded by a unique index, so a concurrent duplicate fails at the
// storage layer.
func (s *ProposalService) Create(callerID uint64, input CreateProposalInput) (*models.Proposal, error) {
	project, err := s.projectRepo.FindByID(input.ProjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	freelancer, err := s.freelancerRepo.FindByID(input.FreelancerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFreelancerNotFound
		}
		return nil, fmt.Errorf("failed to find freelancer profile: %w", err)
	}

	if callerID != freelancer.UserID {
		return nil, ErrNotProposalOwner
	}

	if project.Status != models.ProjectStatusOpen {
		return nil, ErrProjectNotOpen
	}

	if _, err := s.proposalRepo.FindByProjectAndFreelancer(input.ProjectID, input.FreelancerID); err == nil {
		return nil, ErrProposalExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check proposal: %w", err)
	}

	status := input.Status
	if status == "" {
		status = models.ProposalStatusPending
	}
	if !models.ValidProposalStatus(status) {
		return nil, ErrInvalidProposalStatus
	}

	proposal := &models.Proposal{
		CoverMessage:  input.CoverMessage,
		ProposedPrice: input.ProposedPrice,
		Status:        status,
		ProjectID:     input.ProjectID,
		FreelancerID:  input.FreelancerID,
	}

	if err := s.proposalRepo.Create(proposal); err != nil {
		return nil, fmt.Errorf("failed to create proposal: %w", err)
	}
	return proposal, nil
}

// UpdateProposalInput applies only the fields that are present.
type UpdateProposalInput struct {
	CoverMessage  *string
	ProposedPrice *float64
	Status        *models.ProposalStatus
}

// Update applies a partial update. Only the submitting freelancer's user may
// update, and a proposal in a terminal state is immutable.
func (s *ProposalService) Update(callerID, proposalID uint64, input UpdateProposalInput) (*models.Proposal, error) {
	proposal, err := s.Get(proposalID)
	if err != nil {
		return nil, err
	}

	if err := s.requireOwner(callerID, proposal); err != nil {
		return nil, err
	}

	if proposal.Status.Terminal() {
		return nil, ErrProposalTerminal
	}

	if input.Status != nil {
		if !models.ValidProposalStatus(*input.Status) {
			return nil, ErrInvalidProposalStatus
		}
		proposal.Status = *input.Status
	}
	if input.CoverMessage != nil {
		proposal.CoverMessage = *input.CoverMessage
	}
	if input.ProposedPrice != nil {
		proposal.ProposedPrice = *input.ProposedPrice
	}

	if err := s.proposalRepo.Update(proposal); err != nil {
		return nil, fmt.Errorf("failed to update proposal: %w", err)
	}
	return proposal, nil
}

// Delete removes the proposal. Only the submitting freelancer's user may
// delete, and an accepted proposal cannot be deleted.
func (s *ProposalService) Delete(callerID, proposalID uint64) error {
	proposal, err := s.Get(proposalID)
	if err != nil {
		return err
	}

	if err := s.requireOwner(callerID, proposal); err != nil {
		return err
	}

	if proposal.Status == models.ProposalStatusAccepted {
		return ErrProposalAccepted
	}

	if err := s.proposalRepo.Delete(proposalID); err != nil {
		return fmt.Errorf("failed to delete proposal: %w", err)
	}
	return nil
}

func (s *ProposalService) requireOwner(callerID uint64, proposal *models.Proposal) error {
	freelancer, err := s.freelancerRepo.FindByID(proposal.FreelancerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFreelancerNotFound
		}
		return fmt.Errorf("failed to find freelancer profile: %w", err)
	}

	if callerID != freelancer.UserID {
		return ErrNotProposalOwner
	}
	return nil
}
