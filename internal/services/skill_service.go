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
	ErrSkillNotFound     = errors.New("skill not found")
	ErrSkillExists       = errors.New("skill with this name already exists")
	ErrSkillLinkNotFound = errors.New("freelancer-skill link not found")
	ErrSkillLinkExists   = errors.New("this skill is already added to the freelancer")
)

// SkillService handles skills and the freelancer-skill join entity.
type SkillService struct {
	skillRepo      repository.SkillRepository
	freelancerRepo repository.FreelancerRepository
}

// NewSkillService creates a new SkillService.
func NewSkillService(skillRepo repository.SkillRepository, freelancerRepo repository.FreelancerRepository) *SkillService {
	return &SkillService{
		skillRepo:      skillRepo,
		freelancerRepo: freelancerRepo,
	}
}

// List returns skills matching the filter, ordered by name.
func (s *SkillService) List(filter repository.SkillFilter, params utils.PaginationParams) ([]models.Skill, int64, error) {
	return s.skillRepo.List(filter, params)
}

// Get returns a skill by ID.
func (s *SkillService) Get(id uint64) (*models.Skill, error) {
	skill, err := s.skillRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, fmt.Errorf("failed to find skill: %w", err)
	}
	return skill, nil
}

// Create creates a skill with a globally unique name.
func (s *SkillService) Create(name string) (*models.Skill, error) {
	if _, err := s.skillRepo.FindByName(name); err == nil {
		return nil, ErrSkillExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check skill: %w", err)
	}

	skill := &models.Skill{Name: name}
	if err := s.skillRepo.Create(skill); err != nil {
		return nil, fmt.Errorf("failed to create skill: %w", err)
	}
	return skill, nil
}

// UpdateSkillInput applies only the fields that are present.
type UpdateSkillInput struct {
	Name *string
}

// Update renames a skill; the new name must remain globally unique.
func (s *SkillService) Update(skillID uint64, input UpdateSkillInput) (*models.Skill, error) {
	skill, err := s.Get(skillID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && *input.Name != skill.Name {
		if _, err := s.skillRepo.FindByName(*input.Name); err == nil {
			return nil, ErrSkillExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check skill: %w", err)
		}
		skill.Name = *input.Name
	}

	if err := s.skillRepo.Update(skill); err != nil {
		return nil, fmt.Errorf("failed to update skill: %w", err)
	}
	return skill, nil
}

// Delete removes a skill.
func (s *SkillService) Delete(skillID uint64) error {
	if _, err := s.Get(skillID); err != nil {
		return err
	}

	if err := s.skillRepo.Delete(skillID); err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}
	return nil
}

// ListLinks returns freelancer-skill links matching the filter.
func (s *SkillService) ListLinks(filter repository.FreelancerSkillFilter) ([]models.FreelancerSkill, error) {
	return s.skillRepo.ListLinks(filter)
}

// AddSkill links a skill to a freelancer profile. Freelancer and skill must
// exist, the caller must own the profile, and the pair must not already be
// linked.
func (s *SkillService) AddSkill(callerID, freelancerID, skillID uint64) (*models.FreelancerSkill, error) {
	freelancer, err := s.freelancerRepo.FindByID(freelancerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFreelancerNotFound
		}
		return nil, fmt.Errorf("failed to find freelancer profile: %w", err)
	}

	if _, err := s.skillRepo.FindByID(skillID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, fmt.Errorf("failed to find skill: %w", err)
	}

	if callerID != freelancer.UserID {
		return nil, ErrNotProfileOwner
	}

	if _, err := s.skillRepo.FindLink(freelancerID, skillID); err == nil {
		return nil, ErrSkillLinkExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check link: %w", err)
	}

	link := &models.FreelancerSkill{
		FreelancerID: freelancerID,
		SkillID:      skillID,
	}
	if err := s.skillRepo.CreateLink(link); err != nil {
		return nil, fmt.Errorf("failed to create link: %w", err)
	}
	return link, nil
}

// RemoveSkill unlinks a skill from a freelancer profile. The link must exist
// and the caller must own the profile.
func (s *SkillService) RemoveSkill(callerID, freelancerID, skillID uint64) error {
	if _, err := s.skillRepo.FindLink(freelancerID, skillID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSkillLinkNotFound
		}
		return fmt.Errorf("failed to find link: %w", err)
	}

	freelancer, err := s.freelancerRepo.FindByID(freelancerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFreelancerNotFound
		}
		return fmt.Errorf("failed to find freelancer profile: %w", err)
	}

	if callerID != freelancer.UserID {
		return ErrNotProfileOwner
	}

	if err := s.skillRepo.DeleteLink(freelancerID, skillID); err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}
	return nil
}
