package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/repository"
	"github.com/yukikurage/freelance-marketplace-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrNotProjectClient     = errors.New("only the project client can perform this action")
	ErrInvalidProjectStatus = errors.New("invalid project status")
)

// ProjectService handles project business logic.
type ProjectService struct {
	projectRepo repository.ProjectRepository
	authService *AuthService
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository, authService *AuthService) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		authService: authService,
	}
}

// List returns projects matching the filter, newest first.
func (s *ProjectService) List(filter repository.ProjectFilter, params utils.PaginationParams) ([]models.Project, int64, error) {
	return s.projectRepo.List(filter, params)
}

// Get returns a project by ID.
func (s *ProjectService) Get(id uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// CreateProjectInput represents input for creating a project.
type CreateProjectInput struct {
	Title       string
	Description string
	Budget      *float64
	Deadline    *time.Time
	Status      models.ProjectStatus
}

// Create creates a project with the caller as its client.
func (s *ProjectService) Create(clientID uint64, input CreateProjectInput) (*models.Project, error) {
	status := input.Status
	if status == "" {
		status = models.ProjectStatusOpen
	}
	if !models.ValidProjectStatus(status) {
		return nil, ErrInvalidProjectStatus
	}

	project := &models.Project{
		Title:       input.Title,
		Description: input.Description,
		Budget:      input.Budget,
		Deadline:    input.Deadline,
		Status:      status,
		ClientID:    clientID,
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

// UpdateProjectInput applies only the fields that are present.
type UpdateProjectInput struct {
	Title       *string
	Description *string
	Budget      *float64
	Deadline    *time.Time
	Status      *models.ProjectStatus
}

// Update applies a partial update. Allowed for the owning client or an admin.
func (s *ProjectService) Update(actor *models.User, projectID uint64, input UpdateProjectInput) (*models.Project, error) {
	project, err := s.Get(projectID)
	if err != nil {
		return nil, err
	}

	if err := s.requireClientOrAdmin(actor, project); err != nil {
		return nil, err
	}

	if input.Status != nil {
		if !models.ValidProjectStatus(*input.Status) {
			return nil, ErrInvalidProjectStatus
		}
		project.Status = *input.Status
	}
	if input.Title != nil {
		project.Title = *input.Title
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.Budget != nil {
		project.Budget = input.Budget
	}
	if input.Deadline != nil {
		project.Deadline = input.Deadline
	}

	if err := s.projectRepo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return project, nil
}

// Delete removes the project. Allowed for the owning client or an admin.
func (s *ProjectService) Delete(actor *models.User, projectID uint64) error {
	project, err := s.Get(projectID)
	if err != nil {
		return err
	}

	if err := s.requireClientOrAdmin(actor, project); err != nil {
		return err
	}

	if err := s.projectRepo.Delete(projectID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

func (s *ProjectService) requireClientOrAdmin(actor *models.User, project *models.Project) error {
	if actor.ID == project.ClientID {
		return nil
	}
	admin, err := s.authService.IsAdmin(actor)
	if err != nil {
		return err
	}
	if !admin {
		return ErrNotProjectClient
	}
	return nil
}
