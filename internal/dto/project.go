package dto

import (
	"time"

	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/utils"
)

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID          uint64               `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Budget      *float64             `json:"budget"`
	Deadline    *time.Time           `json:"deadline"`
	Status      models.ProjectStatus `json:"status"`
	ClientID    uint64               `json:"client_id"`
	CreatedAt   time.Time            `json:"created_at"`
}

// ProjectListResponse represents a paginated list of projects
type ProjectListResponse struct {
	Projects   []ProjectDTO             `json:"projects"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project models.Project) ProjectDTO {
	return ProjectDTO{
		ID:          project.ID,
		Title:       project.Title,
		Description: project.Description,
		Budget:      project.Budget,
		Deadline:    project.Deadline,
		Status:      project.Status,
		ClientID:    project.ClientID,
		CreatedAt:   project.CreatedAt,
	}
}

// ToProjectListResponse converts projects to a ProjectListResponse
func ToProjectListResponse(projects []models.Project, params utils.PaginationParams, total int64) ProjectListResponse {
	items := make([]ProjectDTO, len(projects))
	for i, project := range projects {
		items[i] = ToProjectDTO(project)
	}

	return ProjectListResponse{
		Projects: items,
		Pagination: utils.PaginationResponse{
			Skip:  params.Skip,
			Limit: params.Limit,
			Total: total,
		},
	}
}
