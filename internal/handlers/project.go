package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/freelance-marketplace-api/internal/dto"
	apierrors "github.com/yukikurage/freelance-marketplace-api/internal/errors"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/repository"
	"github.com/yukikurage/freelance-marketplace-api/internal/services"
	"github.com/yukikurage/freelance-marketplace-api/internal/utils"
)

// ProjectHandler coordinates project endpoints.
type ProjectHandler struct {
	authService    *services.AuthService
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(authService *services.AuthService, projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		authService:    authService,
		projectService: projectService,
	}
}

// List returns projects with status/client filters, newest first.
func (h *ProjectHandler) List(c *gin.Context) {
	clientID, ok := queryUint64(c, "client_id")
	if !ok {
		return
	}

	var status *models.ProjectStatus
	if raw := c.Query("status"); raw != "" {
		s := models.ProjectStatus(raw)
		if !models.ValidProjectStatus(s) {
			apierrors.BadRequest(c, "Invalid status")
			return
		}
		status = &s
	}

	filter := repository.ProjectFilter{
		Status:   status,
		ClientID: clientID,
		Search:   c.Query("search"),
	}
	params := utils.GetPaginationParams(c)

	projects, total, err := h.projectService.List(filter, params)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch projects")
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectListResponse(projects, params, total))
}

// Get returns a project by id.
func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	project, err := h.projectService.Get(id)
	if err != nil {
		h.respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

// Create creates a project with the caller as client.
func (h *ProjectHandler) Create(c *gin.Context) {
	clientID, ok := callerID(c)
	if !ok {
		return
	}

	type CreateRequest struct {
		Title       string               `json:"title" binding:"required,max=200"`
		Description string               `json:"description" binding:"required"`
		Budget      *float64             `json:"budget" binding:"omitempty,gt=0"`
		Deadline    *time.Time           `json:"deadline"`
		Status      models.ProjectStatus `json:"status"`
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.Create(clientID, services.CreateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Budget:      req.Budget,
		Deadline:    req.Deadline,
		Status:      req.Status,
	})
	if err != nil {
		h.respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectDTO(*project))
}

// Update applies a partial update. Client or admin only.
func (h *ProjectHandler) Update(c *gin.Context) {
	actor, ok := currentUser(c, h.authService)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	type UpdateRequest struct {
		Title       *string               `json:"title" binding:"omitempty,max=200"`
		Description *string               `json:"description"`
		Budget      *float64              `json:"budget" binding:"omitempty,gt=0"`
		Deadline    *time.Time            `json:"deadline"`
		Status      *models.ProjectStatus `json:"status"`
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.Update(actor, id, services.UpdateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Budget:      req.Budget,
		Deadline:    req.Deadline,
		Status:      req.Status,
	})
	if err != nil {
		h.respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

// Delete removes a project. Client or admin only.
func (h *ProjectHandler) Delete(c *gin.Context) {
	actor, ok := currentUser(c, h.authService)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.projectService.Delete(actor, id); err != nil {
		h.respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Project deleted",
	})
}

func (h *ProjectHandler) respondProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProjectNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNotProjectClient):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrInvalidProjectStatus):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
