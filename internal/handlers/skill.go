package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/freelance-marketplace-api/internal/dto"
	apierrors "github.com/yukikurage/freelance-marketplace-api/internal/errors"
	"github.com/yukikurage/freelance-marketplace-api/internal/repository"
	"github.com/yukikurage/freelance-marketplace-api/internal/services"
	"github.com/yukikurage/freelance-marketplace-api/internal/utils"
)

// SkillHandler coordinates the skill catalog endpoints.
type SkillHandler struct {
	skillService *services.SkillService
}

// NewSkillHandler creates a new SkillHandler.
func NewSkillHandler(skillService *services.SkillService) *SkillHandler {
	return &SkillHandler{
		skillService: skillService,
	}
}

// List returns skills ordered by name, with optional case-insensitive search.
func (h *SkillHandler) List(c *gin.Context) {
	filter := repository.SkillFilter{
		Search: c.Query("search"),
	}
	params := utils.GetPaginationParams(c)

	skills, total, err := h.skillService.List(filter, params)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch skills")
		return
	}

	c.JSON(http.StatusOK, dto.ToSkillListResponse(skills, params, total))
}

// Get returns a skill by id.
func (h *SkillHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	skill, err := h.skillService.Get(id)
	if err != nil {
		h.respondSkillError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSkillDTO(*skill))
}

// Create adds a skill to the catalog. Names are globally unique.
func (h *SkillHandler) Create(c *gin.Context) {
	type CreateRequest struct {
		Name string `json:"name" binding:"required,max=100"`
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	skill, err := h.skillService.Create(req.Name)
	if err != nil {
		h.respondSkillError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSkillDTO(*skill))
}

// Update renames a skill.
func (h *SkillHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	type UpdateRequest struct {
		Name *string `json:"name" binding:"omitempty,max=100"`
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	skill, err := h.skillService.Update(id, services.UpdateSkillInput{
		Name: req.Name,
	})
	if err != nil {
		h.respondSkillError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSkillDTO(*skill))
}

// Delete removes a skill from the catalog.
func (h *SkillHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.skillService.Delete(id); err != nil {
		h.respondSkillError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Skill deleted",
	})
}

func (h *SkillHandler) respondSkillError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSkillNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrSkillExists):
		apierrors.Conflict(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
