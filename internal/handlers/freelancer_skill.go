package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/freelance-marketplace-api/internal/dto"
	apierrors "github.com/yukikurage/freelance-marketplace-api/internal/errors"
	"github.com/yukikurage/freelance-marketplace-api/internal/repository"
	"github.com/yukikurage/freelance-marketplace-api/internal/services"
)

// FreelancerSkillHandler coordinates the freelancer-skill link endpoints.
type FreelancerSkillHandler struct {
	skillService *services.SkillService
}

// NewFreelancerSkillHandler creates a new FreelancerSkillHandler.
func NewFreelancerSkillHandler(skillService *services.SkillService) *FreelancerSkillHandler {
	return &FreelancerSkillHandler{
		skillService: skillService,
	}
}

// List returns freelancer-skill links, filterable by either side of the pair.
func (h *FreelancerSkillHandler) List(c *gin.Context) {
	freelancerID, ok := queryUint64(c, "freelancer_id")
	if !ok {
		return
	}
	skillID, ok := queryUint64(c, "skill_id")
	if !ok {
		return
	}

	links, err := h.skillService.ListLinks(repository.FreelancerSkillFilter{
		FreelancerID: freelancerID,
		SkillID:      skillID,
	})
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch freelancer skills")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"freelancer_skills": dto.ToFreelancerSkillDTOs(links),
	})
}

// Create links a skill to a freelancer profile. Profile owner only.
func (h *FreelancerSkillHandler) Create(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	type CreateRequest struct {
		FreelancerID uint64 `json:"freelancer_id" binding:"required"`
		SkillID      uint64 `json:"skill_id" binding:"required"`
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	link, err := h.skillService.AddSkill(caller, req.FreelancerID, req.SkillID)
	if err != nil {
		h.respondLinkError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToFreelancerSkillDTO(*link))
}

// Delete unlinks a skill from a freelancer profile, addressed by the
// (freelancer_id, skill_id) pair. Profile owner only.
func (h *FreelancerSkillHandler) Delete(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	freelancerID, ok := queryUint64(c, "freelancer_id")
	if !ok {
		return
	}
	skillID, ok := queryUint64(c, "skill_id")
	if !ok {
		return
	}
	if freelancerID == nil || skillID == nil {
		apierrors.BadRequest(c, "freelancer_id and skill_id are required")
		return
	}

	if err := h.skillService.RemoveSkill(caller, *freelancerID, *skillID); err != nil {
		h.respondLinkError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Freelancer skill removed",
	})
}

func (h *FreelancerSkillHandler) respondLinkError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrFreelancerNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrSkillNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrSkillLinkNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNotProfileOwner):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrSkillLinkExists):
		apierrors.Conflict(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
