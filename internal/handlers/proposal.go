package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/freelance-marketplace-api/internal/dto"
	apierrors "github.com/yukikurage/freelance-marketplace-api/internal/errors"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/repository"
	"github.com/yukikurage/freelance-marketplace-api/internal/services"
	"github.com/yukikurage/freelance-marketplace-api/internal/utils"
)

// ProposalHandler coordinates proposal endpoints.
type ProposalHandler struct {
	proposalService *services.ProposalService
}

// NewProposalHandler creates a new ProposalHandler.
func NewProposalHandler(proposalService *services.ProposalService) *ProposalHandler {
	return &ProposalHandler{
		proposalService: proposalService,
	}
}

// List returns proposals, newest submissions first.
func (h *ProposalHandler) List(c *gin.Context) {
	projectID, ok := queryUint64(c, "project_id")
	if !ok {
		return
	}
	freelancerID, ok := queryUint64(c, "freelancer_id")
	if !ok {
		return
	}

	var status *models.ProposalStatus
	if raw := c.Query("status"); raw != "" {
		s := models.ProposalStatus(raw)
		if !models.ValidProposalStatus(s) {
			apierrors.BadRequest(c, "Invalid status")
			return
		}
		status = &s
	}

	filter := repository.ProposalFilter{
		Status:       status,
		ProjectID:    projectID,
		FreelancerID: freelancerID,
	}
	params := utils.GetPaginationParams(c)

	proposals, total, err := h.proposalService.List(filter, params)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch proposals")
		return
	}

	c.JSON(http.StatusOK, dto.ToProposalListResponse(proposals, params, total))
}

// Get returns a proposal by id.
func (h *ProposalHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	proposal, err := h.proposalService.Get(id)
	if err != nil {
		h.respondProposalError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProposalDTO(*proposal))
}

// Create submits a proposal for an open project.
func (h *ProposalHandler) Create(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	type CreateRequest struct {
		ProjectID     uint64                `json:"project_id" binding:"required"`
		FreelancerID  uint64                `json:"freelancer_id" binding:"required"`
		CoverMessage  string                `json:"cover_message" binding:"required"`
		ProposedPrice float64               `json:"proposed_price" binding:"required,gt=0"`
		Status        models.ProposalStatus `json:"status"`
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	proposal, err := h.proposalService.Create(caller, services.CreateProposalInput{
		ProjectID:     req.ProjectID,
		FreelancerID:  req.FreelancerID,
		CoverMessage:  req.CoverMessage,
		ProposedPrice: req.ProposedPrice,
		Status:        req.Status,
	})
	if err != nil {
		h.respondProposalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProposalDTO(*proposal))
}

// Update applies a partial update. Owner only; terminal proposals are
// immutable.
func (h *ProposalHandler) Update(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	type UpdateRequest struct {
		CoverMessage  *string                `json:"cover_message"`
		ProposedPrice *float64               `json:"proposed_price" binding:"omitempty,gt=0"`
		Status        *models.ProposalStatus `json:"status"`
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	proposal, err := h.proposalService.Update(caller, id, services.UpdateProposalInput{
		CoverMessage:  req.CoverMessage,
		ProposedPrice: req.ProposedPrice,
		Status:        req.Status,
	})
	if err != nil {
		h.respondProposalError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProposalDTO(*proposal))
}

// Delete withdraws a proposal. Owner only; accepted proposals cannot be
// deleted.
func (h *ProposalHandler) Delete(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.proposalService.Delete(caller, id); err != nil {
		h.respondProposalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Proposal deleted",
	})
}

func (h *ProposalHandler) respondProposalError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProposalNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrProjectNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrFreelancerNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNotProposalOwner):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrProjectNotOpen):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrProposalExists):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrProposalTerminal):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrProposalAccepted):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidProposalStatus):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
