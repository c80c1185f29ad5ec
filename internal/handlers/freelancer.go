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

// FreelancerHandler coordinates freelancer profile endpoints.
type FreelancerHandler struct {
	freelancerService *services.FreelancerService
}

// NewFreelancerHandler creates a new FreelancerHandler.
func NewFreelancerHandler(freelancerService *services.FreelancerService) *FreelancerHandler {
	return &FreelancerHandler{
		freelancerService: freelancerService,
	}
}

// List returns freelancer profiles with rate-range and search filters.
func (h *FreelancerHandler) List(c *gin.Context) {
	minRate, ok := queryFloat64(c, "min_rate")
	if !ok {
		return
	}
	maxRate, ok := queryFloat64(c, "max_rate")
	if !ok {
		return
	}

	filter := repository.FreelancerFilter{
		MinRate: minRate,
		MaxRate: maxRate,
		Search:  c.Query("search"),
	}
	params := utils.GetPaginationParams(c)

	profiles, total, err := h.freelancerService.List(filter, params)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch freelancers")
		return
	}

	c.JSON(http.StatusOK, dto.ToFreelancerListResponse(profiles, params, total))
}

// Get returns a freelancer profile by id.
func (h *FreelancerHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	profile, err := h.freelancerService.Get(id)
	if err != nil {
		h.respondFreelancerError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFreelancerDTO(*profile))
}

// Create creates a freelancer profile for an existing user.
func (h *FreelancerHandler) Create(c *gin.Context) {
	type CreateRequest struct {
		UserID       uint64   `json:"user_id" binding:"required"`
		Bio          string   `json:"bio"`
		HourlyRate   *float64 `json:"hourly_rate" binding:"omitempty,gte=0"`
		PortfolioURL string   `json:"portfolio_url"`
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	profile, err := h.freelancerService.Create(services.CreateFreelancerInput{
		UserID:       req.UserID,
		Bio:          req.Bio,
		HourlyRate:   req.HourlyRate,
		PortfolioURL: req.PortfolioURL,
	})
	if err != nil {
		h.respondFreelancerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToFreelancerDTO(*profile))
}

// Update applies a partial update to a profile. Owner only.
func (h *FreelancerHandler) Update(c *gin.Context) {
	actorID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	type UpdateRequest struct {
		Bio          *string  `json:"bio"`
		HourlyRate   *float64 `json:"hourly_rate" binding:"omitempty,gte=0"`
		PortfolioURL *string  `json:"portfolio_url"`
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	profile, err := h.freelancerService.Update(actorID, id, services.UpdateFreelancerInput{
		Bio:          req.Bio,
		HourlyRate:   req.HourlyRate,
		PortfolioURL: req.PortfolioURL,
	})
	if err != nil {
		h.respondFreelancerError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToFreelancerDTO(*profile))
}

// Delete removes a profile. Owner only.
func (h *FreelancerHandler) Delete(c *gin.Context) {
	actorID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.freelancerService.Delete(actorID, id); err != nil {
		h.respondFreelancerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Freelancer profile deleted",
	})
}

func (h *FreelancerHandler) respondFreelancerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrFreelancerNotFound),
		errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrProfileExists):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrNotProfileOwner):
		apierrors.Forbidden(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
