package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/freelance-marketplace-api/internal/dto"
	apierrors "github.com/yukikurage/freelance-marketplace-api/internal/errors"
	"github.com/yukikurage/freelance-marketplace-api/internal/repository"
	"github.com/yukikurage/freelance-marketplace-api/internal/services"
	"github.com/yukikurage/freelance-marketplace-api/internal/utils"
)

// ReviewHandler coordinates review endpoints.
type ReviewHandler struct {
	reviewService *services.ReviewService
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// List returns reviews, newest first.
func (h *ReviewHandler) List(c *gin.Context) {
	projectID, ok := queryUint64(c, "project_id")
	if !ok {
		return
	}
	freelancerID, ok := queryUint64(c, "freelancer_id")
	if !ok {
		return
	}

	var minRating *int
	if raw := c.Query("min_rating"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			apierrors.BadRequest(c, "Invalid min_rating")
			return
		}
		minRating = &v
	}

	filter := repository.ReviewFilter{
		ProjectID:    projectID,
		FreelancerID: freelancerID,
		MinRating:    minRating,
	}
	params := utils.GetPaginationParams(c)

	reviews, total, err := h.reviewService.List(filter, params)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch reviews")
		return
	}

	c.JSON(http.StatusOK, dto.ToReviewListResponse(reviews, params, total))
}

// Get returns a review by id.
func (h *ReviewHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	review, err := h.reviewService.Get(id)
	if err != nil {
		h.respondReviewError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReviewDTO(*review))
}

// Create creates a review. The caller must be the asserted reviewer and only
// one review is allowed per project and reviewer.
func (h *ReviewHandler) Create(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}

	type CreateRequest struct {
		Rating       int    `json:"rating" binding:"required"`
		Comment      string `json:"comment"`
		ProjectID    uint64 `json:"project_id" binding:"required"`
		ReviewerID   uint64 `json:"reviewer_id" binding:"required"`
		FreelancerID uint64 `json:"freelancer_id" binding:"required"`
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	review, err := h.reviewService.Create(caller, services.CreateReviewInput{
		Rating:       req.Rating,
		Comment:      req.Comment,
		ProjectID:    req.ProjectID,
		ReviewerID:   req.ReviewerID,
		FreelancerID: req.FreelancerID,
	})
	if err != nil {
		h.respondReviewError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReviewDTO(*review))
}

// Update applies a partial update. Author only.
func (h *ReviewHandler) Update(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	type UpdateRequest struct {
		Rating  *int    `json:"rating"`
		Comment *string `json:"comment"`
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	review, err := h.reviewService.Update(caller, id, services.UpdateReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		h.respondReviewError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReviewDTO(*review))
}

// Delete removes a review. Author only.
func (h *ReviewHandler) Delete(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.reviewService.Delete(caller, id); err != nil {
		h.respondReviewError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Review deleted",
	})
}

func (h *ReviewHandler) respondReviewError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrReviewNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrProjectNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrFreelancerNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNotReviewer):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrReviewExists):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidRating):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
