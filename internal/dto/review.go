package dto

import (
	"time"

	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/utils"
)

// ReviewDTO represents a review in API responses
type ReviewDTO struct {
	ID           uint64    `json:"id"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	ProjectID    uint64    `json:"project_id"`
	ReviewerID   uint64    `json:"reviewer_id"`
	FreelancerID uint64    `json:"freelancer_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// ReviewListResponse represents a paginated list of reviews
type ReviewListResponse struct {
	Reviews    []ReviewDTO              `json:"reviews"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// ToReviewDTO converts a Review model to ReviewDTO
func ToReviewDTO(review models.Review) ReviewDTO {
	return ReviewDTO{
		ID:           review.ID,
		Rating:       review.Rating,
		Comment:      review.Comment,
		ProjectID:    review.ProjectID,
		ReviewerID:   review.ReviewerID,
		FreelancerID: review.FreelancerID,
		CreatedAt:    review.CreatedAt,
	}
}

// ToReviewListResponse converts reviews to a ReviewListResponse
func ToReviewListResponse(reviews []models.Review, params utils.PaginationParams, total int64) ReviewListResponse {
	items := make([]ReviewDTO, len(reviews))
	for i, review := range reviews {
		items[i] = ToReviewDTO(review)
	}

	return ReviewListResponse{
		Reviews: items,
		Pagination: utils.PaginationResponse{
			Skip:  params.Skip,
			Limit: params.Limit,
			Total: total,
		},
	}
}
