package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/freelance-marketplace-api/internal/dto"
	"github.com/yukikurage/freelance-marketplace-api/internal/services"
)

func TestReviewHandler_Create(t *testing.T) {
	f := setupProposalFixture(t)

	w := f.env.request(t, http.MethodPost, "/api/reviews", f.env.token(t, f.client.ID), map[string]any{
		"rating":        5,
		"comment":       "excellent work",
		"project_id":    f.project.ID,
		"reviewer_id":   f.client.ID,
		"freelancer_id": f.profile.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.ReviewDTO
	decode(t, w, &response)
	require.Equal(t, 5, response.Rating)
	require.Equal(t, f.client.ID, response.ReviewerID)
}

func TestReviewHandler_ReviewerMustBeCaller(t *testing.T) {
	f := setupProposalFixture(t)

	// The freelancer tries to post a review in the client's name
	w := f.env.request(t, http.MethodPost, "/api/reviews", f.env.token(t, f.freelancer.ID), map[string]any{
		"rating":        5,
		"project_id":    f.project.ID,
		"reviewer_id":   f.client.ID,
		"freelancer_id": f.profile.ID,
	})
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestReviewHandler_RatingOutOfRange(t *testing.T) {
	f := setupProposalFixture(t)

	for _, rating := range []int{0, 6, -1} {
		w := f.env.request(t, http.MethodPost, "/api/reviews", f.env.token(t, f.client.ID), map[string]any{
			"rating":        rating,
			"project_id":    f.project.ID,
			"reviewer_id":   f.client.ID,
			"freelancer_id": f.profile.ID,
		})
		require.Equal(t, http.StatusBadRequest, w.Code, "rating %d must be rejected", rating)
	}
}

func TestReviewHandler_OneReviewPerProjectAndReviewer(t *testing.T) {
	f := setupProposalFixture(t)

	_, err := f.env.reviewService.Create(f.client.ID, services.CreateReviewInput{
		Rating:       4,
		ProjectID:    f.project.ID,
		ReviewerID:   f.client.ID,
		FreelancerID: f.profile.ID,
	})
	require.NoError(t, err)

	w := f.env.request(t, http.MethodPost, "/api/reviews", f.env.token(t, f.client.ID), map[string]any{
		"rating":        1,
		"project_id":    f.project.ID,
		"reviewer_id":   f.client.ID,
		"freelancer_id": f.profile.ID,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "already exists")
}

func TestReviewHandler_UpdateByAuthor(t *testing.T) {
	f := setupProposalFixture(t)

	review, err := f.env.reviewService.Create(f.client.ID, services.CreateReviewInput{
		Rating:       3,
		Comment:      "decent",
		ProjectID:    f.project.ID,
		ReviewerID:   f.client.ID,
		FreelancerID: f.profile.ID,
	})
	require.NoError(t, err)

	w := f.env.request(t, http.MethodPut, fmt.Sprintf("/api/reviews/%d", review.ID), f.env.token(t, f.freelancer.ID), map[string]any{
		"rating": 5,
	})
	require.Equal(t, http.StatusForbidden, w.Code)

	w = f.env.request(t, http.MethodPut, fmt.Sprintf("/api/reviews/%d", review.ID), f.env.token(t, f.client.ID), map[string]any{
		"rating": 5,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.ReviewDTO
	decode(t, w, &response)
	require.Equal(t, 5, response.Rating)
	require.Equal(t, "decent", response.Comment)
}

func TestReviewHandler_UpdateRatingValidated(t *testing.T) {
	f := setupProposalFixture(t)

	review, err := f.env.reviewService.Create(f.client.ID, services.CreateReviewInput{
		Rating:       3,
		ProjectID:    f.project.ID,
		ReviewerID:   f.client.ID,
		FreelancerID: f.profile.ID,
	})
	require.NoError(t, err)

	w := f.env.request(t, http.MethodPut, fmt.Sprintf("/api/reviews/%d", review.ID), f.env.token(t, f.client.ID), map[string]any{
		"rating": 11,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReviewHandler_ListByFreelancer(t *testing.T) {
	f := setupProposalFixture(t)

	_, err := f.env.reviewService.Create(f.client.ID, services.CreateReviewInput{
		Rating:       4,
		ProjectID:    f.project.ID,
		ReviewerID:   f.client.ID,
		FreelancerID: f.profile.ID,
	})
	require.NoError(t, err)

	w := f.env.request(t, http.MethodGet, fmt.Sprintf("/api/reviews?freelancer_id=%d&min_rating=4", f.profile.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.ReviewListResponse
	decode(t, w, &response)
	require.Len(t, response.Reviews, 1)
}
