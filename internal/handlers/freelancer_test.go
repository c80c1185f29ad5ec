package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/freelance-marketplace-api/internal/dto"
	"github.com/yukikurage/freelance-marketplace-api/internal/services"
)

func TestFreelancerHandler_Create(t *testing.T) {
	env := setupTestEnv(t)
	alice := env.createUser(t, "alice", "alice@example.com")

	w := env.request(t, http.MethodPost, "/api/freelancers", env.token(t, alice.ID), map[string]any{
		"user_id":     alice.ID,
		"bio":         "Go developer",
		"hourly_rate": 85.0,
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.FreelancerDTO
	decode(t, w, &response)
	require.Equal(t, alice.ID, response.UserID)
	require.Equal(t, "Go developer", response.Bio)
	require.NotNil(t, response.HourlyRate)
	require.Equal(t, 85.0, *response.HourlyRate)
}

func TestFreelancerHandler_CreateForMissingUser(t *testing.T) {
	env := setupTestEnv(t)
	alice := env.createUser(t, "alice", "alice@example.com")

	w := env.request(t, http.MethodPost, "/api/freelancers", env.token(t, alice.ID), map[string]any{
		"user_id": 9999,
		"bio":     "ghost",
	})

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestFreelancerHandler_OneProfilePerUser(t *testing.T) {
	env := setupTestEnv(t)
	alice := env.createUser(t, "alice", "alice@example.com")
	env.createFreelancer(t, alice.ID)

	w := env.request(t, http.MethodPost, "/api/freelancers", env.token(t, alice.ID), map[string]any{
		"user_id": alice.ID,
		"bio":     "second profile",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "already exists")
}

func TestFreelancerHandler_UpdateByNonOwner(t *testing.T) {
	env := setupTestEnv(t)
	alice := env.createUser(t, "alice", "alice@example.com")
	bob := env.createUser(t, "bob", "bob@example.com")
	profile := env.createFreelancer(t, alice.ID)

	w := env.request(t, http.MethodPut, fmt.Sprintf("/api/freelancers/%d", profile.ID), env.token(t, bob.ID), map[string]any{
		"bio": "hijacked",
	})

	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestFreelancerHandler_UpdatePartial(t *testing.T) {
	env := setupTestEnv(t)
	alice := env.createUser(t, "alice", "alice@example.com")
	profile := env.createFreelancer(t, alice.ID)

	w := env.request(t, http.MethodPut, fmt.Sprintf("/api/freelancers/%d", profile.ID), env.token(t, alice.ID), map[string]any{
		"portfolio_url": "https://alice.dev",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.FreelancerDTO
	decode(t, w, &response)
	require.Equal(t, "https://alice.dev", response.PortfolioURL)
	// Fields absent from the payload keep their value
	require.Equal(t, "Experienced developer", response.Bio)
}

func TestFreelancerHandler_DeleteByOwner(t *testing.T) {
	env := setupTestEnv(t)
	alice := env.createUser(t, "alice", "alice@example.com")
	profile := env.createFreelancer(t, alice.ID)

	w := env.request(t, http.MethodDelete, fmt.Sprintf("/api/freelancers/%d", profile.ID), env.token(t, alice.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, http.MethodGet, fmt.Sprintf("/api/freelancers/%d", profile.ID), "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestFreelancerHandler_ListWithRateFilter(t *testing.T) {
	env := setupTestEnv(t)
	alice := env.createUser(t, "alice", "alice@example.com")
	bob := env.createUser(t, "bob", "bob@example.com")

	cheap := 30.0
	pricey := 120.0
	_, err := env.freelancerService.Create(services.CreateFreelancerInput{UserID: alice.ID, HourlyRate: &cheap})
	require.NoError(t, err)
	_, err = env.freelancerService.Create(services.CreateFreelancerInput{UserID: bob.ID, HourlyRate: &pricey})
	require.NoError(t, err)

	w := env.request(t, http.MethodGet, "/api/freelancers?min_rate=100", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.FreelancerListResponse
	decode(t, w, &response)
	require.Len(t, response.Freelancers, 1)
	require.Equal(t, bob.ID, response.Freelancers[0].UserID)
}
