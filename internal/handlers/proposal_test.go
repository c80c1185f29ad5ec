package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/freelance-marketplace-api/internal/dto"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/services"
)

// proposalFixture sets up a client with an open project and a freelancer with
// a profile.
type proposalFixture struct {
	env        *testEnv
	client     *models.User
	freelancer *models.User
	profile    *models.FreelancerProfile
	project    *models.Project
}

func setupProposalFixture(t *testing.T) proposalFixture {
	t.Helper()
	env := setupTestEnv(t)

	client := env.createUser(t, "client", "client@example.com")
	freelancer := env.createUser(t, "freelancer", "freelancer@example.com")
	profile := env.createFreelancer(t, freelancer.ID)

	project, err := env.projectService.Create(client.ID, services.CreateProjectInput{
		Title:       "Build an API",
		Description: "REST backend in Go",
	})
	require.NoError(t, err)

	return proposalFixture{
		env:        env,
		client:     client,
		freelancer: freelancer,
		profile:    profile,
		project:    project,
	}
}

func (f proposalFixture) submit(t *testing.T) dto.ProposalDTO {
	t.Helper()
	w := f.env.request(t, http.MethodPost, "/api/proposals", f.env.token(t, f.freelancer.ID), map[string]any{
		"project_id":     f.project.ID,
		"freelancer_id":  f.profile.ID,
		"cover_message":  "I can build this",
		"proposed_price": 2500.0,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.ProposalDTO
	decode(t, w, &response)
	return response
}

func TestProposalHandler_Create(t *testing.T) {
	f := setupProposalFixture(t)

	proposal := f.submit(t)
	require.Equal(t, f.project.ID, proposal.ProjectID)
	require.Equal(t, f.profile.ID, proposal.FreelancerID)
	require.Equal(t, models.ProposalStatusPending, proposal.Status)
}

func TestProposalHandler_CreateOnClosedProject(t *testing.T) {
	f := setupProposalFixture(t)

	status := models.ProjectStatusInProgress
	_, err := f.env.projectService.Update(f.client, f.project.ID, services.UpdateProjectInput{Status: &status})
	require.NoError(t, err)

	w := f.env.request(t, http.MethodPost, "/api/proposals", f.env.token(t, f.freelancer.ID), map[string]any{
		"project_id":     f.project.ID,
		"freelancer_id":  f.profile.ID,
		"cover_message":  "too late",
		"proposed_price": 2500.0,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "not open")
}

func TestProposalHandler_CreateForForeignProfile(t *testing.T) {
	f := setupProposalFixture(t)
	intruder := f.env.createUser(t, "intruder", "intruder@example.com")

	w := f.env.request(t, http.MethodPost, "/api/proposals", f.env.token(t, intruder.ID), map[string]any{
		"project_id":     f.project.ID,
		"freelancer_id":  f.profile.ID,
		"cover_message":  "on someone else's behalf",
		"proposed_price": 100.0,
	})
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestProposalHandler_OneProposalPerProject(t *testing.T) {
	f := setupProposalFixture(t)
	f.submit(t)

	w := f.env.request(t, http.MethodPost, "/api/proposals", f.env.token(t, f.freelancer.ID), map[string]any{
		"project_id":     f.project.ID,
		"freelancer_id":  f.profile.ID,
		"cover_message":  "second bid",
		"proposed_price": 2000.0,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "already exists")
}

func TestProposalHandler_UpdatePendingProposal(t *testing.T) {
	f := setupProposalFixture(t)
	proposal := f.submit(t)

	w := f.env.request(t, http.MethodPut, fmt.Sprintf("/api/proposals/%d", proposal.ID), f.env.token(t, f.freelancer.ID), map[string]any{
		"proposed_price": 3000.0,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated dto.ProposalDTO
	decode(t, w, &updated)
	require.Equal(t, 3000.0, updated.ProposedPrice)
	require.Equal(t, "I can build this", updated.CoverMessage)
}

func TestProposalHandler_TerminalProposalImmutable(t *testing.T) {
	f := setupProposalFixture(t)
	proposal := f.submit(t)

	accepted := models.ProposalStatusAccepted
	_, err := f.env.proposalService.Update(f.freelancer.ID, proposal.ID, services.UpdateProposalInput{Status: &accepted})
	require.NoError(t, err)

	w := f.env.request(t, http.MethodPut, fmt.Sprintf("/api/proposals/%d", proposal.ID), f.env.token(t, f.freelancer.ID), map[string]any{
		"proposed_price": 9999.0,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProposalHandler_AcceptedProposalNotDeletable(t *testing.T) {
	f := setupProposalFixture(t)
	proposal := f.submit(t)

	accepted := models.ProposalStatusAccepted
	_, err := f.env.proposalService.Update(f.freelancer.ID, proposal.ID, services.UpdateProposalInput{Status: &accepted})
	require.NoError(t, err)

	w := f.env.request(t, http.MethodDelete, fmt.Sprintf("/api/proposals/%d", proposal.ID), f.env.token(t, f.freelancer.ID), nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "cannot delete an accepted proposal")
}

func TestProposalHandler_RejectedProposalDeletable(t *testing.T) {
	f := setupProposalFixture(t)
	proposal := f.submit(t)

	rejected := models.ProposalStatusRejected
	_, err := f.env.proposalService.Update(f.freelancer.ID, proposal.ID, services.UpdateProposalInput{Status: &rejected})
	require.NoError(t, err)

	w := f.env.request(t, http.MethodDelete, fmt.Sprintf("/api/proposals/%d", proposal.ID), f.env.token(t, f.freelancer.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestProposalHandler_UpdateByNonOwner(t *testing.T) {
	f := setupProposalFixture(t)
	proposal := f.submit(t)

	w := f.env.request(t, http.MethodPut, fmt.Sprintf("/api/proposals/%d", proposal.ID), f.env.token(t, f.client.ID), map[string]any{
		"proposed_price": 1.0,
	})
	require.Equal(t, http.StatusForbidden, w.Code)
}
