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

func TestProjectHandler_Create(t *testing.T) {
	env := setupTestEnv(t)
	client := env.createUser(t, "client", "client@example.com")

	w := env.request(t, http.MethodPost, "/api/projects", env.token(t, client.ID), map[string]any{
		"title":       "Build an API",
		"description": "REST backend in Go",
		"budget":      5000.0,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.ProjectDTO
	decode(t, w, &response)
	require.Equal(t, client.ID, response.ClientID)
	require.Equal(t, models.ProjectStatusOpen, response.Status)
}

func TestProjectHandler_CreateRequiresAuth(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, http.MethodPost, "/api/projects", "", map[string]any{
		"title":       "Anonymous project",
		"description": "no owner",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProjectHandler_InvalidStatusOnCreate(t *testing.T) {
	env := setupTestEnv(t)
	client := env.createUser(t, "client", "client@example.com")

	w := env.request(t, http.MethodPost, "/api/projects", env.token(t, client.ID), map[string]any{
		"title":       "Build an API",
		"description": "REST backend in Go",
		"status":      "archived",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProjectHandler_UpdateByNonClient(t *testing.T) {
	env := setupTestEnv(t)
	client := env.createUser(t, "client", "client@example.com")
	other := env.createUser(t, "other", "other@example.com")

	project, err := env.projectService.Create(client.ID, services.CreateProjectInput{
		Title:       "Build an API",
		Description: "REST backend in Go",
	})
	require.NoError(t, err)

	w := env.request(t, http.MethodPut, fmt.Sprintf("/api/projects/%d", project.ID), env.token(t, other.ID), map[string]any{
		"title": "hijacked",
	})
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestProjectHandler_AdminCanUpdateAnyProject(t *testing.T) {
	env := setupTestEnv(t)
	client := env.createUser(t, "client", "client@example.com")
	admin := env.createAdmin(t, "root", "root@example.com")

	project, err := env.projectService.Create(client.ID, services.CreateProjectInput{
		Title:       "Build an API",
		Description: "REST backend in Go",
	})
	require.NoError(t, err)

	w := env.request(t, http.MethodPut, fmt.Sprintf("/api/projects/%d", project.ID), env.token(t, admin.ID), map[string]any{
		"status": models.ProjectStatusCancelled,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.ProjectDTO
	decode(t, w, &response)
	require.Equal(t, models.ProjectStatusCancelled, response.Status)
}

func TestProjectHandler_DeleteByClient(t *testing.T) {
	env := setupTestEnv(t)
	client := env.createUser(t, "client", "client@example.com")

	project, err := env.projectService.Create(client.ID, services.CreateProjectInput{
		Title:       "Build an API",
		Description: "REST backend in Go",
	})
	require.NoError(t, err)

	w := env.request(t, http.MethodDelete, fmt.Sprintf("/api/projects/%d", project.ID), env.token(t, client.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, http.MethodGet, fmt.Sprintf("/api/projects/%d", project.ID), "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestProjectHandler_ListFilters(t *testing.T) {
	env := setupTestEnv(t)
	client := env.createUser(t, "client", "client@example.com")
	other := env.createUser(t, "other", "other@example.com")

	_, err := env.projectService.Create(client.ID, services.CreateProjectInput{
		Title:       "Open project",
		Description: "still looking",
	})
	require.NoError(t, err)
	_, err = env.projectService.Create(other.ID, services.CreateProjectInput{
		Title:       "Closed project",
		Description: "done",
		Status:      models.ProjectStatusCompleted,
	})
	require.NoError(t, err)

	w := env.request(t, http.MethodGet, "/api/projects?status=open", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.ProjectListResponse
	decode(t, w, &response)
	require.Len(t, response.Projects, 1)
	require.Equal(t, "Open project", response.Projects[0].Title)

	w = env.request(t, http.MethodGet, fmt.Sprintf("/api/projects?client_id=%d", other.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &response)
	require.Len(t, response.Projects, 1)
	require.Equal(t, "Closed project", response.Projects[0].Title)
}

func TestProjectHandler_ListInvalidStatusRejected(t *testing.T) {
	env := setupTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/projects?status=bogus", "", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProjectHandler_Pagination(t *testing.T) {
	env := setupTestEnv(t)
	client := env.createUser(t, "client", "client@example.com")

	for i := 0; i < 5; i++ {
		_, err := env.projectService.Create(client.ID, services.CreateProjectInput{
			Title:       fmt.Sprintf("Project %d", i),
			Description: "batch",
		})
		require.NoError(t, err)
	}

	w := env.request(t, http.MethodGet, "/api/projects?skip=2&limit=2", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.ProjectListResponse
	decode(t, w, &response)
	require.Len(t, response.Projects, 2)
	require.Equal(t, int64(5), response.Pagination.Total)
	require.Equal(t, 2, response.Pagination.Skip)
	require.Equal(t, 2, response.Pagination.Limit)
}
