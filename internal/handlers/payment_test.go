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

// setupPaymentFixture returns a fixture with a pending proposal to pay
// against.
func setupPaymentFixture(t *testing.T) (proposalFixture, dto.ProposalDTO) {
	t.Helper()
	f := setupProposalFixture(t)
	proposal := f.submit(t)
	return f, proposal
}

func TestPaymentHandler_Create(t *testing.T) {
	f, proposal := setupPaymentFixture(t)

	w := f.env.request(t, http.MethodPost, "/api/payments", f.env.token(t, f.client.ID), map[string]any{
		"amount":      2500.0,
		"proposal_id": proposal.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.PaymentDTO
	decode(t, w, &response)
	require.Equal(t, 2500.0, response.Amount)
	require.Equal(t, "USD", response.Currency)
	require.Equal(t, models.PaymentStatusPending, response.Status)
	require.Nil(t, response.PaymentDate)
}

func TestPaymentHandler_CreateForMissingProposal(t *testing.T) {
	f, _ := setupPaymentFixture(t)

	w := f.env.request(t, http.MethodPost, "/api/payments", f.env.token(t, f.client.ID), map[string]any{
		"amount":      100.0,
		"proposal_id": 9999,
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestPaymentHandler_CompletionStampsDateOnce(t *testing.T) {
	f, proposal := setupPaymentFixture(t)

	payment, err := f.env.paymentService.Create(services.CreatePaymentInput{
		Amount:     2500,
		ProposalID: proposal.ID,
	})
	require.NoError(t, err)
	require.Nil(t, payment.PaymentDate)

	completed := models.PaymentStatusCompleted
	w := f.env.request(t, http.MethodPut, fmt.Sprintf("/api/payments/%d", payment.ID), f.env.token(t, f.client.ID), map[string]any{
		"status": completed,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var first dto.PaymentDTO
	decode(t, w, &first)
	require.NotNil(t, first.PaymentDate)

	// Re-sending completed must not move the stamp
	w = f.env.request(t, http.MethodPut, fmt.Sprintf("/api/payments/%d", payment.ID), f.env.token(t, f.client.ID), map[string]any{
		"status": completed,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var second dto.PaymentDTO
	decode(t, w, &second)
	require.NotNil(t, second.PaymentDate)
	require.True(t, first.PaymentDate.Equal(*second.PaymentDate))
}

func TestPaymentHandler_NonCompletionDoesNotStamp(t *testing.T) {
	f, proposal := setupPaymentFixture(t)

	payment, err := f.env.paymentService.Create(services.CreatePaymentInput{
		Amount:     2500,
		ProposalID: proposal.ID,
	})
	require.NoError(t, err)

	failed := models.PaymentStatusFailed
	w := f.env.request(t, http.MethodPut, fmt.Sprintf("/api/payments/%d", payment.ID), f.env.token(t, f.client.ID), map[string]any{
		"status": failed,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.PaymentDTO
	decode(t, w, &response)
	require.Equal(t, models.PaymentStatusFailed, response.Status)
	require.Nil(t, response.PaymentDate)
}

func TestPaymentHandler_CreateCompletedStampsImmediately(t *testing.T) {
	f, proposal := setupPaymentFixture(t)

	w := f.env.request(t, http.MethodPost, "/api/payments", f.env.token(t, f.client.ID), map[string]any{
		"amount":      2500.0,
		"status":      models.PaymentStatusCompleted,
		"proposal_id": proposal.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.PaymentDTO
	decode(t, w, &response)
	require.NotNil(t, response.PaymentDate)
}

func TestPaymentHandler_InvalidStatus(t *testing.T) {
	f, proposal := setupPaymentFixture(t)

	payment, err := f.env.paymentService.Create(services.CreatePaymentInput{
		Amount:     100,
		ProposalID: proposal.ID,
	})
	require.NoError(t, err)

	w := f.env.request(t, http.MethodPut, fmt.Sprintf("/api/payments/%d", payment.ID), f.env.token(t, f.client.ID), map[string]any{
		"status": "refunded",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPaymentHandler_ListByProposal(t *testing.T) {
	f, proposal := setupPaymentFixture(t)

	_, err := f.env.paymentService.Create(services.CreatePaymentInput{Amount: 1000, ProposalID: proposal.ID})
	require.NoError(t, err)
	_, err = f.env.paymentService.Create(services.CreatePaymentInput{Amount: 1500, ProposalID: proposal.ID})
	require.NoError(t, err)

	w := f.env.request(t, http.MethodGet, fmt.Sprintf("/api/payments?proposal_id=%d", proposal.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.PaymentListResponse
	decode(t, w, &response)
	require.Len(t, response.Payments, 2)
	require.Equal(t, int64(2), response.Pagination.Total)
}
