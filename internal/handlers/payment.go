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

// PaymentHandler coordinates payment endpoints.
type PaymentHandler struct {
	paymentService *services.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// List returns payments with optional status and proposal filters.
func (h *PaymentHandler) List(c *gin.Context) {
	proposalID, ok := queryUint64(c, "proposal_id")
	if !ok {
		return
	}

	var status *models.PaymentStatus
	if raw := c.Query("status"); raw != "" {
		s := models.PaymentStatus(raw)
		if !models.ValidPaymentStatus(s) {
			apierrors.BadRequest(c, "Invalid status")
			return
		}
		status = &s
	}

	filter := repository.PaymentFilter{
		Status:     status,
		ProposalID: proposalID,
	}
	params := utils.GetPaginationParams(c)

	payments, total, err := h.paymentService.List(filter, params)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch payments")
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentListResponse(payments, params, total))
}

// Get returns a payment by id.
func (h *PaymentHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	payment, err := h.paymentService.Get(id)
	if err != nil {
		h.respondPaymentError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentDTO(*payment))
}

// Create records a payment against an existing proposal.
func (h *PaymentHandler) Create(c *gin.Context) {
	type CreateRequest struct {
		Amount     float64              `json:"amount" binding:"required,gt=0"`
		Currency   string               `json:"currency" binding:"omitempty,len=3"`
		Status     models.PaymentStatus `json:"status"`
		ProposalID uint64               `json:"proposal_id" binding:"required"`
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	payment, err := h.paymentService.Create(services.CreatePaymentInput{
		Amount:     req.Amount,
		Currency:   req.Currency,
		Status:     req.Status,
		ProposalID: req.ProposalID,
	})
	if err != nil {
		h.respondPaymentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentDTO(*payment))
}

// Update applies a partial update. The first transition into the completed
// status stamps the payment date.
func (h *PaymentHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	type UpdateRequest struct {
		Amount   *float64              `json:"amount" binding:"omitempty,gt=0"`
		Currency *string               `json:"currency" binding:"omitempty,len=3"`
		Status   *models.PaymentStatus `json:"status"`
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	payment, err := h.paymentService.Update(id, services.UpdatePaymentInput{
		Amount:   req.Amount,
		Currency: req.Currency,
		Status:   req.Status,
	})
	if err != nil {
		h.respondPaymentError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentDTO(*payment))
}

// Delete removes a payment record.
func (h *PaymentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.paymentService.Delete(id); err != nil {
		h.respondPaymentError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment deleted",
	})
}

func (h *PaymentHandler) respondPaymentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPaymentNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrProposalNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidPaymentStatus):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
