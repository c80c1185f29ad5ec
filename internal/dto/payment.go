package dto

import (
	"time"

	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/utils"
)

// PaymentDTO represents a payment in API responses
type PaymentDTO struct {
	ID          uint64               `json:"id"`
	Amount      float64              `json:"amount"`
	Currency    string               `json:"currency"`
	Status      models.PaymentStatus `json:"status"`
	ProposalID  uint64               `json:"proposal_id"`
	PaymentDate *time.Time           `json:"payment_date"`
}

// PaymentListResponse represents a paginated list of payments
type PaymentListResponse struct {
	Payments   []PaymentDTO             `json:"payments"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// ToPaymentDTO converts a Payment model to PaymentDTO
func ToPaymentDTO(payment models.Payment) PaymentDTO {
	return PaymentDTO{
		ID:          payment.ID,
		Amount:      payment.Amount,
		Currency:    payment.Currency,
		Status:      payment.Status,
		ProposalID:  payment.ProposalID,
		PaymentDate: payment.PaymentDate,
	}
}

// ToPaymentListResponse converts payments to a PaymentListResponse
func ToPaymentListResponse(payments []models.Payment, params utils.PaginationParams, total int64) PaymentListResponse {
	items := make([]PaymentDTO, len(payments))
	for i, payment := range payments {
		items[i] = ToPaymentDTO(payment)
	}

	return PaymentListResponse{
		Payments: items,
		Pagination: utils.PaginationResponse{
			Skip:  params.Skip,
			Limit: params.Limit,
			Total: total,
		},
	}
}
