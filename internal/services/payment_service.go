package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/repository"
	"github.com/yukikurage/freelance-marketplace-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
)

// PaymentService handles payment business logic, in particular the
// exactly-once payment date stamp on completion.
type PaymentService struct {
	paymentRepo  repository.PaymentRepository
	proposalRepo repository.ProposalRepository

	// now is swappable in tests
	now func() time.Time
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(paymentRepo repository.PaymentRepository, proposalRepo repository.ProposalRepository) *PaymentService {
	return &PaymentService{
		paymentRepo:  paymentRepo,
		proposalRepo: proposalRepo,
		now:          time.Now,
	}
}

// List returns payments matching the filter.
func (s *PaymentService) List(filter repository.PaymentFilter, params utils.PaginationParams) ([]models.Payment, int64, error) {
	return s.paymentRepo.List(filter, params)
}

// Get returns a payment by ID.
func (s *PaymentService) Get(id uint64) (*models.Payment, error) {
	payment, err := s.paymentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to find payment: %w", err)
	}
	return payment, nil
}

// CreatePaymentInput represents input for creating a payment.
type CreatePaymentInput struct {
	Amount     float64
	Currency   string
	Status     models.PaymentStatus
	ProposalID uint64
}

// Create creates a payment against an existing proposal.
func (s *PaymentService) Create(input CreatePaymentInput) (*models.Payment, error) {
	if _, err := s.proposalRepo.FindByID(input.ProposalID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProposalNotFound
		}
		return nil, fmt.Errorf("failed to find proposal: %w", err)
	}

	status := input.Status
	if status == "" {
		status = models.PaymentStatusPending
	}
	if !models.ValidPaymentStatus(status) {
		return nil, ErrInvalidPaymentStatus
	}

	currency := input.Currency
	if currency == "" {
		currency = "USD"
	}

	payment := &models.Payment{
		Amount:     input.Amount,
		Currency:   currency,
		Status:     status,
		ProposalID: input.ProposalID,
	}

	// A payment created directly in the completed state gets its date
	// stamped immediately.
	if payment.Status == models.PaymentStatusCompleted {
		now := s.now()
		payment.PaymentDate = &now
	}

	if err := s.paymentRepo.Create(payment); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}
	return payment, nil
}

// UpdatePaymentInput applies only the fields that are present.
type UpdatePaymentInput struct {
	Amount   *float64
	Currency *string
	Status   *models.PaymentStatus
}

// Update applies a partial update. The payment date is stamped exactly once:
// on the first transition into the completed status while no date is set.
// Re-sending completed later leaves the original stamp untouched, and no
// other transition touches the date.
func (s *PaymentService) Update(paymentID uint64, input UpdatePaymentInput) (*models.Payment, error) {
	payment, err := s.Get(paymentID)
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		if !models.ValidPaymentStatus(*input.Status) {
			return nil, ErrInvalidPaymentStatus
		}
		if *input.Status == models.PaymentStatusCompleted && payment.PaymentDate == nil {
			now := s.now()
			payment.PaymentDate = &now
		}
		payment.Status = *input.Status
	}
	if input.Amount != nil {
		payment.Amount = *input.Amount
	}
	if input.Currency != nil {
		payment.Currency = *input.Currency
	}

	if err := s.paymentRepo.Update(payment); err != nil {
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}
	return payment, nil
}

// Delete removes a payment.
func (s *PaymentService) Delete(paymentID uint64) error {
	if _, err := s.Get(paymentID); err != nil {
		return err
	}

	if err := s.paymentRepo.Delete(paymentID); err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	return nil
}
