package models

import "time"

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// ValidPaymentStatus reports whether s is one of the enumerated statuses.
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed:
		return true
	}
	return false
}

// Payment settles an accepted proposal. PaymentDate is stamped exactly once,
// on the first transition into the completed status.
type Payment struct {
	ID          uint64        `gorm:"primarykey" json:"id"`
	Amount      float64       `gorm:"not null" json:"amount"`
	Currency    string        `gorm:"type:varchar(3);not null;default:'USD'" json:"currency"`
	Status      PaymentStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	ProposalID  uint64        `gorm:"not null;index" json:"proposal_id"`
	PaymentDate *time.Time    `json:"payment_date"`

	Proposal Proposal `gorm:"foreignKey:ProposalID" json:"-"`
}
