package models

import "time"

type ProposalStatus string

const (
	ProposalStatusPending  ProposalStatus = "pending"
	ProposalStatusAccepted ProposalStatus = "accepted"
	ProposalStatusRejected ProposalStatus = "rejected"
)

// ValidProposalStatus reports whether s is one of the enumerated statuses.
func ValidProposalStatus(s ProposalStatus) bool {
	switch s {
	case ProposalStatusPending, ProposalStatusAccepted, ProposalStatusRejected:
		return true
	}
	return false
}

// Terminal reports whether the proposal reached a state after which edits
// are no longer permitted.
func (s ProposalStatus) Terminal() bool {
	return s == ProposalStatusAccepted || s == ProposalStatusRejected
}

// Proposal is a freelancer's bid on a project. One proposal per
// (project, freelancer) pair, enforced by the composite unique index.
type Proposal struct {
	ID            uint64         `gorm:"primarykey" json:"id"`
	CoverMessage  string         `gorm:"type:text;not null" json:"cover_message"`
	ProposedPrice float64        `gorm:"not null" json:"proposed_price"`
	Status        ProposalStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	ProjectID     uint64         `gorm:"not null;uniqueIndex:idx_proposals_project_freelancer" json:"project_id"`
	FreelancerID  uint64         `gorm:"not null;uniqueIndex:idx_proposals_project_freelancer" json:"freelancer_id"`
	SubmittedAt   time.Time      `gorm:"autoCreateTime" json:"submitted_at"`

	// Relations
	Project    Project           `gorm:"foreignKey:ProjectID" json:"-"`
	Freelancer FreelancerProfile `gorm:"foreignKey:FreelancerID" json:"-"`
}
