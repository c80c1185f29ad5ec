package models

import "time"

type ProjectStatus string

const (
	ProjectStatusOpen       ProjectStatus = "open"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusCancelled  ProjectStatus = "cancelled"
)

// ValidProjectStatus reports whether s is one of the enumerated statuses.
func ValidProjectStatus(s ProjectStatus) bool {
	switch s {
	case ProjectStatusOpen, ProjectStatusInProgress, ProjectStatusCompleted, ProjectStatusCancelled:
		return true
	}
	return false
}

type Project struct {
	ID          uint64        `gorm:"primarykey" json:"id"`
	Title       string        `gorm:"type:varchar(200);not null" json:"title"`
	Description string        `gorm:"type:text;not null" json:"description"`
	Budget      *float64      `json:"budget"`
	Deadline    *time.Time    `json:"deadline"`
	Status      ProjectStatus `gorm:"type:varchar(20);not null;default:'open'" json:"status"`
	ClientID    uint64        `gorm:"not null;index" json:"client_id"`
	CreatedAt   time.Time     `json:"created_at"`

	// Relations
	Client    User       `gorm:"foreignKey:ClientID" json:"-"`
	Proposals []Proposal `gorm:"foreignKey:ProjectID" json:"-"`
	Reviews   []Review   `gorm:"foreignKey:ProjectID" json:"-"`
}
