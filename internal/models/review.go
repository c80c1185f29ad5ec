package models

import "time"

// Review is a client's rating of a freelancer on a project. One review per
// (project, reviewer) pair, enforced by the composite unique index.
type Review struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Rating       int       `gorm:"not null" json:"rating"`
	Comment      string    `gorm:"type:varchar(2000)" json:"comment"`
	ProjectID    uint64    `gorm:"not null;uniqueIndex:idx_reviews_project_reviewer" json:"project_id"`
	ReviewerID   uint64    `gorm:"not null;uniqueIndex:idx_reviews_project_reviewer" json:"reviewer_id"`
	FreelancerID uint64    `gorm:"not null;index" json:"freelancer_id"`
	CreatedAt    time.Time `json:"created_at"`

	// Relations
	Project    Project           `gorm:"foreignKey:ProjectID" json:"-"`
	Reviewer   User              `gorm:"foreignKey:ReviewerID" json:"-"`
	Freelancer FreelancerProfile `gorm:"foreignKey:FreelancerID" json:"-"`
}
