package models

// FreelancerProfile is the freelancer-side profile of a user. At most one
// profile exists per user, enforced by the unique index on UserID.
type FreelancerProfile struct {
	ID           uint64   `gorm:"primarykey" json:"id"`
	UserID       uint64   `gorm:"uniqueIndex;not null" json:"user_id"`
	Bio          string   `gorm:"type:text" json:"bio"`
	HourlyRate   *float64 `json:"hourly_rate"`
	PortfolioURL string   `gorm:"type:varchar(500)" json:"portfolio_url"`

	// Relations
	User      User             `gorm:"foreignKey:UserID" json:"-"`
	Proposals []Proposal       `gorm:"foreignKey:FreelancerID" json:"-"`
	Skills    []FreelancerSkill `gorm:"foreignKey:FreelancerID" json:"-"`
}
