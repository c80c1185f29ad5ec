package models

// FreelancerSkill links a freelancer profile to a skill. Each pair exists at
// most once, enforced by the composite unique index.
type FreelancerSkill struct {
	ID           uint64 `gorm:"primarykey" json:"-"`
	FreelancerID uint64 `gorm:"not null;uniqueIndex:idx_freelancer_skills_pair" json:"freelancer_id"`
	SkillID      uint64 `gorm:"not null;uniqueIndex:idx_freelancer_skills_pair" json:"skill_id"`

	// Relations
	Freelancer FreelancerProfile `gorm:"foreignKey:FreelancerID" json:"-"`
	Skill      Skill             `gorm:"foreignKey:SkillID" json:"-"`
}
