package models

type User struct {
	ID             uint64 `gorm:"primarykey" json:"id"`
	Name           string `gorm:"type:varchar(100);not null" json:"name"`
	Email          string `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	HashedPassword string `gorm:"type:varchar(300);not null" json:"-"`
	RoleID         uint64 `gorm:"not null" json:"role_id"`

	// Relations
	Role              Role               `gorm:"foreignKey:RoleID" json:"-"`
	FreelancerProfile *FreelancerProfile `gorm:"foreignKey:UserID" json:"-"`
	Projects          []Project          `gorm:"foreignKey:ClientID" json:"-"`
	SentMessages      []Message          `gorm:"foreignKey:SenderID" json:"-"`
	ReceivedMessages  []Message          `gorm:"foreignKey:RecipientID" json:"-"`
}
