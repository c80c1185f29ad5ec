package models

import "time"

// Message is a direct message between two distinct users.
type Message struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	SenderID    uint64    `gorm:"not null;index" json:"sender_id"`
	RecipientID uint64    `gorm:"not null;index" json:"recipient_id"`
	Timestamp   time.Time `gorm:"autoCreateTime" json:"timestamp"`
	IsRead      bool      `gorm:"not null;default:false" json:"is_read"`

	// Relations
	Sender    User `gorm:"foreignKey:SenderID" json:"-"`
	Recipient User `gorm:"foreignKey:RecipientID" json:"-"`
}
