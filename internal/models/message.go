package models

import (
	"time"
)

// Message is immutable once created. A nil ConversationID means the message
// belongs to the implicit global room; a nil UserID means an anonymous send.
type Message struct {
	ID             uint   `gorm:"primaryKey"`
	Content        string `gorm:"not null"`
	UserID         *uint  `gorm:"index"`
	ConversationID *uint  `gorm:"index"`
	CreatedAt      time.Time

	User *User `gorm:"foreignKey:UserID"`
}
