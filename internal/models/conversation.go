package models

import (
	"fmt"
	"time"
)

type Conversation struct {
	ID          uint   `gorm:"primaryKey"`
	SenderID    uint   `gorm:"not null;index"`
	RecipientID uint   `gorm:"not null;index"`
	PairKey     string `gorm:"uniqueIndex;not null"`
	CreatedAt   time.Time

	Sender    User      `gorm:"foreignKey:SenderID"`
	Recipient User      `gorm:"foreignKey:RecipientID"`
	Messages  []Message `gorm:"foreignKey:ConversationID"`
}

// ConversationPairKey canonicalizes the two participant ids so that (a,b)
// and (b,a) map to the same unique key.
func ConversationPairKey(a, b uint) string {
	if b < a {
		a, b = b, a
	}
	return fmt.Sprintf("%d:%d", a, b)
}
