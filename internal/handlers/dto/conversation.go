package dto

import (
	"time"
)

type CreateConversationRequest struct {
	SenderID    uint `json:"sender_id"`
	RecipientID uint `json:"recipient_id"`
}

type ConversationResponse struct {
	ID          uint         `json:"id"`
	SenderID    uint         `json:"sender_id"`
	RecipientID uint         `json:"recipient_id"`
	CreatedAt   time.Time    `json:"created_at"`
	Sender      UserInfo     `json:"sender"`
	Recipient   UserInfo     `json:"recipient"`
	LastMessage *LastMessage `json:"last_message,omitempty"`
}

// LastMessage is the summary attached to conversation listings; an
// invalidation hint, never the message feed itself.
type LastMessage struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	UserID    *uint     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ConversationUpdated is pushed on both participants' user topics after a
// message lands in their conversation. SenderID is the message author, so a
// client can skip the unread marker for its own sends.
type ConversationUpdated struct {
	ConversationID uint  `json:"conversation_id"`
	SenderID       *uint `json:"sender_id"`
}
