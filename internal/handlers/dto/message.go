package dto

import (
	"time"
)

// SendMessageRequest mirrors the nested body the web client posts:
// {"message": {"content": "...", "user_id": 1}}.
type SendMessageRequest struct {
	Message MessagePayload `json:"message"`
}

type MessagePayload struct {
	Content string `json:"content"`
	UserID  *uint  `json:"user_id"`
}

// MessageResponse is both the REST response and the payload pushed on the
// conversation topic. User is the sender summary, null for anonymous sends.
type MessageResponse struct {
	ID             uint      `json:"id"`
	Content        string    `json:"content"`
	UserID         *uint     `json:"user_id"`
	ConversationID *uint     `json:"conversation_id"`
	CreatedAt      time.Time `json:"created_at"`
	User           *UserInfo `json:"user"`
}
