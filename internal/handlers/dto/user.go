package dto

import (
	"time"
)

// CreateUserRequest mirrors the nested body the web client posts:
// {"user": {"username": "...", "avatar_url": "..."}}.
type CreateUserRequest struct {
	User UserPayload `json:"user"`
}

type UserPayload struct {
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
}

type UserInfo struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
