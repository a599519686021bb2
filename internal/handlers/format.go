package handlers

import (
	"github.com/fbrandt/pigeon/internal/handlers/dto"
	"github.com/fbrandt/pigeon/internal/models"
)

func formatUserInfo(user models.User) dto.UserInfo {
	return dto.UserInfo{
		ID:        user.ID,
		Username:  user.Username,
		AvatarURL: user.AvatarURL,
	}
}

func formatUserResponse(user models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		AvatarURL: user.AvatarURL,
		CreatedAt: user.CreatedAt,
	}
}

func formatMessageResponse(message *models.Message) dto.MessageResponse {
	response := dto.MessageResponse{
		ID:             message.ID,
		Content:        message.Content,
		UserID:         message.UserID,
		ConversationID: message.ConversationID,
		CreatedAt:      message.CreatedAt,
	}

	if message.User != nil {
		user := formatUserInfo(*message.User)
		response.User = &user
	}

	return response
}

func formatConversationResponse(conversation *models.Conversation) dto.ConversationResponse {
	return dto.ConversationResponse{
		ID:          conversation.ID,
		SenderID:    conversation.SenderID,
		RecipientID: conversation.RecipientID,
		CreatedAt:   conversation.CreatedAt,
		Sender:      formatUserInfo(conversation.Sender),
		Recipient:   formatUserInfo(conversation.Recipient),
	}
}

func formatLastMessage(message *models.Message) *dto.LastMessage {
	if message == nil {
		return nil
	}
	return &dto.LastMessage{
		ID:        message.ID,
		Content:   message.Content,
		UserID:    message.UserID,
		CreatedAt: message.CreatedAt,
	}
}
