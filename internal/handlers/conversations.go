package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fbrandt/pigeon/internal/database"
	"github.com/fbrandt/pigeon/internal/handlers/dto"
)

type ConversationHandler struct {
	db *database.Database
}

func NewConversationHandler(db *database.Database) *ConversationHandler {
	return &ConversationHandler{db: db}
}

// CreateConversation returns the conversation between the two users, creating
// it on first contact. Idempotent: repeated calls, in either argument order,
// resolve to the same row.
func (h *ConversationHandler) CreateConversation(c *gin.Context) {
	var req dto.CreateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields := gin.H{}
	if req.SenderID == 0 {
		fields["sender_id"] = []string{"can't be blank"}
	}
	if req.RecipientID == 0 {
		fields["recipient_id"] = []string{"can't be blank"}
	}
	if len(fields) > 0 {
		c.JSON(http.StatusUnprocessableEntity, fields)
		return
	}

	if _, err := h.db.GetUser(req.SenderID); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"sender": []string{"must exist"}})
		return
	}
	if _, err := h.db.GetUser(req.RecipientID); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"recipient": []string{"must exist"}})
		return
	}

	conversation, err := h.db.GetOrCreateConversation(req.SenderID, req.RecipientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create conversation"})
		return
	}

	c.JSON(http.StatusOK, formatConversationResponse(conversation))
}

// ListConversations returns the conversations a user takes part in, each
// annotated with its most recent message.
func (h *ConversationHandler) ListConversations(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Query("user_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	conversations, err := h.db.GetUserConversations(uint(userID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list conversations"})
		return
	}

	result := make([]dto.ConversationResponse, len(conversations))
	for i, conversation := range conversations {
		response := formatConversationResponse(&conversation)

		last, err := h.db.LastMessage(conversation.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list conversations"})
			return
		}
		response.LastMessage = formatLastMessage(last)

		result[i] = response
	}

	c.JSON(http.StatusOK, result)
}

// GetConversation returns one conversation with both participants embedded.
func (h *ConversationHandler) GetConversation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid conversation id"})
		return
	}

	conversation, err := h.db.GetConversation(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get conversation"})
		return
	}

	c.JSON(http.StatusOK, formatConversationResponse(conversation))
}
