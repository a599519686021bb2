package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fbrandt/pigeon/internal/database"
	"github.com/fbrandt/pigeon/internal/handlers/dto"
	"github.com/fbrandt/pigeon/internal/models"
)

type MessageHandler struct {
	db       *database.Database
	notifier *Notifier
}

func NewMessageHandler(db *database.Database, notifier *Notifier) *MessageHandler {
	return &MessageHandler{db: db, notifier: notifier}
}

// conversationIDParam resolves the optional :id route segment. Absent means
// the global room.
func conversationIDParam(c *gin.Context) (*uint, bool) {
	raw := c.Param("id")
	if raw == "" {
		return nil, true
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, false
	}

	value := uint(id)
	return &value, true
}

// ListMessages returns the message log, ascending by creation time. Mounted
// both at /messages (global room) and /conversations/:id/messages.
func (h *MessageHandler) ListMessages(c *gin.Context) {
	conversationID, ok := conversationIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid conversation id"})
		return
	}

	messages, err := h.db.ListMessages(conversationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list messages"})
		return
	}

	result := make([]dto.MessageResponse, len(messages))
	for i := range messages {
		result[i] = formatMessageResponse(&messages[i])
	}

	c.JSON(http.StatusOK, result)
}

// CreateMessage persists a message and then runs exactly one publish cycle:
// the message on its conversation (or global-room) topic, plus the
// conversation_updated fan-out. Persistence strictly precedes the broadcast,
// so a subscriber observing the event can always re-read the stored row.
func (h *MessageHandler) CreateMessage(c *gin.Context) {
	conversationID, ok := conversationIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid conversation id"})
		return
	}

	var conversation *models.Conversation
	if conversationID != nil {
		var err error
		conversation, err = h.db.GetConversation(*conversationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get conversation"})
			return
		}
	}

	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Message.UserID != nil {
		if _, err := h.db.GetUser(*req.Message.UserID); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"user": []string{"must exist"}})
			return
		}
	}

	message := &models.Message{
		Content:        req.Message.Content,
		UserID:         req.Message.UserID,
		ConversationID: conversationID,
	}

	if err := h.db.CreateMessage(message); err != nil {
		if errors.Is(err, database.ErrEmptyContent) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"content": []string{"can't be blank"}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save message"})
		return
	}

	// Reload with the sender summary attached
	stored, err := h.db.GetMessage(message.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save message"})
		return
	}

	response := formatMessageResponse(stored)
	h.notifier.MessageCreated(response, conversation)

	c.JSON(http.StatusCreated, response)
}
