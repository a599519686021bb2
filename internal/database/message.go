package database

import (
	"errors"
	"strings"
	"time"

	"github.com/fbrandt/pigeon/internal/models"
	"gorm.io/gorm"
)

// CreateMessage persists a message. Blank content is rejected before any row
// is written so a failed create can never trigger a broadcast.
func (d *Database) CreateMessage(message *models.Message) error {
	if strings.TrimSpace(message.Content) == "" {
		return ErrEmptyContent
	}

	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}

	return d.db.Create(message).Error
}

func (d *Database) GetMessage(id uint) (*models.Message, error) {
	var message models.Message
	if err := d.db.Preload("User").First(&message, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

// ListMessages returns messages ascending by creation time, insertion order
// breaking ties. A nil conversationID selects the global room only, never a
// mix of rooms.
func (d *Database) ListMessages(conversationID *uint) ([]models.Message, error) {
	var messages []models.Message

	query := d.db.Preload("User")
	if conversationID != nil {
		query = query.Where("conversation_id = ?", *conversationID)
	} else {
		query = query.Where("conversation_id IS NULL")
	}

	err := query.
		Order("created_at ASC, id ASC").
		Find(&messages).Error

	if err != nil {
		return nil, err
	}

	return messages, nil
}

// LastMessage returns the most recent message of a conversation, or nil when
// it has none.
func (d *Database) LastMessage(conversationID uint) (*models.Message, error) {
	var message models.Message

	err := d.db.
		Where("conversation_id = ?", conversationID).
		Order("created_at DESC, id DESC").
		First(&message).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &message, nil
}
