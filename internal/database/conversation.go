package database

import (
	"errors"
	"time"

	"github.com/fbrandt/pigeon/internal/models"
	"gorm.io/gorm"
)

// FindConversationBetween looks up the conversation for an unordered pair of
// users. (a,b) and (b,a) resolve to the same row. Returns nil when none
// exists.
func (d *Database) FindConversationBetween(a, b uint) (*models.Conversation, error) {
	var conversation models.Conversation

	err := d.db.
		Preload("Sender").
		Preload("Recipient").
		Where("pair_key = ?", models.ConversationPairKey(a, b)).
		First(&conversation).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &conversation, nil
}

// GetOrCreateConversation returns the existing conversation between the two
// users or creates one. Concurrent callers racing on the same pair are
// serialized by the unique index on pair_key: the loser's insert fails and
// resolves to the winner's row instead of surfacing an error.
func (d *Database) GetOrCreateConversation(senderID, recipientID uint) (*models.Conversation, error) {
	conversation, err := d.FindConversationBetween(senderID, recipientID)
	if err != nil {
		return nil, err
	}
	if conversation != nil {
		return conversation, nil
	}

	conversation = &models.Conversation{
		SenderID:    senderID,
		RecipientID: recipientID,
		PairKey:     models.ConversationPairKey(senderID, recipientID),
		CreatedAt:   time.Now(),
	}

	if createErr := d.db.Create(conversation).Error; createErr != nil {
		// Lost the race: the unique index rejected the duplicate, so the
		// winner's row must exist now.
		existing, findErr := d.FindConversationBetween(senderID, recipientID)
		if findErr == nil && existing != nil {
			return existing, nil
		}
		return nil, createErr
	}

	return d.GetConversation(conversation.ID)
}

func (d *Database) GetConversation(id uint) (*models.Conversation, error) {
	var conversation models.Conversation

	err := d.db.
		Preload("Sender").
		Preload("Recipient").
		First(&conversation, "id = ?", id).Error

	if err != nil {
		return nil, err
	}

	return &conversation, nil
}

// GetUserConversations lists the conversations the user takes part in, as
// sender or recipient, restricted to those that already contain at least one
// message.
func (d *Database) GetUserConversations(userID uint) ([]models.Conversation, error) {
	var conversations []models.Conversation

	err := d.db.
		Distinct("conversations.*").
		Joins("JOIN messages ON messages.conversation_id = conversations.id").
		Where("conversations.sender_id = ? OR conversations.recipient_id = ?", userID, userID).
		Preload("Sender").
		Preload("Recipient").
		Find(&conversations).Error

	if err != nil {
		return nil, err
	}

	return conversations, nil
}

// DeleteConversation removes a conversation and its messages in one
// transaction. Messages are owned by their conversation, so nothing survives.
func (d *Database) DeleteConversation(id uint) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Message{}, "conversation_id = ?", id).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Conversation{}, "id = ?", id).Error
	})
}
