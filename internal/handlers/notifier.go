package handlers

import (
	"log"

	"github.com/fbrandt/pigeon/internal/broadcast"
	"github.com/fbrandt/pigeon/internal/handlers/dto"
	"github.com/fbrandt/pigeon/internal/models"
)

// Notifier turns a freshly persisted message into its broadcast fan-out: the
// message itself on the conversation (or global-room) topic, and one
// conversation_updated invalidation event on each participant's user topic.
type Notifier struct {
	broadcaster broadcast.Broadcaster
}

func NewNotifier(broadcaster broadcast.Broadcaster) *Notifier {
	return &Notifier{broadcaster: broadcaster}
}

// MessageCreated publishes the delivery cycle for one message. The message is
// already durable at this point; delivery failures are per-connection and
// never propagate back to the create. conversation is nil for global-room
// sends, which derive no per-user notification.
func (n *Notifier) MessageCreated(message dto.MessageResponse, conversation *models.Conversation) {
	topic := broadcast.ConversationTopic(message.ConversationID)

	payload, err := broadcast.MarshalEvent(broadcast.TypeMessage, topic, message)
	if err != nil {
		log.Printf("Failed to encode message event: %v", err)
		return
	}
	n.broadcaster.Publish(topic, payload)

	if conversation == nil {
		return
	}

	update := dto.ConversationUpdated{
		ConversationID: conversation.ID,
		SenderID:       message.UserID,
	}

	// Both participants, sender included, so every open tab of either user
	// refreshes its conversation summary.
	for _, userID := range []uint{conversation.SenderID, conversation.RecipientID} {
		userTopic := broadcast.UserTopic(userID)

		payload, err := broadcast.MarshalEvent(broadcast.TypeConversationUpdated, userTopic, update)
		if err != nil {
			log.Printf("Failed to encode conversation_updated event: %v", err)
			return
		}
		n.broadcaster.Publish(userTopic, payload)
	}
}
