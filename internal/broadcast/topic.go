package broadcast

import "fmt"

// GlobalRoomTopic is the single topic shared by all conversation-less
// messages.
const GlobalRoomTopic = "global-room"

// ConversationTopic derives the topic name for a conversation, falling back
// to the global room when no conversation id is given.
func ConversationTopic(conversationID *uint) string {
	if conversationID == nil {
		return GlobalRoomTopic
	}
	return fmt.Sprintf("conversation:%d", *conversationID)
}

// UserTopic derives the personal topic a user receives out-of-band
// notifications on.
func UserTopic(userID uint) string {
	return fmt.Sprintf("user:%d", userID)
}
