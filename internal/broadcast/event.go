package broadcast

import (
	"encoding/json"
	"time"
)

// EventType tags the envelopes exchanged over a connection.
type EventType string

const (
	// Client commands
	TypeSubscribe   EventType = "subscribe"
	TypeUnsubscribe EventType = "unsubscribe"

	// Keepalive
	TypePing EventType = "ping"
	TypePong EventType = "pong"

	// Server pushes
	TypeMessage             EventType = "message"
	TypeConversationUpdated EventType = "conversation_updated"
	TypeError               EventType = "error"
)

// Event is the wire envelope. Topic routes the payload on the client; Data
// carries the event-specific body.
type Event struct {
	Type      EventType       `json:"type"`
	Topic     string          `json:"topic,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// MarshalEvent encodes an envelope ready for publishing.
func MarshalEvent(eventType EventType, topic string, data interface{}) ([]byte, error) {
	event := Event{
		Type:      eventType,
		Topic:     topic,
		Timestamp: time.Now(),
	}

	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}
		event.Data = raw
	}

	return json.Marshal(event)
}

// Broadcaster delivers an encoded event to every connection subscribed to the
// topic at the moment of the call. Best-effort: there is no replay and no
// per-connection retry.
type Broadcaster interface {
	Publish(topic string, payload []byte)
}
