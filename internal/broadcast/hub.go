package broadcast

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type Client struct {
	ID     uuid.UUID
	Conn   *websocket.Conn
	Send   chan []byte
	Topics map[string]bool
	Hub    *Hub
	mu     sync.RWMutex
}

// Hub is the broadcast registry: topic name → set of live connections. It is
// an explicit, injectable object, not a process-wide singleton; every
// component that publishes or subscribes holds a reference.
type Hub struct {
	clients map[uuid.UUID]*Client

	// Connections per topic
	topics map[string]map[uuid.UUID]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	ctx    context.Context
	cancel context.CancelFunc
}

func NewHub() *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		clients:    make(map[uuid.UUID]*Client),
		topics:     make(map[string]map[uuid.UUID]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Run processes the connection lifecycle until Stop is called.
func (h *Hub) Run() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-h.ctx.Done():
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case <-ticker.C:
			h.ping()
		}
	}
}

func (h *Hub) Stop() {
	h.cancel()

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, client := range h.clients {
		close(client.Send)
		if client.Conn != nil {
			client.Conn.Close()
		}
	}
	h.clients = make(map[uuid.UUID]*Client)
	h.topics = make(map[string]map[uuid.UUID]*Client)
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client.ID] = client

	log.Printf("Client connected: %s", client.ID)
}

// unregisterClient drops every binding of the connection exactly once. The
// presence check makes a second disconnect of the same client a no-op, and
// closing Send under the write lock guarantees no concurrent Publish can hit
// the closed channel.
func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.ID]; !ok {
		return
	}

	client.mu.Lock()
	for topic := range client.Topics {
		h.removeFromTopicUnsafe(client, topic)
		delete(client.Topics, topic)
	}
	client.mu.Unlock()

	delete(h.clients, client.ID)
	close(client.Send)

	log.Printf("Client disconnected: %s", client.ID)
}

// Subscribe binds a connection to a topic. A connection may hold several
// simultaneous bindings; switching conversations requires an explicit
// Unsubscribe from the previous topic first.
func (h *Hub) Subscribe(client *Client, topic string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.topics[topic]; !ok {
		h.topics[topic] = make(map[uuid.UUID]*Client)
	}
	h.topics[topic][client.ID] = client

	client.mu.Lock()
	client.Topics[topic] = true
	client.mu.Unlock()
}

// Unsubscribe removes one binding.
func (h *Hub) Unsubscribe(client *Client, topic string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.removeFromTopicUnsafe(client, topic)

	client.mu.Lock()
	delete(client.Topics, topic)
	client.mu.Unlock()
}

func (h *Hub) removeFromTopicUnsafe(client *Client, topic string) {
	if subscribers, ok := h.topics[topic]; ok {
		delete(subscribers, client.ID)
		if len(subscribers) == 0 {
			delete(h.topics, topic)
		}
	}
}

// Publish delivers the payload to every connection bound to the topic at the
// moment of the call. Connections subscribing afterwards receive nothing:
// there is no replay. A connection whose queue is full is skipped rather than
// failing the publish.
func (h *Hub) Publish(topic string, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.topics[topic] {
		select {
		case client.Send <- payload:
		default:
			log.Printf("Client %s queue full, dropping event on %q", client.ID, topic)
		}
	}
}

// SubscriberCount reports how many connections are bound to a topic.
func (h *Hub) SubscriberCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.topics[topic])
}

func (h *Hub) ping() {
	h.mu.RLock()
	defer h.mu.RUnlock()

	payload, err := MarshalEvent(TypePing, "", nil)
	if err != nil {
		return
	}

	for _, client := range h.clients {
		select {
		case client.Send <- payload:
		default:
		}
	}
}
