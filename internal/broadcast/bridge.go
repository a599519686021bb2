package broadcast

import (
	"context"
	"encoding/json"
	"log"

	"github.com/go-redis/redis/v8"
)

const bridgeChannel = "pigeon:broadcast"

// RedisBridge relays publishes through a redis channel so that several server
// processes share one topic space. Every process republishes locally what it
// receives from redis, including its own publishes, which keeps single-topic
// FIFO intact across instances.
type RedisBridge struct {
	rdb *redis.Client
	hub *Hub

	ctx    context.Context
	cancel context.CancelFunc
}

type bridgeEnvelope struct {
	Topic   string          `json:"topic"`
	Payload json.RawMessage `json:"payload"`
}

func NewRedisBridge(rdb *redis.Client, hub *Hub) *RedisBridge {
	ctx, cancel := context.WithCancel(context.Background())
	return &RedisBridge{
		rdb:    rdb,
		hub:    hub,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Publish routes the event through redis instead of the local hub. Local
// delivery happens when the relay loop reads it back.
func (b *RedisBridge) Publish(topic string, payload []byte) {
	data, err := json.Marshal(bridgeEnvelope{Topic: topic, Payload: payload})
	if err != nil {
		log.Printf("Bridge encode failed for topic %q: %v", topic, err)
		return
	}

	if err := b.rdb.Publish(b.ctx, bridgeChannel, data).Err(); err != nil {
		log.Printf("Bridge publish failed for topic %q: %v", topic, err)
	}
}

// Run consumes the redis channel and fans incoming events out to the local
// hub until Stop is called.
func (b *RedisBridge) Run() {
	pubsub := b.rdb.Subscribe(b.ctx, bridgeChannel)
	defer pubsub.Close()

	for {
		select {
		case <-b.ctx.Done():
			return

		case msg, ok := <-pubsub.Channel():
			if !ok {
				return
			}

			var envelope bridgeEnvelope
			if err := json.Unmarshal([]byte(msg.Payload), &envelope); err != nil {
				log.Printf("Bridge decode failed: %v", err)
				continue
			}

			b.hub.Publish(envelope.Topic, envelope.Payload)
		}
	}
}

func (b *RedisBridge) Stop() {
	b.cancel()
}
