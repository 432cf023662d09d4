package mq

import (
	"context"
	"encoding/json"
	"log"

	"fairway/rdx"
)

const configChannel = "config-events"

// ConfigEvent announces that one client's config document changed.
type ConfigEvent struct {
	ClientID string `json:"client_id"`
	Field    string `json:"field"`
	Method   string `json:"method"`
}

// Emit publishes a config-change event to Redis so every running instance
// can re-deliver fresh snapshots to its subscribers.
func Emit(ctx context.Context, event ConfigEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event: %v", err)
		return
	}

	if err := rdx.Conn.Publish(ctx, configChannel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish event to Redis: %v", err)
	}
}

// Subscribe listens for config-change events and hands each one to fn.
// Blocks; run in a goroutine.
func Subscribe(ctx context.Context, fn func(ConfigEvent)) {
	sub := rdx.Conn.Subscribe(ctx, configChannel)
	ch := sub.Channel()

	for msg := range ch {
		var event ConfigEvent
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[ConfigEvents] Failed to parse event: %v", err)
			continue
		}
		fn(event)
	}
}
