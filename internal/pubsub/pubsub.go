// Package pubsub is the in-process bus carrying the diagnostics channel.
package pubsub

import (
	"context"
)

// Message travels on the bus. The bridge reserves the "topic" and
// "request_id" metadata keys.
type Message struct {
	Topic     string
	RequestID string
	Payload   []byte
	Metadata  map[string]string
}

// Meta returns the metadata value for key, or "" when unset.
func (m Message) Meta(key string) string {
	return m.Metadata[key]
}

// Handler processes one delivered message. A returned error is logged and
// the message is dropped.
type Handler func(ctx context.Context, msg Message) error

type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

type Subscriber interface {
	// Subscribe returns once the subscription is live; handler then runs on
	// a background goroutine until ctx ends or the bus closes.
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}

// Bus is both ends of one channel.
type Bus interface {
	Publisher
	Subscriber
}

var _ Bus = (*WatermillBridge)(nil)
