// Package events publishes domain events to a message broker.
package events

import (
	"context"
	"sync"
)

const (
	TopicCustomer = "customer_events"
	TopicOrder    = "order_events"
	TopicMenu     = "menu_events"
)

var Topics = []string{TopicCustomer, TopicOrder, TopicMenu}

type Publisher interface {
	Publish(ctx context.Context, topic, key string, event any) error
	Close() error
}

type Nop struct{}

func (Nop) Publish(context.Context, string, string, any) error { return nil }
func (Nop) Close() error                                        { return nil }

// Message is what Recorder keeps for every published event.
type Message struct {
	Topic string
	Key   string
	Event any
}

// Recorder keeps published events in memory. Use it in tests.
type Recorder struct {
	mu       sync.Mutex
	messages []Message
	Err      error
}

func (r *Recorder) Publish(_ context.Context, topic, key string, event any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.messages = append(r.messages, Message{Topic: topic, Key: key, Event: event})
	return nil
}

func (r *Recorder) Close() error { return nil }

func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Message, len(r.messages))
	copy(out, r.messages)
	return out
}

// Types returns the "type" field of every recorded map event, in order.
func (r *Recorder) Types() []string {
	var out []string
	for _, m := range r.Messages() {
		if ev, ok := m.Event.(map[string]any); ok {
			if t, ok := ev["type"].(string); ok {
				out = append(out, t)
			}
		}
	}
	return out
}
