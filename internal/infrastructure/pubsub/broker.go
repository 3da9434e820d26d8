// Package pubsub fans agent state changes out to connected UI streams.
package pubsub

import (
	"context"
	"errors"
	"sync"

	"github.com/ledgerpos/ledgerpos/internal/shared/biztime"
	"github.com/ledgerpos/ledgerpos/internal/shared/logger"
)

// EventType names what changed.
type EventType string

const (
	EventMode     EventType = "mode"
	EventStatus   EventType = "status"
	EventUpgrade  EventType = "upgrade"
	EventNavigate EventType = "navigate"
)

// Event is one message on a UI stream.
type Event struct {
	Type      EventType `json:"type"`
	Data      any       `json:"data"`
	Timestamp int64     `json:"timestamp"`
}

var ErrNoSubscribers = errors.New("no UI stream is connected")

const defaultBuffer = 16

// Broker delivers events to every subscriber without blocking the publisher.
// A subscriber whose buffer is full misses the event; each stream starts with
// a fresh snapshot, so a reconnect recovers.
type Broker struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[uint64]chan Event
	logger logger.Interface
}

func NewBroker(logger logger.Interface) *Broker {
	return &Broker{
		subs:   make(map[uint64]chan Event),
		logger: logger,
	}
}

// Subscribe registers a stream. The returned cancel closes the channel.
func (b *Broker) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	ch := make(chan Event, buffer)

	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs[id] = ch
	b.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
			close(ch)
		})
	}
}

// Publish returns how many subscribers received the event.
func (b *Broker) Publish(eventType EventType, data any) int {
	event := Event{Type: eventType, Data: data, Timestamp: biztime.NowUTC().UnixMilli()}

	b.mu.RLock()
	defer b.mu.RUnlock()

	delivered := 0
	for id, ch := range b.subs {
		select {
		case ch <- event:
			delivered++
		default:
			b.logger.Warnw("dropping event for slow subscriber", "subscriber", id, "type", eventType)
		}
	}
	return delivered
}

func (b *Broker) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Navigator asks connected UIs to move to another screen.
type Navigator struct {
	broker *Broker
}

func NewNavigator(broker *Broker) *Navigator {
	return &Navigator{broker: broker}
}

func (n *Navigator) Navigate(ctx context.Context, destination string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if n.broker.Publish(EventNavigate, map[string]string{"destination": destination}) == 0 {
		return ErrNoSubscribers
	}
	return nil
}
