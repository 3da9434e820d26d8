package pubsub

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerpos/ledgerpos/internal/shared/logger"
)

func TestBroker_PublishFansOut(t *testing.T) {
	b := NewBroker(logger.NewNopLogger())
	first, cancelFirst := b.Subscribe(4)
	defer cancelFirst()
	second, cancelSecond := b.Subscribe(4)
	defer cancelSecond()

	delivered := b.Publish(EventStatus, map[string]string{"status": "syncing"})
	assert.Equal(t, 2, delivered)

	for _, ch := range []<-chan Event{first, second} {
		ev := <-ch
		assert.Equal(t, EventStatus, ev.Type)
		assert.NotZero(t, ev.Timestamp)
	}
}

func TestBroker_SlowSubscriberDoesNotBlock(t *testing.T) {
	b := NewBroker(logger.NewNopLogger())
	ch, cancel := b.Subscribe(1)
	defer cancel()

	assert.Equal(t, 1, b.Publish(EventMode, "offline"))
	assert.Equal(t, 0, b.Publish(EventMode, "online"))

	ev := <-ch
	assert.Equal(t, "offline", ev.Data)
}

func TestBroker_CancelClosesChannel(t *testing.T) {
	b := NewBroker(logger.NewNopLogger())
	ch, cancel := b.Subscribe(0)
	require.Equal(t, 1, b.SubscriberCount())

	cancel()
	cancel()

	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, b.SubscriberCount())
	assert.Equal(t, 0, b.Publish(EventMode, "online"))
}

func TestNavigator(t *testing.T) {
	b := NewBroker(logger.NewNopLogger())
	nav := NewNavigator(b)

	err := nav.Navigate(context.Background(), "/settings/subscription")
	assert.ErrorIs(t, err, ErrNoSubscribers)

	ch, cancel := b.Subscribe(1)
	defer cancel()
	require.NoError(t, nav.Navigate(context.Background(), "/settings/subscription"))

	ev := <-ch
	assert.Equal(t, EventNavigate, ev.Type)
	assert.Equal(t, map[string]string{"destination": "/settings/subscription"}, ev.Data)
}
