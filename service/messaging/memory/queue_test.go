package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Type string
}

func TestQueue(t *testing.T) {
	queue := NewQueue[record](DefaultConfig())
	ctx := context.Background()

	require.NoError(t, queue.Publish(ctx, &record{Type: "[App Component] Clear Model"}))
	require.NoError(t, queue.Publish(ctx, &record{Type: "[App Component] Export Model"}))
	assert.Equal(t, 2, queue.Size())

	message, err := queue.Consume(ctx)
	require.NoError(t, err)
	assert.Equal(t, "[App Component] Clear Model", message.T().Type)
	assert.NoError(t, message.Ack())
	assert.Error(t, message.Ack())

	message, err = queue.Consume(ctx)
	require.NoError(t, err)
	assert.Equal(t, "[App Component] Export Model", message.T().Type)
	assert.NoError(t, message.Ack())
	assert.Equal(t, 0, queue.Size())
}

func TestQueue_Nack(t *testing.T) {
	config := DefaultConfig()
	config.MaxRetries = 1
	config.RetryDelay = 5 * time.Millisecond
	queue := NewQueue[record](config)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, queue.Publish(ctx, &record{Type: "retry"}))
	message, err := queue.Consume(ctx)
	require.NoError(t, err)
	require.NoError(t, message.Nack(nil))

	message, err = queue.Consume(ctx)
	require.NoError(t, err)
	assert.Equal(t, "retry", message.T().Type)
	require.NoError(t, message.Nack(nil))
	assert.Error(t, message.Ack())
	assert.Equal(t, 1, queue.DLQSize())
}

func TestQueue_ConsumeCancelled(t *testing.T) {
	queue := NewQueue[record](DefaultConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	message, err := queue.Consume(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, message)
}
