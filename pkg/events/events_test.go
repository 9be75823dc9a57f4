package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderKeepsOrderAndTypes(t *testing.T) {
	r := &Recorder{}
	ctx := context.Background()

	require.NoError(t, r.Publish(ctx, TopicOrder, "1", map[string]any{"type": "order_created"}))
	require.NoError(t, r.Publish(ctx, TopicMenu, "4", map[string]any{"type": "menu_item_deleted"}))
	require.NoError(t, r.Publish(ctx, TopicMenu, "5", "not a map"))

	msgs := r.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, TopicOrder, msgs[0].Topic)
	assert.Equal(t, "4", msgs[1].Key)
	assert.Equal(t, []string{"order_created", "menu_item_deleted"}, r.Types())
}

func TestRecorderReturnsConfiguredError(t *testing.T) {
	boom := errors.New("broker down")
	r := &Recorder{Err: boom}
	assert.ErrorIs(t, r.Publish(context.Background(), TopicOrder, "1", nil), boom)
	assert.Empty(t, r.Messages())
}

func TestNewKafkaPublisherNeedsBrokers(t *testing.T) {
	_, err := NewKafkaPublisher(nil)
	require.Error(t, err)

	p, err := NewKafkaPublisher([]string{"localhost:9092"})
	require.NoError(t, err)
	require.NoError(t, p.Close())
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = Nop{}
	assert.NoError(t, p.Publish(context.Background(), TopicCustomer, "1", nil))
	assert.NoError(t, p.Close())
}
