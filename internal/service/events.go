package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Skotchmaster/restaurant/pkg/events"
	"github.com/Skotchmaster/restaurant/pkg/logging"
	"github.com/Skotchmaster/restaurant/pkg/metrics"
)

const publishTimeout = 5 * time.Second

type Notifier struct {
	Events  events.Publisher
	Metrics *metrics.Metrics
}

// publish runs after the write has committed. A failed publish is logged and
// counted, never returned.
func (n Notifier) publish(ctx context.Context, topic string, key any, event map[string]any) {
	if n.Events == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := n.Events.Publish(ctx, topic, fmt.Sprint(key), event); err != nil {
		logging.FromContext(ctx).Error("event_publish_failed",
			slog.String("topic", topic),
			slog.Any("type", event["type"]),
			slog.Any("error", err),
		)
		n.Metrics.EventFailed(topic)
	}
}
