package analytics

import (
	"context"
	"time"

	"stratigo-site/pkg/events"
)

// EventPublisher is satisfied by the NATS publisher.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// PublisherSink turns each invocation into an events.Event on an event bus.
type PublisherSink struct {
	publisher EventPublisher
}

func NewPublisherSink(publisher EventPublisher) *PublisherSink {
	return &PublisherSink{publisher: publisher}
}

func (s *PublisherSink) Send(ctx context.Context, cmd Command, name string, params map[string]interface{}) error {
	return s.publisher.Publish(ctx, events.New(events.TypeAnalyticsHit, map[string]interface{}{
		"command":   string(cmd),
		"name":      name,
		"params":    params,
		"client_id": ClientIDFrom(ctx),
	}, time.Time{}))
}
