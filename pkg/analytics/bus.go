package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// DefaultTopic carries hits from the request path to the forwarder.
const DefaultTopic = "analytics.hits"

// BusSink publishes hits onto a watermill topic. A forwarder subscribed to
// the same topic delivers them to the real sink off the request path.
type BusSink struct {
	publisher message.Publisher
	topic     string
	now       func() time.Time
}

func NewBusSink(publisher message.Publisher, topic string) *BusSink {
	if topic == "" {
		topic = DefaultTopic
	}
	return &BusSink{publisher: publisher, topic: topic, now: time.Now}
}

func (s *BusSink) Send(ctx context.Context, cmd Command, name string, params map[string]interface{}) error {
	hit := Hit{
		Command:    cmd,
		Name:       name,
		Params:     params,
		ClientID:   ClientIDFrom(ctx),
		OccurredAt: s.now().UTC(),
	}
	payload, err := json.Marshal(hit)
	if err != nil {
		return fmt.Errorf("failed to marshal analytics hit: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.publisher.Publish(s.topic, msg); err != nil {
		return fmt.Errorf("failed to publish analytics hit to %s: %w", s.topic, err)
	}
	return nil
}

// DecodeHit parses a message produced by BusSink.
func DecodeHit(msg *message.Message) (Hit, error) {
	var hit Hit
	if err := json.Unmarshal(msg.Payload, &hit); err != nil {
		return Hit{}, fmt.Errorf("failed to unmarshal analytics hit: %w", err)
	}
	return hit, nil
}
