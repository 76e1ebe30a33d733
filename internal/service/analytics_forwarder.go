package service

import (
	"context"
	"time"

	"stratigo-site/internal/pkg/logger"
	"stratigo-site/pkg/analytics"

	"github.com/ThreeDotsLabs/watermill/message"
)

const forwardTimeout = 10 * time.Second

type IAnalyticsForwarder interface {
	Consume(ctx context.Context) error
}

// analyticsForwarder drains the in-process hit topic into the downstream
// sink (Measurement Protocol, NATS or the analytics log).
type analyticsForwarder struct {
	subscriber message.Subscriber
	topic      string
	sink       analytics.Sink
	logger     logger.ILogger
}

func NewAnalyticsForwarder(subscriber message.Subscriber, topic string, sink analytics.Sink, log logger.ILogger) IAnalyticsForwarder {
	if topic == "" {
		topic = analytics.DefaultTopic
	}
	return &analyticsForwarder{subscriber: subscriber, topic: topic, sink: sink, logger: log}
}

func (f *analyticsForwarder) Consume(ctx context.Context) error {
	messages, err := f.subscriber.Subscribe(ctx, f.topic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			f.processMessage(ctx, msg)
		}
	}()

	return nil
}

// processMessage always acks. Analytics delivery is best effort and a
// redelivered page view is worse than a lost one.
func (f *analyticsForwarder) processMessage(ctx context.Context, msg *message.Message) {
	defer msg.Ack()

	hit, err := analytics.DecodeHit(msg)
	if err != nil {
		f.logger.Warn("ANALYTICS", "Dropping malformed hit", map[string]interface{}{"message_id": msg.UUID, "error": err.Error()})
		return
	}

	sendCtx, cancel := context.WithTimeout(ctx, forwardTimeout)
	defer cancel()

	if err := analytics.Replay(sendCtx, f.sink, hit); err != nil {
		f.logger.Warn("ANALYTICS", "Failed to forward hit", map[string]interface{}{
			"command": string(hit.Command),
			"name":    hit.Name,
			"error":   err.Error(),
		})
		return
	}

	f.logger.Debug("ANALYTICS", "Hit forwarded", map[string]interface{}{"command": string(hit.Command), "name": hit.Name})
}
