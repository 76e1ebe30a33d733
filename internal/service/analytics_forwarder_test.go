package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"stratigo-site/internal/pkg/logger"
	"stratigo-site/pkg/analytics"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hitRecorder struct {
	mu       sync.Mutex
	hits     []analytics.Hit
	received chan struct{}
	err      error
}

func (r *hitRecorder) Send(ctx context.Context, cmd analytics.Command, name string, params map[string]interface{}) error {
	r.mu.Lock()
	r.hits = append(r.hits, analytics.Hit{Command: cmd, Name: name, Params: params, ClientID: analytics.ClientIDFrom(ctx)})
	r.mu.Unlock()
	r.received <- struct{}{}
	return r.err
}

func waitFor(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for hit")
	}
}

func TestForwarderReplaysHits(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	rec := &hitRecorder{received: make(chan struct{}, 4)}
	fwd := NewAnalyticsForwarder(pubSub, "", rec, logger.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, fwd.Consume(ctx))

	sink := analytics.NewBusSink(pubSub, "")
	require.NoError(t, sink.Send(analytics.WithClientID(ctx, "cid-1"), analytics.CommandConfig, "G-ABC123", map[string]interface{}{"page_path": "/blog"}))
	waitFor(t, rec.received)

	rec.mu.Lock()
	defer rec.mu.Unlock()
	require.Len(t, rec.hits, 1)
	assert.Equal(t, analytics.CommandConfig, rec.hits[0].Command)
	assert.Equal(t, "/blog", rec.hits[0].Params["page_path"])
	assert.Equal(t, "cid-1", rec.hits[0].ClientID)
}

func TestForwarderSurvivesBadMessagesAndSinkErrors(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	rec := &hitRecorder{received: make(chan struct{}, 4), err: errors.New("upstream 500")}
	fwd := NewAnalyticsForwarder(pubSub, analytics.DefaultTopic, rec, logger.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, fwd.Consume(ctx))

	require.NoError(t, pubSub.Publish(analytics.DefaultTopic, message.NewMessage(watermill.NewUUID(), []byte("{not json"))))

	sink := analytics.NewBusSink(pubSub, "")
	require.NoError(t, sink.Send(ctx, analytics.CommandEvent, "page_view", nil))
	require.NoError(t, sink.Send(ctx, analytics.CommandEvent, "page_view", nil))
	waitFor(t, rec.received)
	waitFor(t, rec.received)
}
