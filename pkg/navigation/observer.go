package navigation

import (
	"context"
	"fmt"
	"strings"

	"stratigo-site/internal/pkg/logger"
	"stratigo-site/pkg/analytics"
)

// Navigation describes a completed route transition. Title is the document
// title the page set for the new route.
type Navigation struct {
	FullPath string
	Title    string
}

// Consent reports whether the current visitor allows tracking.
type Consent interface {
	IsGranted() bool
}

// Dispatcher runs a forwarding job without making the caller wait for it.
type Dispatcher func(job func())

// Observer forwards page views and events to the analytics sink when the
// visitor has consented. A nil sink means analytics is not initialized.
type Observer struct {
	sink          analytics.Sink
	measurementID string
	logger        logger.ILogger
	dispatch      Dispatcher
}

type Option func(*Observer)

// WithDispatcher replaces the default goroutine-per-hit dispatch.
func WithDispatcher(d Dispatcher) Option {
	return func(o *Observer) {
		o.dispatch = d
	}
}

func NewObserver(sink analytics.Sink, measurementID string, log logger.ILogger, opts ...Option) *Observer {
	o := &Observer{
		sink:          sink,
		measurementID: measurementID,
		logger:        log,
		dispatch:      func(job func()) { go job() },
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Available reports whether a sink was resolved at startup.
func (o *Observer) Available() bool {
	return o != nil && o.sink != nil
}

// AfterEach is called once per completed navigation.
func (o *Observer) AfterEach(ctx context.Context, consent Consent, nav Navigation) {
	params := map[string]interface{}{
		"page_path":  nav.FullPath,
		"page_title": nav.Title,
	}
	if o.hasRealMeasurementID() {
		o.forward(ctx, consent, analytics.CommandConfig, o.measurementID, params)
		return
	}
	o.forward(ctx, consent, analytics.CommandEvent, "page_view", params)
}

// TrackEvent forwards a custom event under the same consent rules.
func (o *Observer) TrackEvent(ctx context.Context, consent Consent, name string, params map[string]interface{}) {
	if params == nil {
		params = map[string]interface{}{}
	}
	o.forward(ctx, consent, analytics.CommandEvent, name, params)
}

func (o *Observer) hasRealMeasurementID() bool {
	return o.measurementID != "" && o.measurementID != analytics.PlaceholderMeasurementID
}

func (o *Observer) forward(ctx context.Context, consent Consent, cmd analytics.Command, name string, params map[string]interface{}) {
	if consent == nil || !consent.IsGranted() || !o.Available() {
		return
	}

	// The job runs after the caller has returned and its request memory may
	// already be reused, so it only sees copies.
	jobCtx := analytics.WithClientID(context.Background(), strings.Clone(analytics.ClientIDFrom(ctx)))
	name = strings.Clone(name)
	params = cloneParams(params)

	o.dispatch(func() {
		if err := o.send(jobCtx, cmd, name, params); err != nil {
			o.logger.Error("ANALYTICS", "Failed to track analytics event", map[string]interface{}{
				"command": string(cmd),
				"name":    name,
				"error":   err.Error(),
			})
		}
	})
}

// cloneParams copies the map and every string in it, nested maps and slices included.
func cloneParams(params map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(params))
	for k, v := range params {
		out[strings.Clone(k)] = cloneValue(v)
	}
	return out
}

func cloneValue(v interface{}) interface{} {
	switch t := v.(type) {
	case string:
		return strings.Clone(t)
	case map[string]interface{}:
		return cloneParams(t)
	case []interface{}:
		out := make([]interface{}, len(t))
		for i := range t {
			out[i] = cloneValue(t[i])
		}
		return out
	default:
		return v
	}
}

func (o *Observer) send(ctx context.Context, cmd analytics.Command, name string, params map[string]interface{}) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("analytics sink panic: %v", r)
		}
	}()
	return o.sink.Send(ctx, cmd, name, params)
}
