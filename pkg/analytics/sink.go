package analytics

import (
	"context"
	"time"
)

// Command is the first argument of a sink invocation.
type Command string

const (
	CommandEvent  Command = "event"
	CommandConfig Command = "config"
)

// PlaceholderMeasurementID is the id shipped in the site template before a
// real property is configured. Hits addressed to it are never sent.
const PlaceholderMeasurementID = "G-XXXXXXXXXX"

// Sink receives analytics invocations of the form (command, name, params).
type Sink interface {
	Send(ctx context.Context, cmd Command, name string, params map[string]interface{}) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, cmd Command, name string, params map[string]interface{}) error

func (f SinkFunc) Send(ctx context.Context, cmd Command, name string, params map[string]interface{}) error {
	return f(ctx, cmd, name, params)
}

// Hit is the serialized form of one sink invocation.
type Hit struct {
	Command    Command                `json:"command"`
	Name       string                 `json:"name"`
	Params     map[string]interface{} `json:"params"`
	ClientID   string                 `json:"client_id,omitempty"`
	OccurredAt time.Time              `json:"occurred_at"`
}

// Replay sends a previously captured hit to sink.
func Replay(ctx context.Context, sink Sink, hit Hit) error {
	if hit.ClientID != "" {
		ctx = WithClientID(ctx, hit.ClientID)
	}
	return sink.Send(ctx, hit.Command, hit.Name, hit.Params)
}

type clientIDKey struct{}

// WithClientID attaches the visitor's analytics client id to ctx.
func WithClientID(ctx context.Context, clientID string) context.Context {
	return context.WithValue(ctx, clientIDKey{}, clientID)
}

// ClientIDFrom returns the client id stored by WithClientID.
func ClientIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(clientIDKey{}).(string); ok {
		return v
	}
	return ""
}
