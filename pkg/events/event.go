package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeAnalyticsHit  = "analytics.hit"
	TypeLeadSubmitted = "leads.submitted"
)

// Event is anything published on the site event stream.
type Event interface {
	// EventID is unique per occurrence; the stream uses it to drop duplicates.
	EventID() string
	// EventType becomes the subject suffix, e.g. "leads.submitted".
	EventType() string
	Payload() map[string]interface{}
	Timestamp() time.Time
}

// Record is the concrete Event used by the site.
type Record struct {
	ID         string
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

// New stamps a fresh id. A zero at means now.
func New(eventType string, data map[string]interface{}, at time.Time) Record {
	if at.IsZero() {
		at = time.Now()
	}
	return Record{ID: uuid.NewString(), Type: eventType, Data: data, OccurredAt: at.UTC()}
}

func (r Record) EventID() string { return r.ID }
func (r Record) EventType() string { return r.Type }
func (r Record) Payload() map[string]interface{} { return r.Data }
func (r Record) Timestamp() time.Time { return r.OccurredAt }
