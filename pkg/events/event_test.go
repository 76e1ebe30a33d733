package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	at := time.Date(2026, 1, 5, 10, 0, 0, 0, time.FixedZone("WIB", 7*3600))
	a := New(TypeLeadSubmitted, map[string]interface{}{"lead_id": "x"}, at)
	b := New(TypeLeadSubmitted, nil, at)

	assert.NotEmpty(t, a.EventID())
	assert.NotEqual(t, a.EventID(), b.EventID())
	assert.Equal(t, "leads.submitted", a.EventType())
	assert.Equal(t, "x", a.Payload()["lead_id"])
	assert.Equal(t, time.UTC, a.Timestamp().Location())
	assert.True(t, a.Timestamp().Equal(at))
}

func TestNewDefaultsToNow(t *testing.T) {
	before := time.Now()
	r := New(TypeAnalyticsHit, nil, time.Time{})
	assert.False(t, r.Timestamp().Before(before.UTC().Add(-time.Second)))
}
