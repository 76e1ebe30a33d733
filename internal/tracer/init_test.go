package tracer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettingsFromEnv(t *testing.T) {
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_SAMPLE_RATIO", "0.25")

	s := SettingsFromEnv("production")
	assert.True(t, s.Enabled)
	assert.Equal(t, "localhost:4318", s.Endpoint)
	assert.Equal(t, 0.25, s.SampleRatio)

	t.Setenv("OTEL_SAMPLE_RATIO", "7")
	assert.Equal(t, 1.0, SettingsFromEnv("production").SampleRatio)
}

func TestDisabledTracerIsNoop(t *testing.T) {
	shutdown := InitTracer(Settings{})
	assert.NoError(t, shutdown(context.Background()))

	_, span := Start(context.Background(), "test")
	span.End()
}
