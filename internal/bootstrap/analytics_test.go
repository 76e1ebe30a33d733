package bootstrap

import (
	"testing"

	"stratigo-site/internal/config"
	"stratigo-site/internal/pkg/logger"
	"stratigo-site/pkg/analytics"

	"github.com/stretchr/testify/assert"
)

func TestNewDownstreamSink(t *testing.T) {
	nop := logger.NewNopLogger()

	cases := []struct {
		name string
		cfg  config.AnalyticsConfig
		want interface{}
	}{
		{"log", config.AnalyticsConfig{Sink: "log"}, &analytics.LogSink{}},
		{"none", config.AnalyticsConfig{Sink: "none"}, nil},
		{"unknown", config.AnalyticsConfig{Sink: "kafka"}, nil},
		{"measurement without secret", config.AnalyticsConfig{Sink: "measurement", MeasurementID: "G-ABC"}, nil},
		{"measurement placeholder", config.AnalyticsConfig{Sink: "measurement", MeasurementID: analytics.PlaceholderMeasurementID, APISecret: "s"}, nil},
		{"measurement", config.AnalyticsConfig{Sink: "measurement", MeasurementID: "G-ABC", APISecret: "s"}, &analytics.MeasurementSink{}},
		{"nats without connection", config.AnalyticsConfig{Sink: "nats"}, &analytics.LogSink{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sink := newDownstreamSink(tc.cfg, nil, nop, nop)
			if tc.want == nil {
				assert.Nil(t, sink)
				return
			}
			assert.IsType(t, tc.want, sink)
		})
	}
}
