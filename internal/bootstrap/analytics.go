package bootstrap

import (
	"stratigo-site/internal/config"
	"stratigo-site/internal/pkg/logger"
	"stratigo-site/pkg/analytics"
	pktNats "stratigo-site/pkg/nats"
)

// newDownstreamSink picks where forwarded hits end up. A nil result leaves
// analytics uninitialized and the observer becomes a no-op.
func newDownstreamSink(cfg config.AnalyticsConfig, natsPub *pktNats.Publisher, analyticsLog, sysLog logger.ILogger) analytics.Sink {
	switch cfg.Sink {
	case "measurement":
		if cfg.MeasurementID == "" || cfg.MeasurementID == analytics.PlaceholderMeasurementID || cfg.APISecret == "" {
			sysLog.Warn("BOOTSTRAP", "Measurement sink needs GA_MEASUREMENT_ID and GA_API_SECRET, analytics disabled", nil)
			return nil
		}
		return analytics.NewMeasurementSink(analytics.MeasurementConfig{
			MeasurementID: cfg.MeasurementID,
			APISecret:     cfg.APISecret,
			RatePerSecond: cfg.RatePerSecond,
		})
	case "nats":
		if natsPub == nil {
			sysLog.Warn("BOOTSTRAP", "NATS sink selected without a NATS connection, falling back to log sink", nil)
			return analytics.NewLogSink(analyticsLog)
		}
		return analytics.NewPublisherSink(natsPub)
	case "log":
		return analytics.NewLogSink(analyticsLog)
	case "none", "":
		return nil
	default:
		sysLog.Warn("BOOTSTRAP", "Unknown analytics sink, analytics disabled", map[string]interface{}{"sink": cfg.Sink})
		return nil
	}
}
