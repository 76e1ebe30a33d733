package analytics

import (
	"context"

	"stratigo-site/internal/pkg/logger"
)

// LogSink writes hits to the log instead of a remote property. Used in
// development when no measurement id is configured.
type LogSink struct {
	logger logger.ILogger
}

func NewLogSink(log logger.ILogger) *LogSink {
	return &LogSink{logger: log}
}

func (s *LogSink) Send(ctx context.Context, cmd Command, name string, params map[string]interface{}) error {
	s.logger.Info("ANALYTICS", "hit", map[string]interface{}{
		"command":   string(cmd),
		"name":      name,
		"params":    params,
		"client_id": ClientIDFrom(ctx),
	})
	return nil
}
