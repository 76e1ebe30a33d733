package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const DefaultMeasurementEndpoint = "https://www.google-analytics.com/mp/collect"

type MeasurementConfig struct {
	Endpoint      string
	MeasurementID string
	APISecret     string
	// RatePerSecond caps outbound hits; zero means 10/s.
	RatePerSecond float64
	Burst         int
	Timeout       time.Duration
}

// MeasurementSink delivers hits to a GA4 property over the Measurement Protocol.
type MeasurementSink struct {
	endpoint      string
	measurementID string
	apiSecret     string
	client        *http.Client
	limiter       *rate.Limiter
}

func NewMeasurementSink(cfg MeasurementConfig) *MeasurementSink {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultMeasurementEndpoint
	}
	perSecond := cfg.RatePerSecond
	if perSecond <= 0 {
		perSecond = 10
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 20
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &MeasurementSink{
		endpoint:      endpoint,
		measurementID: cfg.MeasurementID,
		apiSecret:     cfg.APISecret,
		client:        &http.Client{Timeout: timeout},
		limiter:       rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

type mpEvent struct {
	Name   string                 `json:"name"`
	Params map[string]interface{} `json:"params,omitempty"`
}

type mpPayload struct {
	ClientID string    `json:"client_id"`
	Events   []mpEvent `json:"events"`
}

// toEvent maps a gtag-style invocation onto a Measurement Protocol event.
// A "config" call carrying page info is how gtag records a page view.
func toEvent(cmd Command, name string, params map[string]interface{}) mpEvent {
	if cmd == CommandConfig {
		return mpEvent{Name: "page_view", Params: params}
	}
	return mpEvent{Name: name, Params: params}
}

func (s *MeasurementSink) Send(ctx context.Context, cmd Command, name string, params map[string]interface{}) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("measurement rate limit: %w", err)
	}

	clientID := ClientIDFrom(ctx)
	if clientID == "" {
		clientID = uuid.NewString()
	}

	body, err := json.Marshal(mpPayload{
		ClientID: clientID,
		Events:   []mpEvent{toEvent(cmd, name, params)},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal measurement payload: %w", err)
	}

	q := url.Values{}
	q.Set("measurement_id", s.measurementID)
	q.Set("api_secret", s.apiSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint+"?"+q.Encode(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("measurement request failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("measurement endpoint returned %d", resp.StatusCode)
	}
	return nil
}
