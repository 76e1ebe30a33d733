package sanity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
)

const DefaultAPIVersion = "2024-01-01"

var (
	ErrMissingProjectID = errors.New("sanity project id is not configured")
	// ErrNotFound is returned when a query result is null.
	ErrNotFound = errors.New("sanity document not found")
)

type Config struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	Token      string
	UseCDN     bool
	Timeout    time.Duration
	// BaseURL overrides the computed API host (tests, proxies).
	BaseURL string
}

// Client runs GROQ queries against the Sanity HTTP query API.
type Client struct {
	cfg     Config
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[[]byte]
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.ProjectID == "" {
		return nil, ErrMissingProjectID
	}
	if cfg.Dataset == "" {
		cfg.Dataset = "production"
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = DefaultAPIVersion
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}

	cb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "sanity:" + cfg.ProjectID,
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// A missing document is an answer, not an outage.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNotFound)
		},
	})

	return &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: cfg.Timeout},
		breaker: cb,
	}, nil
}

func (c *Client) ProjectID() string { return c.cfg.ProjectID }
func (c *Client) Dataset() string   { return c.cfg.Dataset }

func (c *Client) host() string {
	if c.cfg.BaseURL != "" {
		return strings.TrimRight(c.cfg.BaseURL, "/")
	}
	domain := "api.sanity.io"
	if c.cfg.UseCDN && c.cfg.Token == "" {
		domain = "apicdn.sanity.io"
	}
	return fmt.Sprintf("https://%s.%s", c.cfg.ProjectID, domain)
}

// QueryURL builds the GET url for a query and its parameters.
func (c *Client) QueryURL(query string, params map[string]interface{}) (string, error) {
	q := url.Values{}
	q.Set("query", query)
	for name, value := range params {
		encoded, err := json.Marshal(value)
		if err != nil {
			return "", fmt.Errorf("failed to encode query param %s: %w", name, err)
		}
		q.Set("$"+name, string(encoded))
	}
	return fmt.Sprintf("%s/v%s/data/query/%s?%s", c.host(), c.cfg.APIVersion, c.cfg.Dataset, q.Encode()), nil
}

type queryResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Description string `json:"description"`
		Type        string `json:"type"`
	} `json:"error,omitempty"`
}

// Fetch runs query and decodes its result into out. A null result yields ErrNotFound.
func (c *Client) Fetch(ctx context.Context, query string, params map[string]interface{}, out interface{}) error {
	raw, err := c.breaker.Execute(func() ([]byte, error) {
		return c.do(ctx, query, params)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return fmt.Errorf("sanity circuit open: %w", err)
		}
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode sanity result: %w", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, query string, params map[string]interface{}) ([]byte, error) {
	endpoint, err := c.QueryURL(query, params)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sanity request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read sanity response: %w", err)
	}

	var res queryResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("sanity returned %d with undecodable body: %w", resp.StatusCode, err)
	}
	if res.Error != nil {
		return nil, fmt.Errorf("sanity query error (%d): %s", resp.StatusCode, res.Error.Description)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("sanity returned status %d", resp.StatusCode)
	}
	if len(res.Result) == 0 || bytes.Equal(bytes.TrimSpace(res.Result), []byte("null")) {
		return nil, ErrNotFound
	}
	return res.Result, nil
}
