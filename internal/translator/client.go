package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// ErrNotConfigured is returned when the provider URL or key is missing.
var ErrNotConfigured = errors.New("translation provider not configured")

// ProviderError carries details about a failed provider call. Every request
// goes straight to the provider; there is no caching or retry here, callers
// decide how to handle repeated failures.
type ProviderError struct {
	Op         string
	StatusCode int
	Details    string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("translation %s failed with status %d: %s", e.Op, e.StatusCode, e.Details)
	}
	return fmt.Sprintf("translation %s failed: %s", e.Op, e.Details)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Config holds the translation provider connection settings
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Enabled reports whether the provider can be called at all
func (c Config) Enabled() bool {
	return c.BaseURL != ""
}

// Client is a thin adapter over an HTTP translation provider
type Client struct {
	httpClient *http.Client
	config     Config
	logger     *slog.Logger
}

// NewClient creates a translation client
func NewClient(config Config, logger *slog.Logger) *Client {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		config:     config,
		logger:     logger,
	}
}

type translateRequest struct {
	Text   string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	APIKey string `json:"api_key,omitempty"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

// Translate sends one text to the provider and returns the translation.
// An empty source asks the provider to detect the language.
func (c *Client) Translate(ctx context.Context, text, source, target string) (string, error) {
	if !c.config.Enabled() {
		return "", ErrNotConfigured
	}

	if source == "" {
		source = "auto"
	}

	body, err := json.Marshal(translateRequest{
		Text:   text,
		Source: source,
		Target: target,
		APIKey: c.config.APIKey,
	})
	if err != nil {
		return "", &ProviderError{Op: "translate", Details: "failed to encode request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/translate", bytes.NewReader(body))
	if err != nil {
		return "", &ProviderError{Op: "translate", Details: "failed to build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &ProviderError{Op: "translate", Details: "provider unreachable", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", &ProviderError{
			Op:         "translate",
			StatusCode: resp.StatusCode,
			Details:    string(detail),
		}
	}

	var parsed translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", &ProviderError{Op: "translate", Details: "malformed provider response", Err: err}
	}

	if parsed.TranslatedText == "" {
		return "", &ProviderError{Op: "translate", Details: "provider returned empty translation"}
	}

	c.logger.DebugContext(ctx, "Text translated",
		"source", source,
		"target", target,
		"chars", len(text))

	return parsed.TranslatedText, nil
}
