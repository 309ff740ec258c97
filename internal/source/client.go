package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// API is the read-only surface of the deployment service that the tracker
// consumes. StackEvents returns the most recent events first.
type API interface {
	StackEvents(ctx context.Context, name string) ([]Event, error)
	Describe(ctx context.Context, name string) (*Stack, error)
}

// Client talks to the deployment service's REST API.
type Client struct {
	BaseURL    string
	Token      string
	Version    string
	HTTPClient *http.Client
}

// NewClient creates a Client for the given endpoint. The token may be
// empty for services that do not require authentication.
func NewClient(baseURL, token, version string) *Client {
	return &Client{
		BaseURL: baseURL,
		Token:   token,
		Version: version,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// StackEvents fetches the most recent events for the named stack,
// most-recent-first.
func (c *Client) StackEvents(ctx context.Context, name string) ([]Event, error) {
	var page struct {
		Events []Event `json:"events"`
	}
	path := "/v1/stacks/" + url.PathEscape(name) + "/events"
	if err := c.get(ctx, path, name, &page); err != nil {
		return nil, err
	}
	return page.Events, nil
}

// Describe fetches the current snapshot of the named stack.
func (c *Client) Describe(ctx context.Context, name string) (*Stack, error) {
	var stack Stack
	path := "/v1/stacks/" + url.PathEscape(name)
	if err := c.get(ctx, path, name, &stack); err != nil {
		return nil, err
	}
	return &stack, nil
}

// get performs an authenticated GET and decodes the JSON response into
// target. Connection failures, 429s and 5xx responses map to
// TransientError; 404 maps to NotFoundError.
func (c *Client) get(ctx context.Context, path, stack string, target interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	req.Header.Set("User-Agent", "stackwatch/"+c.Version)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			// Cancellation is not a transport failure; let the caller
			// see it directly so shutdown is not mistaken for a blip.
			return ctx.Err()
		}
		return &TransientError{Op: "GET " + path, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransientError{Op: "GET " + path, Err: err}
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return &NotFoundError{Stack: stack}
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return &TransientError{
			Op:  "GET " + path,
			Err: fmt.Errorf("status %d: %s", resp.StatusCode, body),
		}
	case resp.StatusCode >= 400:
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}
