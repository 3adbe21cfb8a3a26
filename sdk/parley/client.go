// Package parley is the Go client for the Parley helpdesk API. It wraps
// the HTTP surface with typed methods and, together with sdk/live,
// maintains server-synchronized collections over the change stream.
package parley

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
)

// APIError is a non-2xx response decoded from the server envelope.
type APIError struct {
	Status  int
	Type    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("parley: %s (%s, status %d)", e.Message, e.Type, e.Status)
}

// Config configures a Client.
type Config struct {
	// BaseURL is the server root, e.g. "https://support.example.com".
	BaseURL string
	// Token is the bearer token sent on every request.
	Token string
	// HTTPClient overrides the default client. Optional.
	HTTPClient *http.Client
	// SessionRetryDelay is the pause between Session attempts.
	SessionRetryDelay time.Duration
}

const defaultSessionRetryDelay = time.Second

// Client talks to one Parley server on behalf of one user.
type Client struct {
	baseURL           string
	token             string
	httpClient        *http.Client
	sessionRetryDelay time.Duration
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("parley: BaseURL is required")
	}
	if cfg.Token == "" {
		return nil, fmt.Errorf("parley: Token is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	retryDelay := cfg.SessionRetryDelay
	if retryDelay <= 0 {
		retryDelay = defaultSessionRetryDelay
	}

	return &Client{
		baseURL:           strings.TrimRight(cfg.BaseURL, "/"),
		token:             cfg.Token,
		httpClient:        httpClient,
		sessionRetryDelay: retryDelay,
	}, nil
}

// Session fetches the caller's identity. Transient failures are retried
// up to three attempts with a fixed delay so a freshly started client
// survives a server that is still coming up.
func (c *Client) Session(ctx context.Context) (Session, error) {
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return Session{}, ctx.Err()
			case <-time.After(c.sessionRetryDelay):
			}
		}

		var session Session
		lastErr = c.do(ctx, http.MethodGet, "/me", nil, &session)
		if lastErr == nil {
			return session, nil
		}

		// Rejected credentials will not improve with retries.
		var apiErr *APIError
		if errors.As(lastErr, &apiErr) && apiErr.Status < 500 {
			return Session{}, lastErr
		}
	}
	return Session{}, lastErr
}

// envelope mirrors the server's response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
		Details string `json:"details,omitempty"`
	} `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// do issues a JSON request and decodes the envelope's data into out.
// out may be nil for endpoints whose payload the caller ignores.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("parley: encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("parley: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

// doMultipart issues a multipart request built by the caller.
func (c *Client) doMultipart(ctx context.Context, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("parley: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", contentType)

	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("parley: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("parley: decode response: %w", err)
	}

	if !env.Success {
		apiErr := &APIError{Status: resp.StatusCode, Type: "error", Message: "request failed"}
		if env.Error != nil {
			apiErr.Type = env.Error.Type
			apiErr.Message = env.Error.Message
		}
		return apiErr
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("parley: decode response data: %w", err)
		}
	}
	return nil
}

func query(params map[string]string) string {
	values := url.Values{}
	for k, v := range params {
		if v != "" {
			values.Set(k, v)
		}
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}
