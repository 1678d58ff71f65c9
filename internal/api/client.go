// file: internal/api/client.go
// version: 1.2.0
// guid: 5c6d7e8f-9a0b-1c2d-3e4f-5a6b7c8d9e0f

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	ulid "github.com/oklog/ulid/v2"
)

// basePath is prepended to every endpoint path.
const basePath = "/api"

// tokenHeader is the custom header carrying the auth token.
const tokenHeader = "x-access-token"

// Client talks to the library backend REST API. It holds no collection
// state; callers own what they do with the responses.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient creates a backend API client for the given server URL.
func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// SetToken attaches an auth token to all subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the currently held auth token, empty when logged out.
func (c *Client) Token() string {
	return c.token
}

// Call performs one JSON request against the backend. body is marshaled
// when non-nil; a 2xx response is decoded into out when out is non-nil.
// Non-2xx responses become *APIError, transport failures *NetworkError.
func (c *Client) Call(ctx context.Context, method, path string, body, out interface{}) error {
	url := c.baseURL + basePath + path

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", ulid.Make().String())
	if c.token != "" {
		req.Header.Set(tokenHeader, c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// download performs a raw GET and streams the body to w, used for the
// CSV export and template endpoints whose bodies are not JSON.
func (c *Client) download(ctx context.Context, path string, w io.Writer) (int64, error) {
	url := c.baseURL + basePath + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("X-Request-ID", ulid.Make().String())
	if c.token != "" {
		req.Header.Set(tokenHeader, c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, &NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, decodeError(resp)
	}

	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return n, fmt.Errorf("failed to read download: %w", err)
	}
	return n, nil
}

// decodeError turns a non-2xx response into an *APIError carrying the
// server's error field when the body is parseable.
func decodeError(resp *http.Response) error {
	apiErr := &APIError{
		Status:  resp.StatusCode,
		Message: fmt.Sprintf("HTTP error %d", resp.StatusCode),
	}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		apiErr.Message = body.Error
	}
	return apiErr
}
