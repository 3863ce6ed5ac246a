package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-hclog"
)

// DefaultTimeout bounds each HTTP call made by the default transport.
const DefaultTimeout = 30 * time.Second

// Client is the HTTP endpoint invoker. It holds transport and logging only;
// the session is an argument to every call.
type Client struct {
	httpClient *http.Client
	logger     hclog.Logger
}

// NewClient creates a new endpoint invoker. A nil httpClient gets a fresh
// client with DefaultTimeout; a nil logger is replaced with a no-op logger.
func NewClient(httpClient *http.Client, logger hclog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: DefaultTimeout,
		}
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Client{
		httpClient: httpClient,
		logger:     logger,
	}
}

// HTTPClient returns the underlying HTTP client.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// contentTypeFor maps the HTTP verb to the request content type. Work item
// writes travel as JSON Patch documents; every other payload is plain JSON.
func contentTypeFor(method string) string {
	if method == http.MethodPatch {
		return "application/json-patch+json"
	}
	return "application/json"
}

// omitsBody reports whether the verb never carries a request body.
func omitsBody(method string) bool {
	return method == http.MethodGet || method == http.MethodDelete
}

// Do performs exactly one HTTP call for r against the session's endpoint and
// returns the decoded JSON payload, or nil for an empty response body.
//
// Failures split by layer: a *NetworkError wraps connection-level problems
// raised before any response arrived, while any response with status 400 or
// above becomes a *APIError with the service's error envelope parsed and the
// raw body preserved. Do never retries.
func (c *Client) Do(ctx context.Context, s Session, r Request) (map[string]any, error) {
	method := r.Method
	if method == "" {
		method = http.MethodGet
	}

	uri := BuildURI(s, r)

	var bodyReader io.Reader
	if r.Body != nil && !omitsBody(method) {
		data, err := json.Marshal(r.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, uri, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", BasicAuth(s.User, s.Token))
	req.Header.Set("Content-Type", contentTypeFor(method))
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("invoking endpoint", "method", method, "url", uri)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err, URL: uri}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err, URL: uri}
	}

	c.logger.Debug("endpoint responded",
		"method", method, "url", uri, "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode >= 400 {
		return nil, parseErrorResponse(resp.StatusCode, body)
	}

	if len(body) == 0 {
		return nil, nil
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return payload, nil
}

func parseErrorResponse(statusCode int, body []byte) error {
	var errResp struct {
		Message string `json:"message"`
		TypeKey string `json:"typeKey"`
	}

	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return &APIError{
			StatusCode: statusCode,
			Message:    errResp.Message,
			TypeKey:    errResp.TypeKey,
			Body:       body,
		}
	}

	return &APIError{
		StatusCode: statusCode,
		Message:    string(body),
		Body:       body,
	}
}
