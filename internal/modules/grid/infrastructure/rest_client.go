package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"gridgate/internal/modules/grid/application/port"
)

// errorBodyLimit caps how much of an upstream error body is kept for diagnostics.
const errorBodyLimit = 8 << 10

// RESTClient wraps http.Client to avoid duplicating request boilerplate in
// adapters: context propagation, query encoding, JSON decode, and uniform
// error reporting for non-2xx responses. It implements port.JSONFetcher.
type RESTClient struct {
	client *http.Client
}

func NewRESTClient(timeout time.Duration, client *http.Client) *RESTClient {
	if client == nil {
		client = &http.Client{Timeout: timeoutOrDefault(timeout)}
	} else if timeout > 0 {
		client.Timeout = timeout
	}
	return &RESTClient{client: client}
}

func (c *RESTClient) GetJSON(ctx context.Context, rawURL string, query map[string]string, headers map[string]string) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	values := req.URL.Query()
	for key, value := range query {
		trimmedKey := strings.TrimSpace(key)
		if trimmedKey == "" {
			continue
		}
		values.Set(trimmedKey, value)
	}
	req.URL.RawQuery = values.Encode()

	return c.do(req, headers)
}

func (c *RESTClient) SendJSON(ctx context.Context, method, rawURL string, body any, headers map[string]string) (any, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, headers)
}

func (c *RESTClient) do(req *http.Request, headers map[string]string) (any, error) {
	req.Header.Set("Accept", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(res.Body, errorBodyLimit))
		return nil, &port.HTTPError{StatusCode: res.StatusCode, Body: strings.TrimSpace(string(detail))}
	}

	var payload any
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return payload, nil
}

func timeoutOrDefault(value time.Duration) time.Duration {
	if value <= 0 {
		return 10 * time.Second
	}
	return value
}
