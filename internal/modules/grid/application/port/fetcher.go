package port

import (
	"context"
	"fmt"
)

// HTTPError preserves the upstream status and body of a failed provider call
// so integration failures stay diagnosable for the tenant operator.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("upstream responded %d", e.StatusCode)
	}
	return fmt.Sprintf("upstream responded %d: %s", e.StatusCode, e.Body)
}

// JSONFetcher is the outbound transport capability adapters depend on. Every
// call decodes the response body as JSON; non-2xx statuses and network
// failures surface as errors, with *HTTPError in the chain when a response
// was received.
type JSONFetcher interface {
	GetJSON(ctx context.Context, url string, query map[string]string, headers map[string]string) (any, error)
	SendJSON(ctx context.Context, method, url string, body any, headers map[string]string) (any, error)
}
