package util

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout is the transport level timeout of every http request.
const DefaultTimeout = 30 * time.Second

// NewHTTPClient returns an http client with the given timeout, or
// DefaultTimeout if zero.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// PostJSON sends body to url and returns the status code and the response
// body.
func PostJSON(
	ctx context.Context, client *http.Client, url string, body []byte,
	header map[string]string,
) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	for key, value := range header {
		req.Header.Set(key, value)
	}

	rs, err := client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer rs.Body.Close()

	bodyBytes, err := io.ReadAll(rs.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to parse response body: %w", err)
	}

	return rs.StatusCode, bodyBytes, nil
}
