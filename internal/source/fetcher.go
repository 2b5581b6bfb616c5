package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// UserAgent identifies the service to the export host.
const UserAgent = "procurement-reports/1.0"

// ErrFetchFailure is returned when the source export cannot be retrieved.
var ErrFetchFailure = errors.New("source fetch failure")

// Fetcher retrieves the raw goods receipt export.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// HTTPFetcher fetches the export over HTTP. It never retries.
type HTTPFetcher struct {
	httpClient *http.Client
	headers    map[string]string
	logger     *logrus.Logger
}

// Option configures an HTTPFetcher.
type Option func(*HTTPFetcher)

// WithTimeout bounds each fetch. Zero disables the client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(f *HTTPFetcher) {
		f.httpClient.Timeout = timeout
	}
}

// WithHeader sets a header on every request.
func WithHeader(key, value string) Option {
	return func(f *HTTPFetcher) {
		f.headers[key] = value
	}
}

// WithLogger enables debug logging of requests.
func WithLogger(logger *logrus.Logger) Option {
	return func(f *HTTPFetcher) {
		f.logger = logger
	}
}

func NewHTTPFetcher(opts ...Option) *HTTPFetcher {
	f := &HTTPFetcher{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		headers: make(map[string]string),
	}

	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch GETs url and returns the body. Transport errors and non-2xx statuses
// wrap ErrFetchFailure.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", ErrFetchFailure, err)
	}
	for key, value := range f.headers {
		req.Header.Set(key, value)
	}

	start := time.Now()
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFetchFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read body: %v", ErrFetchFailure, err)
	}

	if f.logger != nil {
		f.logger.WithFields(logrus.Fields{
			"url":        url,
			"status":     resp.StatusCode,
			"bytes":      len(body),
			"durationMs": time.Since(start).Milliseconds(),
		}).Debug("Source.Fetch")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: %s returned status %d", ErrFetchFailure, url, resp.StatusCode)
	}

	return string(body), nil
}
