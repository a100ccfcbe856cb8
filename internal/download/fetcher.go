// Package download fetches remote images submitted through the web form.
package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

var (
	ErrInvalidURL     = errors.New("invalid image url")
	ErrImageTooLarge  = errors.New("image too large")
	ErrDownloadFailed = errors.New("image download failed")
)

// DefaultTimeout bounds the whole download.
const DefaultTimeout = 10 * time.Second

// DefaultMaxBytes is the largest body Fetch accepts.
const DefaultMaxBytes = 10 << 20

// StatusError reports a non-200 answer from the image host.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("When trying to download specified image we got %d", e.StatusCode)
}

// Fetcher downloads images over HTTP with a timeout and a size cap.
type Fetcher struct {
	httpClient *http.Client
	maxBytes   int64
}

// NewFetcher creates a fetcher. Zero values select the defaults.
func NewFetcher(timeout time.Duration, maxBytes int64) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Fetcher{
		httpClient: &http.Client{Timeout: timeout},
		maxBytes:   maxBytes,
	}
}

// MaxBytes returns the size cap.
func (f *Fetcher) MaxBytes() int64 {
	return f.maxBytes
}

// Fetch downloads rawURL and returns the body. Only http and https are allowed.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "memegen/1.0")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDownloadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{URL: rawURL, StatusCode: resp.StatusCode}
	}

	if resp.ContentLength > f.maxBytes {
		return nil, fmt.Errorf("%w: %d bytes exceeds %d", ErrImageTooLarge, resp.ContentLength, f.maxBytes)
	}

	// Read one byte past the limit to detect oversized chunked bodies
	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if int64(len(data)) > f.maxBytes {
		return nil, fmt.Errorf("%w: exceeds %d bytes", ErrImageTooLarge, f.maxBytes)
	}

	return data, nil
}
