// Package remote downloads hosts-format lists from HTTP(S) sources.
package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jroosing/easyhosts/internal/hosts"
)

const (
	DefaultTimeout  = 30 * time.Second
	DefaultMaxBytes = 8 << 20
)

// ErrTooLarge is returned when a response body exceeds the size limit.
var ErrTooLarge = errors.New("remote hosts list exceeds size limit")

// Fetcher retrieves and parses remote hosts lists.
type Fetcher struct {
	// Timeout bounds the whole request. Zero means DefaultTimeout.
	Timeout time.Duration
	// MaxBytes caps the response body. Zero means DefaultMaxBytes.
	MaxBytes int64

	client *http.Client
}

// NewFetcher creates a fetcher with the given limits.
func NewFetcher(timeout time.Duration, maxBytes int64) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Fetcher{
		Timeout:  timeout,
		MaxBytes: maxBytes,
		client:   &http.Client{Timeout: timeout},
	}
}

// Fetch downloads rawURL and parses the body as a hosts file.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (hosts.Document, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return hosts.Document{}, fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return hosts.Document{}, fmt.Errorf("unsupported URL scheme %q", u.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return hosts.Document{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "text/plain")

	resp, err := f.httpClient().Do(req)
	if err != nil {
		return hosts.Document{}, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return hosts.Document{}, fmt.Errorf("HTTP error: %s", resp.Status)
	}

	limit := f.maxBytes()
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return hosts.Document{}, fmt.Errorf("failed to read response: %w", err)
	}
	if int64(len(body)) > limit {
		return hosts.Document{}, ErrTooLarge
	}

	return hosts.Parse(string(body)), nil
}

func (f *Fetcher) httpClient() *http.Client {
	if f.client != nil {
		return f.client
	}
	timeout := f.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

func (f *Fetcher) maxBytes() int64 {
	if f.MaxBytes <= 0 {
		return DefaultMaxBytes
	}
	return f.MaxBytes
}
