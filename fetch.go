package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Fetcher defaults.
const (
	defaultBaseURL   = "https://adventofcode.com"
	defaultUserAgent = "advent-solver"
	maxInputSize     = 10 * 1024 * 1024 // 10MB limit
)

// errNetwork marks transport failures: DNS, connect, TLS, reading the body.
var errNetwork = errors.New("network error")

// statusError is a non-2xx answer from the puzzle site. An expired session
// typically shows up here as 400 or 500 with an HTML body.
type statusError struct {
	StatusCode int
	Body       []byte
}

func (e *statusError) Error() string {
	return fmt.Sprintf("puzzle input request: http %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// fetcherConfig configures a fetcher.
type fetcherConfig struct {
	Token     string
	BaseURL   string
	UserAgent string
	Client    *http.Client
}

// fetcher downloads puzzle inputs with the user's session cookie.
type fetcher struct {
	baseURL   string
	token     string
	userAgent string
	http      *http.Client
}

// newFetcher creates a fetcher for the given session token.
func newFetcher(cfg fetcherConfig) (*fetcher, error) {
	token := strings.TrimSpace(cfg.Token)
	if token == "" {
		return nil, errors.New("session token is required")
	}
	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	u.Path = strings.TrimRight(u.Path, "/")

	f := &fetcher{
		baseURL:   u.String(),
		token:     token,
		userAgent: cfg.UserAgent,
		http:      cfg.Client,
	}
	if f.userAgent == "" {
		f.userAgent = defaultUserAgent
	}
	if f.http == nil {
		f.http = http.DefaultClient
	}
	return f, nil
}

func (f *fetcher) inputURL(year, day int) string {
	return fmt.Sprintf("%s/%d/day/%d/input", f.baseURL, year, day)
}

// fetch performs one GET for the day's input and returns the trimmed body.
// Nothing is cached and nothing is retried.
func (f *fetcher) fetch(ctx context.Context, year, day int) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.inputURL(year, day), nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.AddCookie(&http.Cookie{Name: "session", Value: f.token})

	resp, err := f.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errNetwork, err)
	}
	defer func() { _ = resp.Body.Close() }()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxInputSize))
	if err != nil {
		return "", fmt.Errorf("%w: read response: %w", errNetwork, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &statusError{StatusCode: resp.StatusCode, Body: b}
	}
	return strings.TrimSpace(string(b)), nil
}
