package scrape

import (
	"context"
	"errors"
	"time"

	"github.com/fwojciec/concursos"
)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Ensure RetryFetcher implements concursos.Fetcher at compile time.
var _ concursos.Fetcher = (*RetryFetcher)(nil)

// RetryFetcher retries failed fetches with fixed backoff delays.
// Client errors (HTTP 4xx) are returned without retrying, and retrying
// stops once the context is done.
type RetryFetcher struct {
	next   concursos.Fetcher
	delays []time.Duration
	logger LogFunc
}

// NewRetryFetcher wraps next. A nil delays slice uses DefaultRetryDelays;
// logger may be nil.
func NewRetryFetcher(next concursos.Fetcher, delays []time.Duration, logger LogFunc) *RetryFetcher {
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	return &RetryFetcher{next: next, delays: delays, logger: logger}
}

// Fetch attempts the fetch once plus one retry per configured delay.
func (f *RetryFetcher) Fetch(ctx context.Context, state string) (string, error) {
	maxAttempts := len(f.delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := f.next.Fetch(ctx, state)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if ctx.Err() != nil || !retryable(err) || attempt >= maxAttempts-1 {
			break
		}

		if f.logger != nil {
			f.logger("retry %s (attempt %d): %v", state, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(f.delays[attempt]):
		}
	}

	return "", lastErr
}

// Close delegates to the wrapped fetcher.
func (f *RetryFetcher) Close() error {
	return f.next.Close()
}

// retryable reports whether a fetch error may succeed on a later attempt.
func retryable(err error) bool {
	var fe *concursos.FetchError
	if errors.As(err, &fe) && fe.StatusCode >= 400 && fe.StatusCode < 500 {
		return false
	}
	return true
}
