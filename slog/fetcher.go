// Package slog provides log/slog decorators for the concursos interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/concursos"
)

// Ensure LoggingFetcher implements concursos.Fetcher.
var _ concursos.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   concursos.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next concursos.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the state being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, state string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"state", state,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, state)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
