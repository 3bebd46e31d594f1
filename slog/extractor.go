package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/concursos"
)

// Ensure LoggingExtractor implements concursos.Extractor.
var _ concursos.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   concursos.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next concursos.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs what it found.
// A result without headers or rows is logged at warn level since it usually
// means the page layout changed.
func (e *LoggingExtractor) Extract(html string) (data *concursos.ConcursoData, err error) {
	defer func(begin time.Time) {
		var headers, open, predicted int
		if data != nil {
			headers, open, predicted = len(data.Headers), len(data.OpenRows), len(data.PredictedRows)
		}
		level := slog.LevelInfo
		if err == nil && headers == 0 && open+predicted == 0 {
			level = slog.LevelWarn
		}
		e.logger.Log(context.Background(), level, "extract",
			"bytes", len(html),
			"headers", headers,
			"open", open,
			"predicted", predicted,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
