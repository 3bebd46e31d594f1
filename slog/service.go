package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/concursos"
)

// Ensure LoggingService implements concursos.ConcursoService.
var _ concursos.ConcursoService = (*LoggingService)(nil)

// LoggingService wraps a ConcursoService with logging.
type LoggingService struct {
	next   concursos.ConcursoService
	logger *slog.Logger
}

// NewLoggingService creates a new LoggingService.
func NewLoggingService(next concursos.ConcursoService, logger *slog.Logger) *LoggingService {
	return &LoggingService{next: next, logger: logger}
}

// Scrape delegates to the wrapped service and logs the outcome.
func (s *LoggingService) Scrape(ctx context.Context, state string) (data *concursos.ConcursoData, err error) {
	defer func(begin time.Time) {
		var open, predicted int
		if data != nil {
			open, predicted = len(data.OpenRows), len(data.PredictedRows)
		}
		level := slog.LevelInfo
		if err != nil {
			level = slog.LevelError
		}
		s.logger.Log(ctx, level, "scrape",
			"state", state,
			"open", open,
			"predicted", predicted,
			"duration", time.Since(begin),
			"code", concursos.ErrorCode(err),
			"err", err,
		)
	}(time.Now())
	return s.next.Scrape(ctx, state)
}
