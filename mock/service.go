package mock

import (
	"context"

	"github.com/fwojciec/concursos"
)

var _ concursos.ConcursoService = (*ConcursoService)(nil)

// ConcursoService is a mock implementation of concursos.ConcursoService.
type ConcursoService struct {
	ScrapeFn func(ctx context.Context, state string) (*concursos.ConcursoData, error)
}

func (s *ConcursoService) Scrape(ctx context.Context, state string) (*concursos.ConcursoData, error) {
	return s.ScrapeFn(ctx, state)
}
