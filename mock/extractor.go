package mock

import "github.com/fwojciec/concursos"

var _ concursos.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of concursos.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*concursos.ConcursoData, error)
}

func (e *Extractor) Extract(html string) (*concursos.ConcursoData, error) {
	return e.ExtractFn(html)
}
