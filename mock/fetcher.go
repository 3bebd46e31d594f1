package mock

import (
	"context"

	"github.com/fwojciec/concursos"
)

var _ concursos.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of concursos.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, state string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, state string) (string, error) {
	return f.FetchFn(ctx, state)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}
