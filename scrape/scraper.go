// Package scrape composes a Fetcher and an Extractor into the
// concursos.ConcursoService, and provides caller-side helpers for retrying
// fetches and scraping many states.
package scrape

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/concursos"
)

// Ensure Scraper implements concursos.ConcursoService at compile time.
var _ concursos.ConcursoService = (*Scraper)(nil)

// Scraper fetches a state's listing page and extracts it. Each call is
// independent; Scraper keeps nothing between calls.
type Scraper struct {
	Fetcher   concursos.Fetcher
	Extractor concursos.Extractor
}

// NewScraper creates a Scraper from its dependencies.
func NewScraper(fetcher concursos.Fetcher, extractor concursos.Extractor) *Scraper {
	return &Scraper{Fetcher: fetcher, Extractor: extractor}
}

// Scrape fetches and extracts the listing for state.
//
// An empty state code fails with EINVALID before any request is made. Fetch
// and extraction failures, including panics raised while extracting, are
// returned as *concursos.ScrapeError.
func (s *Scraper) Scrape(ctx context.Context, state string) (data *concursos.ConcursoData, err error) {
	state = strings.ToUpper(strings.TrimSpace(state))
	if state == "" {
		return nil, concursos.Errorf(concursos.EINVALID, "state code required")
	}

	html, err := s.Fetcher.Fetch(ctx, state)
	if err != nil {
		return nil, &concursos.ScrapeError{State: state, Err: err}
	}

	defer func() {
		if r := recover(); r != nil {
			data = nil
			err = &concursos.ScrapeError{State: state, Err: fmt.Errorf("extract: %v", r)}
		}
	}()

	data, err = s.Extractor.Extract(html)
	if err != nil {
		return nil, &concursos.ScrapeError{State: state, Err: err}
	}
	return data, nil
}
