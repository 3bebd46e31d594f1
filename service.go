package concursos

import "context"

// ConcursoService extracts the contest listing for a state.
type ConcursoService interface {
	// Scrape fetches and extracts the listing for the given state code.
	// Returns EINVALID for an empty state code and a *ScrapeError for any
	// failure after that. A page without a listing table yields an empty
	// result, not an error.
	Scrape(ctx context.Context, state string) (*ConcursoData, error)
}
