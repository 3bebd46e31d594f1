package main

import (
	"fmt"

	"github.com/fwojciec/concursos"
	"github.com/fwojciec/concursos/scrape"
)

// Run executes the all command.
func (c *AllCmd) Run(deps *Dependencies) error {
	batch := &scrape.Batch{
		Service:     deps.Service,
		Limiter:     scrape.NewLimiter(c.Rate),
		Concurrency: c.Concurrency,
		Progress: func(r scrape.BatchResult, completed, total int) {
			fmt.Fprintf(deps.Stderr, "\r[%d/%d] %s", completed, total, r.State)
		},
	}

	results, err := batch.Run(deps.Ctx, concursos.StateCodes())
	fmt.Fprintf(deps.Stderr, "\r%20s\r", "")
	if err != nil {
		return err
	}

	out := newListingWriter(deps.Stdout, c.Format)
	defer out.Close()

	var failed int
	for _, r := range results {
		if r.Err != nil {
			failed++
			reportScrapeError(deps, r.State, r.Err)
			continue
		}
		if err := out.Write(r.State, r.Data); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d states failed", failed, len(results))
	}
	return nil
}
