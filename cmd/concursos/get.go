package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/concursos"
)

// Run executes the get command.
func (c *GetCmd) Run(deps *Dependencies) error {
	out := newListingWriter(deps.Stdout, c.Format)
	defer out.Close()

	var failed int
	for _, state := range c.States {
		code := strings.ToUpper(strings.TrimSpace(state))

		data, err := deps.Service.Scrape(deps.Ctx, state)
		if err != nil {
			failed++
			reportScrapeError(deps, code, err)
			continue
		}

		if err := out.Write(code, data); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d states failed", failed, len(c.States))
	}
	return nil
}

// reportScrapeError prints a user-facing message for err to stderr.
func reportScrapeError(deps *Dependencies, code string, err error) {
	if concursos.ErrorCode(err) == concursos.EINVALID {
		fmt.Fprintf(deps.Stderr, "error: %s\n", concursos.ErrorMessage(err))
		fmt.Fprintln(deps.Stderr, "Hint: Run 'concursos states' to see valid state codes")
		return
	}
	fmt.Fprintf(deps.Stderr, "could not retrieve data for %s\n", code)
	deps.Logger.Debug("scrape failed", "state", code, "code", concursos.ErrorCode(err), "err", err)
}
