package concursos

import (
	"context"
	"strings"
)

// DefaultBaseURL is the listing root; a state page lives at
// DefaultBaseURL + "/" + lower(state) + "/".
const DefaultBaseURL = "https://concursosnobrasil.com/concursos"

// DefaultOrigin is the origin relative links in listing pages resolve against.
const DefaultOrigin = "https://concursosnobrasil.com"

// DefaultUserAgent identifies requests as a desktop browser. The listing site
// rejects some non-browser clients.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Fetcher retrieves the raw listing markup for a state.
type Fetcher interface {
	// Fetch returns the HTML of the listing page for state.
	// Failures are reported as *FetchError.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, state string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// StateURL builds the listing URL for state under baseURL. The state code is
// lower-cased; no other validation is done.
func StateURL(baseURL, state string) string {
	return strings.TrimRight(baseURL, "/") + "/" + strings.ToLower(strings.TrimSpace(state)) + "/"
}
