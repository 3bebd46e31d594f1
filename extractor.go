package concursos

// Extractor turns a listing page into structured rows.
type Extractor interface {
	// Extract parses html and returns the listing it contains.
	// A page without a listing table returns an empty result and no error.
	Extract(html string) (*ConcursoData, error)
}
