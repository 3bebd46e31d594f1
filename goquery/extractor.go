// Package goquery implements concursos.Extractor on top of goquery.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/concursos"
)

// Ensure Extractor implements concursos.Extractor at compile time.
var _ concursos.Extractor = (*Extractor)(nil)

// tableSelectors locate the listing table, tried in order. The first match
// of the first selector that matches anything wins.
var tableSelectors = []string{
	"#conteudo > table",
	"#conteudo table",
}

// Extractor finds the listing table of a state page and extracts its rows.
// Extractor holds no state between calls and is safe for concurrent use.
type Extractor struct {
	origin string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithOrigin sets the URL relative links are resolved against.
// Defaults to concursos.DefaultOrigin.
func WithOrigin(origin string) Option {
	return func(e *Extractor) {
		e.origin = origin
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{origin: concursos.DefaultOrigin}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses html and returns the listing in its table. A page without
// a listing table yields an empty result.
func (e *Extractor) Extract(html string) (*concursos.ConcursoData, error) {
	origin, err := url.Parse(e.origin)
	if err != nil {
		return nil, concursos.Errorf(concursos.EINVALID, "invalid origin URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, concursos.Errorf(concursos.EINVALID, "failed to parse HTML: %v", err)
	}

	data := concursos.NewConcursoData()

	table := FindTable(doc.Selection)
	if table.Length() == 0 {
		return data, nil
	}

	headers, firstRowIsHeader := ResolveHeaders(table)
	data.Headers = headers
	data.OpenRows, data.PredictedRows = ClassifyRows(table, headers, firstRowIsHeader, origin)

	return data, nil
}

// FindTable returns the listing table inside root, or an empty selection.
func FindTable(root *goquery.Selection) *goquery.Selection {
	for _, selector := range tableSelectors {
		if table := root.Find(selector).First(); table.Length() > 0 {
			return table
		}
	}
	return root.Find(tableSelectors[0]).First()
}
