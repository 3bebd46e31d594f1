package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/concursos"
)

// ExtractCell converts a table cell into a Cell.
//
// When the cell contains an anchor, the text and link come from the first
// anchor only. A relative href is resolved against origin; an anchor without
// an href (or with an empty or unparseable one) yields a nil link.
func ExtractCell(sel *goquery.Selection, origin *url.URL) concursos.Cell {
	anchor := sel.Find("a").First()
	if anchor.Length() == 0 {
		return concursos.Cell{Text: strings.TrimSpace(sel.Text())}
	}

	cell := concursos.Cell{Text: strings.TrimSpace(anchor.Text())}
	if href, exists := anchor.Attr("href"); exists {
		cell.Link = resolveLink(origin, href)
	}
	return cell
}

// resolveLink makes href absolute against origin.
// Returns nil if href is empty or cannot be parsed.
func resolveLink(origin *url.URL, href string) *string {
	href = strings.TrimSpace(href)
	if href == "" {
		return nil
	}
	ref, err := url.Parse(href)
	if err != nil {
		return nil
	}
	if ref.IsAbs() {
		return &href
	}
	resolved := origin.ResolveReference(ref).String()
	return &resolved
}
