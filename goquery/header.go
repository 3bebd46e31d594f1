package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// knownHeaders are column labels the listing site uses. A first body row
// made only of these labels (or of emphasized cells) is taken as the header
// row.
var knownHeaders = map[string]bool{
	"Órgão":        true,
	"Vagas":        true,
	"Inscrições":   true,
	"Até":          true,
	"Cargo":        true,
	"Cargos":       true,
	"Salário":      true,
	"Escolaridade": true,
	"Banca":        true,
}

// ResolveHeaders returns the column labels of table.
//
// Labels come from the header section when it has any non-empty th cell.
// Otherwise the first body row is tried: every one of its cells must either
// wrap an emphasized element or carry a known column label, or the row is
// treated as data and no headers are returned. firstRowIsHeader reports
// whether the first body row was consumed as the header row.
func ResolveHeaders(table *goquery.Selection) (headers []string, firstRowIsHeader bool) {
	headers = []string{}
	table.ChildrenFiltered("thead").Find("th").Each(func(_ int, th *goquery.Selection) {
		if text := strings.TrimSpace(th.Text()); text != "" {
			headers = append(headers, text)
		}
	})
	if len(headers) > 0 {
		return headers, false
	}

	cells := bodyRows(table).First().ChildrenFiltered("td, th")
	if cells.Length() == 0 {
		return headers, false
	}

	candidates := make([]string, 0, cells.Length())
	allHeaders := true
	cells.EachWithBreak(func(_ int, cell *goquery.Selection) bool {
		text := strings.TrimSpace(cell.Text())
		if text == "" || !(isEmphasized(cell) || knownHeaders[text]) {
			allHeaders = false
			return false
		}
		candidates = append(candidates, text)
		return true
	})
	if !allHeaders {
		return headers, false
	}
	return candidates, true
}

// bodyRows returns the rows of the table's body sections, ignoring rows of
// nested tables. The HTML parser wraps bare rows in an implicit tbody.
func bodyRows(table *goquery.Selection) *goquery.Selection {
	return table.ChildrenFiltered("tbody").ChildrenFiltered("tr")
}

// isEmphasized reports whether cell is a th or wraps a bold or emphasis element.
func isEmphasized(cell *goquery.Selection) bool {
	if n := cell.Get(0); n != nil && n.DataAtom == atom.Th {
		return true
	}
	found := false
	cell.Find("*").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		n := s.Get(0)
		if n.Type == html.ElementNode && emphasisAtoms[n.DataAtom] {
			found = true
			return false
		}
		return true
	})
	return found
}

var emphasisAtoms = map[atom.Atom]bool{
	atom.B:      true,
	atom.Strong: true,
	atom.Em:     true,
}
