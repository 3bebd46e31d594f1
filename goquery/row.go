package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/concursos"
)

// predictedSelector matches the badge the listing site puts in the first
// cell of contests that are announced but not yet open.
const predictedSelector = ".label-previsto"

// predictedLabel is the badge text, compared case-insensitively.
const predictedLabel = "previsto"

// ClassifyRows extracts the body rows of table and splits them into open and
// predicted rows.
//
// When headers is non-empty a row must have at least len(headers) cells and
// is cut to exactly that many; rows with fewer cells are dropped. Rows whose
// cells are all blank are dropped. A row is predicted when its first cell
// holds the predicted badge; the badge is left out of the extracted text.
// Rows are checked for acceptance before they are classified. Both returned
// slices are non-nil.
func ClassifyRows(table *goquery.Selection, headers []string, skipFirst bool, origin *url.URL) (open, predicted []concursos.Row) {
	open = []concursos.Row{}
	predicted = []concursos.Row{}

	bodyRows(table).Each(func(i int, tr *goquery.Selection) {
		if i == 0 && skipFirst {
			return
		}

		cells := tr.ChildrenFiltered("td")
		n := cells.Length()
		if n == 0 {
			return
		}
		if len(headers) > 0 {
			if n < len(headers) {
				return
			}
			n = len(headers)
		}

		isPredicted := predictedMarkers(cells.First()).Length() > 0

		row := concursos.Row{Cells: make([]concursos.Cell, 0, n)}
		cells.Slice(0, n).Each(func(j int, td *goquery.Selection) {
			if j == 0 && isPredicted {
				td = withoutMarkers(td)
			}
			row.Cells = append(row.Cells, ExtractCell(td, origin))
		})

		if row.IsBlank() {
			return
		}

		if isPredicted {
			predicted = append(predicted, row)
		} else {
			open = append(open, row)
		}
	})

	return open, predicted
}

// predictedMarkers returns the predicted badges inside cell.
func predictedMarkers(cell *goquery.Selection) *goquery.Selection {
	return cell.Find(predictedSelector).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.EqualFold(strings.TrimSpace(s.Text()), predictedLabel)
	})
}

// withoutMarkers returns a detached copy of cell with its predicted badges
// removed. The document itself is left untouched.
func withoutMarkers(cell *goquery.Selection) *goquery.Selection {
	clone := cell.Clone()
	predictedMarkers(clone).Remove()
	return clone
}
