// Package runewidth renders concurso listings as plain text tables aligned by
// terminal display width.
package runewidth

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/concursos"
	"github.com/mattn/go-runewidth"
)

// minWidth is the narrowest column, matching the "---" of a Markdown separator.
const minWidth = 3

// WriteText writes the open and predicted sections of data as aligned text
// tables. Linked cells show the URL in angle brackets after the text.
// Sections without rows are omitted.
func WriteText(w io.Writer, data *concursos.ConcursoData) error {
	if data == nil || data.IsEmpty() {
		return nil
	}

	sections := []struct {
		title string
		rows  []concursos.Row
	}{
		{"Open", data.OpenRows},
		{"Predicted", data.PredictedRows},
	}

	first := true
	for _, s := range sections {
		if len(s.rows) == 0 {
			continue
		}
		if !first {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		first = false

		if _, err := fmt.Fprintf(w, "%s (%d)\n", s.title, len(s.rows)); err != nil {
			return err
		}
		for _, line := range textTable(data.Headers, s.rows) {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

func textTable(headers []string, rows []concursos.Row) []string {
	var table [][]string
	for _, row := range rows {
		cells := make([]string, 0, len(row.Cells))
		for _, c := range row.Cells {
			cells = append(cells, cellText(c))
		}
		table = append(table, cells)
	}

	widths := columnWidths(append([][]string{headers}, table...))

	var lines []string
	if len(headers) > 0 {
		lines = append(lines, strings.TrimRight(joinPadded(headers, widths, "  "), " "))
		sep := make([]string, len(widths))
		for i, w := range widths {
			sep[i] = strings.Repeat("-", w)
		}
		lines = append(lines, strings.Join(sep, "  "))
	}
	for _, cells := range table {
		lines = append(lines, strings.TrimRight(joinPadded(cells, widths, "  "), " "))
	}
	return lines
}

func cellText(c concursos.Cell) string {
	if c.HasLink() {
		return c.Text + " <" + *c.Link + ">"
	}
	return c.Text
}

// AlignMarkdown re-pads every pipe table in md so that columns line up by
// display width. Lines outside tables are returned unchanged.
func AlignMarkdown(md string) string {
	lines := strings.Split(md, "\n")

	var out []string
	var buf []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "|") && strings.HasSuffix(trimmed, "|") {
			buf = append(buf, line)
			continue
		}
		if len(buf) > 0 {
			out = append(out, alignTable(buf)...)
			buf = nil
		}
		out = append(out, line)
	}
	if len(buf) > 0 {
		out = append(out, alignTable(buf)...)
	}

	return strings.Join(out, "\n")
}

func alignTable(rows []string) []string {
	// A table needs at least a header and a separator.
	if len(rows) < 2 {
		return rows
	}

	table := make([][]string, 0, len(rows))
	for _, row := range rows {
		table = append(table, splitRow(row))
	}

	sepIdx := -1
	if isSeparator(table[1]) {
		sepIdx = 1
	}

	measured := make([][]string, 0, len(table))
	for i, row := range table {
		if i != sepIdx {
			measured = append(measured, row)
		}
	}
	widths := columnWidths(measured)

	result := make([]string, 0, len(table))
	for i, row := range table {
		if i == sepIdx {
			sep := make([]string, len(widths))
			for j, w := range widths {
				sep[j] = strings.Repeat("-", w)
			}
			result = append(result, "| "+strings.Join(sep, " | ")+" |")
			continue
		}
		result = append(result, "| "+joinPadded(row, widths, " | ")+" |")
	}
	return result
}

func splitRow(row string) []string {
	parts := strings.Split(strings.TrimSpace(row), "|")
	if len(parts) > 0 && strings.TrimSpace(parts[0]) == "" {
		parts = parts[1:]
	}
	if len(parts) > 0 && strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}

	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		cells = append(cells, strings.TrimSpace(p))
	}
	return cells
}

func isSeparator(cells []string) bool {
	if len(cells) == 0 {
		return false
	}
	for _, c := range cells {
		if strings.Trim(c, "-: ") != "" {
			return false
		}
	}
	return true
}

func columnWidths(table [][]string) []int {
	n := 0
	for _, row := range table {
		if len(row) > n {
			n = len(row)
		}
	}

	widths := make([]int, n)
	for i := range widths {
		widths[i] = minWidth
	}
	for _, row := range table {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func joinPadded(cells []string, widths []int, sep string) string {
	padded := make([]string, len(widths))
	for i, w := range widths {
		content := ""
		if i < len(cells) {
			content = cells[i]
		}
		padded[i] = runewidth.FillRight(content, w)
	}
	return strings.Join(padded, sep)
}
