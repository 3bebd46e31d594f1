package concursos

import (
	"html"
	"strings"
)

// RenderHTML renders the open and predicted rows as two HTML tables under
// "Open" and "Predicted" headings. Sections without rows are omitted.
// Cells with links become anchors. Returns an empty string when there are
// no rows.
func RenderHTML(data *ConcursoData) string {
	if data == nil || data.IsEmpty() {
		return ""
	}

	var sb strings.Builder
	writeSection(&sb, "Open", data.Headers, data.OpenRows)
	writeSection(&sb, "Predicted", data.Headers, data.PredictedRows)
	return sb.String()
}

func writeSection(sb *strings.Builder, title string, headers []string, rows []Row) {
	if len(rows) == 0 {
		return
	}

	sb.WriteString("<h2>" + html.EscapeString(title) + "</h2>\n<table>\n")
	if len(headers) > 0 {
		sb.WriteString("<thead><tr>")
		for _, h := range headers {
			sb.WriteString("<th>" + html.EscapeString(h) + "</th>")
		}
		sb.WriteString("</tr></thead>\n")
	}
	sb.WriteString("<tbody>\n")
	for _, row := range rows {
		sb.WriteString("<tr>")
		for _, cell := range row.Cells {
			sb.WriteString("<td>")
			if cell.HasLink() {
				sb.WriteString(`<a href="` + html.EscapeString(*cell.Link) + `">` + html.EscapeString(cell.Text) + "</a>")
			} else {
				sb.WriteString(html.EscapeString(cell.Text))
			}
			sb.WriteString("</td>")
		}
		sb.WriteString("</tr>\n")
	}
	sb.WriteString("</tbody>\n</table>\n")
}
