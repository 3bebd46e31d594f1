package concursos

// Cell is one table cell. Link is nil unless the cell holds an anchor with
// an href; when set it is an absolute URL.
type Cell struct {
	Text string  `json:"text" yaml:"text"`
	Link *string `json:"link" yaml:"link"`
}

// HasLink reports whether the cell carries a link.
func (c Cell) HasLink() bool {
	return c.Link != nil
}

// LinkURL returns the cell link, or an empty string when there is none.
func (c Cell) LinkURL() string {
	if c.Link == nil {
		return ""
	}
	return *c.Link
}

// Row is an accepted table row. When the table has headers, Cells has
// exactly one entry per header.
type Row struct {
	Cells []Cell `json:"cells" yaml:"cells"`
}

// IsBlank reports whether every cell of the row has empty text.
func (r Row) IsBlank() bool {
	for _, c := range r.Cells {
		if c.Text != "" {
			return false
		}
	}
	return true
}

// ConcursoData is the result of extracting one state's listing page.
// Headers may be empty, in which case rows keep their raw cell count.
type ConcursoData struct {
	Headers       []string `json:"headers" yaml:"headers"`
	OpenRows      []Row    `json:"openRows" yaml:"openRows"`
	PredictedRows []Row    `json:"predictedRows" yaml:"predictedRows"`
}

// NewConcursoData returns an empty result whose slices are non-nil, so it
// serializes as empty arrays rather than null.
func NewConcursoData() *ConcursoData {
	return &ConcursoData{
		Headers:       []string{},
		OpenRows:      []Row{},
		PredictedRows: []Row{},
	}
}

// IsEmpty reports whether the result holds no rows at all.
func (d *ConcursoData) IsEmpty() bool {
	return len(d.OpenRows) == 0 && len(d.PredictedRows) == 0
}

// Len returns the number of open and predicted rows.
func (d *ConcursoData) Len() int {
	return len(d.OpenRows) + len(d.PredictedRows)
}

// StringPtr returns a pointer to s. It is a convenience for building Cells.
func StringPtr(s string) *string {
	return &s
}
