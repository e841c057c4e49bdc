package table

import "strings"

// Table is the ordered row stream extracted from a source document.
type Table struct {
	Title string // Document title (from metadata or filename)
	Rows  []Row  // Rows in document order
}

// Row is one source row. Cells holds the raw, untrimmed text of each cell in
// order. Text is the full concatenated text of the row, which may include
// content that did not land in any cell (HTML header cells, stray text).
type Row struct {
	Cells []string
	Text  string
}

// NewRow builds a row whose Text is the plain concatenation of its cells.
func NewRow(cells ...string) Row {
	return Row{Cells: cells, Text: strings.Join(cells, "")}
}

// Cell returns the raw text of cell i, or "" when the row has no such cell.
func (r Row) Cell(i int) string {
	if i < 0 || i >= len(r.Cells) {
		return ""
	}
	return r.Cells[i]
}

// Len returns the number of cells in the row.
func (r Row) Len() int {
	return len(r.Cells)
}
