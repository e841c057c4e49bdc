package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"unicode"

	"github.com/dgallion1/skufinder/internal/table"
)

// CSVParser handles delimited text exports. Comma defaults to ','.
type CSVParser struct {
	Comma rune
}

func (p *CSVParser) Parse(r io.Reader, filename string) (*table.Table, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1 // Subtotal rows are often shorter than product rows.
	if p.Comma != 0 {
		reader.Comma = p.Comma
	}
	// Trimming would swallow empty leading fields when the delimiter is a tab.
	reader.TrimLeadingSpace = !unicode.IsSpace(reader.Comma)

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	tbl := &table.Table{Title: stem(filename)}
	for _, rec := range records {
		tbl.Rows = append(tbl.Rows, table.NewRow(rec...))
	}
	return tbl, nil
}
