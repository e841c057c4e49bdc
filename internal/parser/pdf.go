package parser

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"sort"
	"strings"

	"github.com/dgallion1/skufinder/internal/table"
	pdflib "github.com/ledongthuc/pdf"
)

// PDFParser turns each visual text line of a PDF into a row. It tries the Go
// library first, then falls back to pdftotext if available.
type PDFParser struct {
	FallbackPdftotext bool
}

// Horizontal gap, in multiples of the font size, that starts a new cell.
const pdfCellGap = 1.0

// Two or more spaces separate cells in pdftotext -layout output.
var layoutGap = regexp.MustCompile(`\s{2,}`)

func (p *PDFParser) Parse(r io.Reader, filename string) (*table.Table, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "skufinder-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	rows, err := extractPDFRows(tmpPath)
	if (err != nil || len(rows) == 0) && p.FallbackPdftotext {
		if layout, lerr := extractPdftotext(tmpPath); lerr == nil {
			rows, err = layoutRows(layout), nil
		}
	}
	if err != nil {
		return nil, fmt.Errorf("extract pdf rows: %w", err)
	}

	return &table.Table{Title: stem(filename), Rows: rows}, nil
}

func extractPDFRows(path string) ([]table.Row, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows []table.Row
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		lines, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		for _, line := range lines {
			if row, ok := pdfRow(line.Content); ok {
				rows = append(rows, row)
			}
		}
	}
	return rows, nil
}

// pdfRow groups the text fragments of one line into cells by horizontal gap.
func pdfRow(frags pdflib.TextHorizontal) (table.Row, bool) {
	if len(frags) == 0 {
		return table.Row{}, false
	}
	sorted := make([]pdflib.Text, len(frags))
	copy(sorted, frags)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	var cells []string
	var cell strings.Builder
	end := sorted[0].X
	for i, t := range sorted {
		size := t.FontSize
		if size <= 0 {
			size = 10
		}
		if i > 0 && t.X-end > size*pdfCellGap {
			cells = append(cells, cell.String())
			cell.Reset()
		}
		cell.WriteString(t.S)
		if e := t.X + t.W; e > end {
			end = e
		}
	}
	cells = append(cells, cell.String())

	row := table.NewRow(cells...)
	if strings.TrimSpace(row.Text) == "" {
		return table.Row{}, false
	}
	return row, true
}

func extractPdftotext(path string) (string, error) {
	cmd := exec.Command("pdftotext", "-layout", path, "-")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext: %w", err)
	}
	return string(out), nil
}

// layoutRows splits pdftotext -layout output into rows. A line indented by two
// or more spaces starts with an empty cell, which keeps SKUs in column 1.
func layoutRows(text string) []table.Row {
	var rows []table.Row
	for _, line := range strings.Split(strings.ReplaceAll(text, "\f", "\n"), "\n") {
		line = strings.TrimRight(line, " \t\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, table.NewRow(layoutGap.Split(line, -1)...))
	}
	return rows
}
