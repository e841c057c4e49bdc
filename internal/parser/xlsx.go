package parser

import (
	"fmt"
	"io"

	"github.com/dgallion1/skufinder/internal/table"
	"github.com/xuri/excelize/v2"
)

// XLSXParser reads worksheet rows in workbook order.
type XLSXParser struct {
	Sheet string // Only this sheet when set
}

func (p *XLSXParser) Parse(r io.Reader, filename string) (*table.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	tbl := &table.Table{Title: stem(filename)}
	if props, err := f.GetDocProps(); err == nil && props.Title != "" {
		tbl.Title = props.Title
	}

	sheets := f.GetSheetList()
	if p.Sheet != "" {
		if idx, err := f.GetSheetIndex(p.Sheet); err != nil || idx < 0 {
			return nil, fmt.Errorf("sheet %q not found", p.Sheet)
		}
		sheets = []string{p.Sheet}
	}

	for _, sh := range sheets {
		rows, err := f.GetRows(sh)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", sh, err)
		}
		for _, row := range rows {
			tbl.Rows = append(tbl.Rows, table.NewRow(row...))
		}
	}
	return tbl, nil
}
