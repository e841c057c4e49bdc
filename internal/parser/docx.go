package parser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dgallion1/skufinder/internal/table"
	"github.com/fumiama/go-docx"
)

// DOCXParser reads the rows of every body-level table in a .docx file.
type DOCXParser struct{}

func (p *DOCXParser) Parse(r io.Reader, filename string) (*table.Table, error) {
	// go-docx needs a ReadSeeker+size, so write to temp file.
	tmp, err := os.CreateTemp("", "skufinder-docx-*.docx")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	size, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("seek temp file: %w", err)
	}

	doc, err := docx.Parse(tmp, size)
	tmp.Close()
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	tbl := &table.Table{Title: stem(filename)}
	titled := false

	for _, item := range doc.Document.Body.Items {
		switch it := item.(type) {
		case *docx.Paragraph:
			if !titled && docxHeadingLevel(it) == 1 {
				if t := strings.TrimSpace(docxParagraphText(it)); t != "" {
					tbl.Title = t
					titled = true
				}
			}
		case *docx.Table:
			for _, tr := range it.TableRows {
				cells := make([]string, 0, len(tr.TableCells))
				for _, tc := range tr.TableCells {
					cells = append(cells, docxCellText(tc))
				}
				tbl.Rows = append(tbl.Rows, table.NewRow(cells...))
			}
		}
	}

	return tbl, nil
}

func docxHeadingLevel(para *docx.Paragraph) int {
	if para.Properties == nil || para.Properties.Style == nil {
		return 0
	}
	style := para.Properties.Style.Val
	switch {
	case strings.EqualFold(style, "Title"):
		return 1
	case strings.EqualFold(style, "Heading1") || strings.EqualFold(style, "heading 1"):
		return 1
	case strings.EqualFold(style, "Heading2") || strings.EqualFold(style, "heading 2"):
		return 2
	}
	return 0
}

func docxCellText(tc *docx.WTableCell) string {
	parts := make([]string, 0, len(tc.Paragraphs))
	for _, para := range tc.Paragraphs {
		parts = append(parts, docxParagraphText(para))
	}
	return strings.Join(parts, "\n")
}

func docxParagraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return buf.String()
}
