package parser

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/skufinder/internal/table"
)

// Parser converts raw document bytes into an ordered row stream.
type Parser interface {
	Parse(r io.Reader, filename string) (*table.Table, error)
}

// ErrUnsupportedFormat is returned for file extensions no parser handles.
var ErrUnsupportedFormat = errors.New("unsupported file extension")

// AdapterError reports a document that could not be read at all.
type AdapterError struct {
	Format   string
	Filename string
	Err      error
}

func (e *AdapterError) Error() string {
	return fmt.Sprintf("parse %s document %q: %v", e.Format, e.Filename, e.Err)
}

func (e *AdapterError) Unwrap() error {
	return e.Err
}

// Options tunes format-specific parsers.
type Options struct {
	PDFFallbackPdftotext bool   // Shell out to pdftotext when the Go reader finds nothing
	XLSXSheet            string // Only read this sheet; empty reads every sheet
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]string{
	".html":     "html",
	".htm":      "html",
	".csv":      "csv",
	".tsv":      "tsv",
	".txt":      "tsv",
	".xlsx":     "xlsx",
	".md":       "markdown",
	".markdown": "markdown",
	".docx":     "docx",
	".pdf":      "pdf",
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string, opts Options) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch SupportedExtensions[ext] {
	case "html":
		return &HTMLParser{}, nil
	case "csv":
		return &CSVParser{}, nil
	case "tsv":
		return &CSVParser{Comma: '\t'}, nil
	case "xlsx":
		return &XLSXParser{Sheet: opts.XLSXSheet}, nil
	case "markdown":
		return &MarkdownParser{}, nil
	case "docx":
		return &DOCXParser{}, nil
	case "pdf":
		return &PDFParser{FallbackPdftotext: opts.PDFFallbackPdftotext}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	_, ok := SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
	return ok
}

// Load picks a parser for filename and reads r with it. Parse failures are
// returned as *AdapterError.
func Load(r io.Reader, filename string, opts Options) (*table.Table, error) {
	p, err := ForFile(filename, opts)
	if err != nil {
		return nil, err
	}
	tbl, err := p.Parse(r, filename)
	if err != nil {
		return nil, &AdapterError{
			Format:   SupportedExtensions[strings.ToLower(filepath.Ext(filename))],
			Filename: filename,
			Err:      err,
		}
	}
	return tbl, nil
}

// stem strips directories and the extension from filename.
func stem(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
