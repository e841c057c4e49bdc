package report

import "github.com/dgallion1/skufinder/internal/table"

// Report is the result of one parse pass over a document.
type Report struct {
	Title    string
	Sections []Section
	Index    *Index

	Rows         int // Rows read from the document
	Unterminated int // Product rows dropped after the last terminator

	ContentHash string // Hash of the source bytes, set by the loader
}

// Parse segments the table and indexes the resulting sections.
func Parse(tbl *table.Table) *Report {
	rep := &Report{}
	if tbl == nil {
		rep.Index = BuildIndex(nil)
		return rep
	}
	rep.Title = tbl.Title
	rep.Rows = len(tbl.Rows)
	rep.Sections, rep.Unterminated = segment(tbl.Rows)
	rep.Index = BuildIndex(rep.Sections)
	return rep
}

// ProductCount returns the number of products across all sections.
func (r *Report) ProductCount() int {
	if r == nil {
		return 0
	}
	n := 0
	for _, s := range r.Sections {
		n += len(s.Products)
	}
	return n
}

// Lookup is shorthand for r.Index.Lookup.
func (r *Report) Lookup(query string) []SKUResult {
	if r == nil {
		return nil
	}
	return r.Index.Lookup(query)
}
