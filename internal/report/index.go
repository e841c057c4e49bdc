package report

import (
	"sort"
	"strings"
)

// Index maps a SKU to every (category, product) occurrence in document order.
// It is immutable once built.
type Index struct {
	entries map[string][]SKUResult
}

// BuildIndex indexes every product of every section. Repeated SKUs are all
// kept, within and across sections.
func BuildIndex(sections []Section) *Index {
	ix := &Index{entries: make(map[string][]SKUResult)}
	for _, s := range sections {
		for _, p := range s.Products {
			ix.entries[p.SKU] = append(ix.entries[p.SKU], SKUResult{
				CategoryName: s.CategoryName,
				Product:      p,
			})
		}
	}
	return ix
}

// Lookup returns the occurrences of the exact SKU in query, after trimming
// surrounding whitespace. A blank or unknown query yields nil. The returned
// slice is shared with the index and must not be modified.
func (ix *Index) Lookup(query string) []SKUResult {
	if ix == nil {
		return nil
	}
	q := strings.TrimSpace(query)
	if q == "" {
		return nil
	}
	return ix.entries[q]
}

// Len returns the number of distinct SKUs.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.entries)
}

// SKUs returns the distinct SKUs in ascending string order.
func (ix *Index) SKUs() []string {
	if ix == nil {
		return nil
	}
	skus := make([]string, 0, len(ix.entries))
	for sku := range ix.entries {
		skus = append(skus, sku)
	}
	sort.Strings(skus)
	return skus
}
