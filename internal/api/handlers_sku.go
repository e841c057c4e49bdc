package api

import (
	"net/http"
	"strings"

	"github.com/dgallion1/skufinder/internal/report"
	"github.com/go-chi/chi/v5"
)

// resultView is one SKU occurrence laid out for display.
type resultView struct {
	CategoryName string                 `json:"category_name"`
	SKU          string                 `json:"sku"`
	Name         string                 `json:"name"`
	Qty          string                 `json:"qty"`
	Amount       string                 `json:"amount"`
	Qty2         string                 `json:"qty_2"`
	Amount2      string                 `json:"amount_2"`
	Columns      []report.LabeledColumn `json:"columns"`
}

func newResultView(r report.SKUResult) resultView {
	p := r.Product
	cols := report.LabelColumns(p.Columns)
	for i := range cols {
		cols[i].Value = orDash(cols[i].Value)
	}
	return resultView{
		CategoryName: r.CategoryName,
		SKU:          p.SKU,
		Name:         p.Name,
		Qty:          headline(p, report.QtyColumn),
		Amount:       headline(p, report.AmountColumn),
		Qty2:         headline(p, report.Qty2Column),
		Amount2:      headline(p, report.Amount2Column),
		Columns:      cols,
	}
}

// headline shows a dash only for a column the row does not have; an empty
// cell stays empty.
func headline(p report.ProductEntry, i int) string {
	if i >= len(p.Columns) {
		return "-"
	}
	return p.Columns[i]
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

func resultViews(results []report.SKUResult) []resultView {
	views := make([]resultView, len(results))
	for i, r := range results {
		views[i] = newResultView(r)
	}
	return views
}

// handleSKU is a read-only lookup; it does not change the session's query.
func (s *Server) handleSKU(w http.ResponseWriter, r *http.Request) {
	sess := s.orchestrator.Session()
	if sess.Current() == nil {
		jsonError(w, "no report loaded", http.StatusNotFound)
		return
	}
	sku := chi.URLParam(r, "sku")
	results := sess.Lookup(sku)
	writeJSON(w, http.StatusOK, map[string]any{
		"query":   strings.TrimSpace(sku),
		"matches": len(results),
		"results": resultViews(results),
	})
}

// handleSearch runs the query through the session so it becomes the current
// search.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	sess := s.orchestrator.Session()
	if sess.Current() == nil {
		jsonError(w, "no report loaded", http.StatusNotFound)
		return
	}
	q := r.URL.Query().Get("q")
	results := sess.Search(q)
	writeJSON(w, http.StatusOK, map[string]any{
		"query":   strings.TrimSpace(q),
		"matches": len(results),
		"results": resultViews(results),
	})
}
