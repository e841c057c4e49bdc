package report

import (
	"reflect"
	"testing"

	"github.com/dgallion1/skufinder/internal/table"
)

func sampleRows() []table.Row {
	return []table.Row{
		table.NewRow("", "101", "Widget A", "5", "50"),
		table.NewRow("", "102", "Widget B", "1", "10"),
		table.NewRow("Hardware Total:", "", "", "6", "60"),
		table.NewRow("", "101", "Widget A (promo)", "2", "15"),
		table.NewRow("", "101", "Widget A (bulk)", "3", "20"),
		table.NewRow("Promotions Total:", "", "", "5", "35"),
		table.NewRow("Empty Total:"),
	}
}

func TestLookup_EndToEndExample(t *testing.T) {
	rep := Parse(&table.Table{Rows: []table.Row{
		table.NewRow("", "101", "Widget A", "5", "50"),
		table.NewRow("Hardware Total:", "", "", "5", "50"),
	}})

	got := rep.Lookup("101")
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}
	if got[0].CategoryName != "Hardware" {
		t.Errorf("expected category %q, got %q", "Hardware", got[0].CategoryName)
	}
	if !reflect.DeepEqual(got[0].Product, rep.Sections[0].Products[0]) {
		t.Errorf("expected product %+v, got %+v", rep.Sections[0].Products[0], got[0].Product)
	}

	if r := rep.Lookup(" 999 "); len(r) != 0 {
		t.Errorf("expected no results for unknown sku, got %d", len(r))
	}
	if r := rep.Lookup(""); len(r) != 0 {
		t.Errorf("expected no results for empty query, got %d", len(r))
	}
}

func TestLookup_TrimsQuery(t *testing.T) {
	ix := BuildIndex(Segment(sampleRows()))
	if got := ix.Lookup("\t102  "); len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}
}

func TestLookup_ExactMatchOnly(t *testing.T) {
	ix := BuildIndex(Segment(sampleRows()))
	for _, q := range []string{"10", "1010", "0101", "101a", "   "} {
		if got := ix.Lookup(q); len(got) != 0 {
			t.Errorf("query %q: expected no results, got %d", q, len(got))
		}
	}
}

func TestLookup_MultiSectionAggregation(t *testing.T) {
	ix := BuildIndex(Segment(sampleRows()))
	got := ix.Lookup("101")
	if len(got) != 3 {
		t.Fatalf("expected 3 results, got %d", len(got))
	}
	wantCats := []string{"Hardware", "Promotions", "Promotions"}
	wantNames := []string{"Widget A", "Widget A (promo)", "Widget A (bulk)"}
	for i := range got {
		if got[i].CategoryName != wantCats[i] {
			t.Errorf("result %d: expected category %q, got %q", i, wantCats[i], got[i].CategoryName)
		}
		if got[i].Product.Name != wantNames[i] {
			t.Errorf("result %d: expected name %q, got %q", i, wantNames[i], got[i].Product.Name)
		}
	}
}

func TestBuildIndex_Completeness(t *testing.T) {
	sections := Segment(sampleRows())
	ix := BuildIndex(sections)

	total := 0
	for _, s := range sections {
		for _, p := range s.Products {
			total++
			found := false
			for _, r := range ix.Lookup(p.SKU) {
				if r.CategoryName == s.CategoryName && reflect.DeepEqual(r.Product, p) {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("product %s in %q missing from index", p.SKU, s.CategoryName)
			}
		}
	}

	indexed := 0
	for _, sku := range ix.SKUs() {
		indexed += len(ix.Lookup(sku))
	}
	if indexed != total {
		t.Errorf("expected %d indexed entries, got %d", total, indexed)
	}
}

func TestBuildIndex_KeysNeverEmpty(t *testing.T) {
	ix := BuildIndex(Segment(sampleRows()))
	if ix.Len() != 2 {
		t.Fatalf("expected 2 distinct skus, got %d", ix.Len())
	}
	want := []string{"101", "102"}
	if got := ix.SKUs(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected skus %q, got %q", want, got)
	}
	for _, sku := range ix.SKUs() {
		if len(ix.Lookup(sku)) == 0 {
			t.Errorf("sku %s maps to an empty result list", sku)
		}
	}
}

func TestIndex_NilSafe(t *testing.T) {
	var ix *Index
	if ix.Lookup("1") != nil || ix.Len() != 0 || ix.SKUs() != nil {
		t.Error("expected nil index to behave as empty")
	}
}

func TestParse_Report(t *testing.T) {
	rows := append(sampleRows(), table.NewRow("", "900", "Orphan"))
	rep := Parse(&table.Table{Title: "March", Rows: rows})

	if rep.Title != "March" {
		t.Errorf("expected title %q, got %q", "March", rep.Title)
	}
	if len(rep.Sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(rep.Sections))
	}
	if rep.ProductCount() != 4 {
		t.Errorf("expected 4 products, got %d", rep.ProductCount())
	}
	if rep.Rows != len(rows) {
		t.Errorf("expected %d rows, got %d", len(rows), rep.Rows)
	}
	if rep.Unterminated != 1 {
		t.Errorf("expected 1 unterminated product, got %d", rep.Unterminated)
	}
	if got := rep.Lookup("900"); len(got) != 0 {
		t.Errorf("expected orphan product to be unindexed, got %d results", len(got))
	}
}

func TestParse_NilTable(t *testing.T) {
	rep := Parse(nil)
	if len(rep.Sections) != 0 || rep.Index.Len() != 0 {
		t.Fatalf("expected empty report, got %+v", rep)
	}
}
