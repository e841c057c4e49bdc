package report

import (
	"reflect"
	"testing"

	"github.com/dgallion1/skufinder/internal/table"
)

func TestSegment_EndToEndExample(t *testing.T) {
	rows := []table.Row{
		table.NewRow("", "101", "Widget A", "5", "50"),
		table.NewRow("Hardware Total:", "", "", "5", "50"),
	}
	sections := Segment(rows)

	want := []Section{{
		CategoryName: "Hardware",
		Products: []ProductEntry{{
			SKU:     "101",
			Name:    "Widget A",
			Columns: []string{"", "101", "Widget A", "5", "50"},
		}},
	}}
	if !reflect.DeepEqual(sections, want) {
		t.Fatalf("expected %+v, got %+v", want, sections)
	}
}

func TestSegment_EmptySectionsKept(t *testing.T) {
	rows := []table.Row{
		table.NewRow("A Total:"),
		table.NewRow("B Total:"),
	}
	sections := Segment(rows)
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	for i, s := range sections {
		if len(s.Products) != 0 {
			t.Errorf("section %d: expected no products, got %d", i, len(s.Products))
		}
		if s.Products == nil {
			t.Errorf("section %d: expected empty, non-nil products", i)
		}
	}
	if sections[0].CategoryName != "A" || sections[1].CategoryName != "B" {
		t.Errorf("unexpected category order: %q, %q", sections[0].CategoryName, sections[1].CategoryName)
	}
}

func TestSegment_NoiseIgnored(t *testing.T) {
	rows := []table.Row{
		table.NewRow("Report for March"),
		table.NewRow("Group", "SKU", "Name", "Qty", "Amount"),
		table.NewRow("", "1", "One"),
		table.NewRow(""),
		table.NewRow("", "2", "Two"),
		table.NewRow("Cat Total:"),
	}
	sections := Segment(rows)
	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	got := sections[0].Products
	if len(got) != 2 || got[0].SKU != "1" || got[1].SKU != "2" {
		t.Errorf("expected products 1,2 in order, got %+v", got)
	}
}

func TestSegment_TrailingProductsDiscarded(t *testing.T) {
	rows := []table.Row{
		table.NewRow("", "1", "One"),
		table.NewRow("First Total:"),
		table.NewRow("", "2", "Two"),
		table.NewRow("", "3", "Three"),
	}
	sections, discarded := segment(rows)
	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	if discarded != 2 {
		t.Errorf("expected 2 discarded rows, got %d", discarded)
	}
	for _, s := range sections {
		for _, p := range s.Products {
			if p.SKU == "2" || p.SKU == "3" {
				t.Errorf("trailing product %s leaked into section %q", p.SKU, s.CategoryName)
			}
		}
	}
}

func TestSegment_NoTerminator(t *testing.T) {
	sections := Segment([]table.Row{table.NewRow("", "1", "One")})
	if len(sections) != 0 {
		t.Fatalf("expected no sections, got %d", len(sections))
	}
}

func TestSegment_Idempotent(t *testing.T) {
	rows := []table.Row{
		table.NewRow("", "1", "One", "1"),
		table.NewRow("X Total:"),
		table.NewRow("", "1", "One again", "2"),
		table.NewRow("", "5", "Five"),
		table.NewRow("Y Total:"),
	}
	first := Segment(rows)
	second := Segment(rows)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical sections, got %+v and %+v", first, second)
	}
}

func TestSegment_SectionsDoNotShareBuffers(t *testing.T) {
	rows := []table.Row{
		table.NewRow("", "1", "One"),
		table.NewRow("X Total:"),
		table.NewRow("", "2", "Two"),
		table.NewRow("Y Total:"),
	}
	sections := Segment(rows)
	if len(sections[0].Products) != 1 || sections[0].Products[0].SKU != "1" {
		t.Errorf("first section was modified: %+v", sections[0].Products)
	}
	if len(sections[1].Products) != 1 || sections[1].Products[0].SKU != "2" {
		t.Errorf("unexpected second section: %+v", sections[1].Products)
	}
}
