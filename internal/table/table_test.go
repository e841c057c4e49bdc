package table

import "testing"

func TestNewRow_TextIsConcatenation(t *testing.T) {
	r := NewRow(" a", "b ", "", "c")
	if r.Text != " ab c" {
		t.Errorf("expected %q, got %q", " ab c", r.Text)
	}
	if r.Len() != 4 {
		t.Errorf("expected 4 cells, got %d", r.Len())
	}
}

func TestRow_CellOutOfRange(t *testing.T) {
	r := NewRow("x")
	if r.Cell(0) != "x" {
		t.Errorf("expected %q, got %q", "x", r.Cell(0))
	}
	if r.Cell(1) != "" || r.Cell(-1) != "" {
		t.Error("expected empty string for missing cells")
	}
}
