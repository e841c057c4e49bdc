package report

import "strconv"

// ColumnLabels names the fixed column positions of a product row.
var ColumnLabels = [...]string{
	"Group",
	"SKU",
	"Name",
	"Qty",
	"Amount",
	"Col 6",
	"Col 7",
	"Qty (2)",
	"Amount (2)",
}

// Positions of the headline figures on a product row.
const (
	QtyColumn     = 3
	AmountColumn  = 4
	Qty2Column    = 7
	Amount2Column = 8
)

// LabeledColumn is one column value with its display label.
type LabeledColumn struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ColumnLabel returns the label for column i, or "Col {i+1}" past the table.
func ColumnLabel(i int) string {
	if i >= 0 && i < len(ColumnLabels) {
		return ColumnLabels[i]
	}
	return "Col " + strconv.Itoa(i+1)
}

// LabelColumns pairs every column with its label.
func LabelColumns(columns []string) []LabeledColumn {
	out := make([]LabeledColumn, len(columns))
	for i, v := range columns {
		out[i] = LabeledColumn{Label: ColumnLabel(i), Value: v}
	}
	return out
}

// Column returns column i of p, or "" when the row is shorter.
func (p ProductEntry) Column(i int) string {
	if i < 0 || i >= len(p.Columns) {
		return ""
	}
	return p.Columns[i]
}
