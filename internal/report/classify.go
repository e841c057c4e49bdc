package report

import (
	"regexp"
	"strings"

	"github.com/dgallion1/skufinder/internal/table"
)

// Positional layout of the source report.
const (
	// TerminatorMarker marks a subtotal row that closes a section.
	TerminatorMarker = "Total:"
	// SKUColumn is the cell index holding the SKU on product rows.
	SKUColumn = 1
	// NameColumn is the cell index holding the product name.
	NameColumn = 2
	// MinProductCells is the fewest cells a product row can have.
	MinProductCells = 3
)

var skuPattern = regexp.MustCompile(`^[0-9]+$`)

// Kind is the role a row plays in the report.
type Kind int

const (
	KindNoise Kind = iota
	KindTerminator
	KindProduct
)

func (k Kind) String() string {
	switch k {
	case KindTerminator:
		return "terminator"
	case KindProduct:
		return "product"
	default:
		return "noise"
	}
}

// Classification is the outcome of classifying one row. CategoryName is set for
// terminator rows, Product for product rows.
type Classification struct {
	Kind         Kind
	CategoryName string
	Product      ProductEntry
}

// IsSKU reports whether s is a bare run of ASCII digits.
func IsSKU(s string) bool {
	return skuPattern.MatchString(s)
}

// Classify decides whether row closes a section, is a product, or is noise.
// The terminator check runs first and wins even if the row also has a valid SKU.
func Classify(row table.Row) Classification {
	if strings.Contains(rowText(row), TerminatorMarker) {
		return Classification{Kind: KindTerminator, CategoryName: categoryName(row)}
	}

	if row.Len() < MinProductCells {
		return Classification{Kind: KindNoise}
	}
	sku := strings.TrimSpace(row.Cell(SKUColumn))
	if !IsSKU(sku) {
		return Classification{Kind: KindNoise}
	}

	columns := make([]string, row.Len())
	for i, cell := range row.Cells {
		columns[i] = strings.TrimSpace(cell)
	}
	return Classification{
		Kind: KindProduct,
		Product: ProductEntry{
			SKU:     sku,
			Name:    columns[NameColumn],
			Columns: columns,
		},
	}
}

// categoryName is the first cell's text before the first marker, trimmed.
func categoryName(row table.Row) string {
	if row.Len() == 0 {
		return ""
	}
	first := row.Cells[0]
	if i := strings.Index(first, TerminatorMarker); i >= 0 {
		first = first[:i]
	}
	return strings.TrimSpace(first)
}

func rowText(row table.Row) string {
	if row.Text != "" {
		return row.Text
	}
	return strings.Join(row.Cells, "")
}
