// Package report turns the row stream of a subtotalled product report into
// category sections and a SKU lookup index.
//
// The report format is positional: a product row carries its SKU in cell 1 and
// its name in cell 2, and every category ends with a subtotal row whose text
// contains "Total:". Products that follow the last subtotal row are not part
// of any category and are dropped.
package report

// ProductEntry is one product row. Columns is the full trimmed cell list of the
// source row, SKU and Name included at their fixed positions.
type ProductEntry struct {
	SKU     string   `json:"sku"`
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
}

// Section is a run of product rows closed by one subtotal row.
type Section struct {
	CategoryName string         `json:"category_name"`
	Products     []ProductEntry `json:"products"`
}

// SKUResult pairs a product with the category of the section it appeared in.
type SKUResult struct {
	CategoryName string       `json:"category_name"`
	Product      ProductEntry `json:"product"`
}
