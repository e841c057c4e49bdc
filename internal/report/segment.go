package report

import "github.com/dgallion1/skufinder/internal/table"

// Segment groups product rows into sections, one per terminator row, in
// document order. Empty sections are kept. Product rows after the last
// terminator are discarded.
func Segment(rows []table.Row) []Section {
	sections, _ := segment(rows)
	return sections
}

// segment also reports how many trailing product rows were discarded.
func segment(rows []table.Row) ([]Section, int) {
	var sections []Section
	current := []ProductEntry{}

	for _, row := range rows {
		c := Classify(row)
		switch c.Kind {
		case KindTerminator:
			sections = append(sections, Section{
				CategoryName: c.CategoryName,
				Products:     current,
			})
			current = []ProductEntry{}
		case KindProduct:
			current = append(current, c.Product)
		}
	}

	return sections, len(current)
}
