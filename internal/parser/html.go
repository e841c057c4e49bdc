package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dgallion1/skufinder/internal/table"
	"golang.org/x/net/html"
)

// HTMLParser reads every <tr> of an HTML document. Cells are the <td>
// descendants of the row; header <th> cells only contribute to the row text.
type HTMLParser struct{}

func (p *HTMLParser) Parse(r io.Reader, filename string) (*table.Table, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	doc := goquery.NewDocumentFromNode(root)

	tbl := &table.Table{Title: stem(filename)}
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		tbl.Title = title
	}

	// Nested tables yield their rows too, in document order.
	doc.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td").Map(func(_ int, td *goquery.Selection) string {
			return td.Text()
		})
		tbl.Rows = append(tbl.Rows, table.Row{Cells: cells, Text: tr.Text()})
	})

	return tbl, nil
}
