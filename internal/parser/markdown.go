package parser

import (
	"io"

	"github.com/dgallion1/skufinder/internal/table"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser reads GitHub-style pipe tables using goldmark. The header row
// of each table is emitted like any other row.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*table.Table, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	doc := md.Parser().Parse(text.NewReader(src))

	tbl := &table.Table{Title: stem(filename)}
	titled := false

	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			if !titled && node.Level == 1 {
				tbl.Title = string(node.Text(src))
				titled = true
			}
			return ast.WalkSkipChildren, nil
		case *extast.TableHeader, *extast.TableRow:
			tbl.Rows = append(tbl.Rows, markdownRow(node, src))
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	return tbl, nil
}

func markdownRow(n ast.Node, src []byte) table.Row {
	var cells []string
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if _, ok := c.(*extast.TableCell); ok {
			cells = append(cells, string(c.Text(src)))
		}
	}
	return table.NewRow(cells...)
}
