package htmldoc

import (
	"sortable/internal/table"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	classSortAsc  = "sort-asc"
	classSortDesc = "sort-desc"
)

// nodeGrid is a table.Grid over a parsed <table> element. It mutates the
// node tree in place.
type nodeGrid struct {
	headers []*html.Node
	tbody   *html.Node
}

type nodeRow struct {
	tr *html.Node
}

type nodeLabel struct {
	div *html.Node
}

func newNodeGrid(tableNode *html.Node) *nodeGrid {
	g := &nodeGrid{}
	if thead := findFirst(tableNode, func(n *html.Node) bool { return isElement(n, atom.Thead) }); thead != nil {
		g.headers = findNodes(thead, func(n *html.Node) bool { return isElement(n, atom.Th) })
	}
	g.tbody = findFirst(tableNode, func(n *html.Node) bool { return isElement(n, atom.Tbody) })
	return g
}

func (g *nodeGrid) Headers() []string {
	out := make([]string, len(g.headers))
	for i, th := range g.headers {
		out[i] = textContent(th)
	}
	return out
}

func (g *nodeGrid) Rows() []table.Row {
	if g.tbody == nil {
		return nil
	}
	var rows []table.Row
	for _, tr := range children(g.tbody, func(n *html.Node) bool { return isElement(n, atom.Tr) }) {
		rows = append(rows, &nodeRow{tr: tr})
	}
	return rows
}

// Reorder moves each row to the end of the tbody in turn, which leaves
// them in the given order after any non-row children.
func (g *nodeGrid) Reorder(rows []table.Row) {
	if g.tbody == nil {
		return
	}
	for _, r := range rows {
		tr := r.(*nodeRow).tr
		g.tbody.RemoveChild(tr)
		g.tbody.AppendChild(tr)
	}
}

func (g *nodeGrid) MarkSorted(column int, dir table.Direction) {
	for _, th := range g.headers {
		removeClasses(th, classSortAsc, classSortDesc)
	}
	if column < 0 || column >= len(g.headers) {
		return
	}
	class := classSortAsc
	if dir == table.Descending {
		class = classSortDesc
	}
	addClass(g.headers[column], class)
}

func (r *nodeRow) Cells() []string {
	cells := children(r.tr, func(n *html.Node) bool {
		return isElement(n, atom.Td) || isElement(n, atom.Th)
	})
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = textContent(c)
	}
	return out
}

func (r *nodeRow) Visible() bool { return !isHidden(r.tr) }

func (r *nodeRow) SetVisible(visible bool) { setHidden(r.tr, !visible) }

func (l *nodeLabel) SetText(text string) { setTextContent(l.div, text) }
