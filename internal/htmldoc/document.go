// Package htmldoc enhances the sortable tables of an HTML document. Each
// table gets its own table.Controller that operates directly on the parsed
// node tree, and the document can be rendered back out after sorting and
// searching.
package htmldoc

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"sortable/internal/table"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	DefaultMarkerClass    = "sortable"
	DefaultContainerClass = "research-table"
	DefaultPlaceholder    = "Search table..."
)

// Options selects the markup conventions a document follows.
type Options struct {
	// MarkerClass designates tables to enhance.
	MarkerClass string
	// ContainerClass designates the wrapper that receives the search box
	// and entry-count label.
	ContainerClass string
	Placeholder    string
	Collator       *table.Collator
}

func (o Options) withDefaults() Options {
	if o.MarkerClass == "" {
		o.MarkerClass = DefaultMarkerClass
	}
	if o.ContainerClass == "" {
		o.ContainerClass = DefaultContainerClass
	}
	if o.Placeholder == "" {
		o.Placeholder = DefaultPlaceholder
	}
	return o
}

// Document is a parsed HTML document with its enhanced tables.
type Document struct {
	root   *html.Node
	tables []*Table
}

// Table is one enhanced table.
type Table struct {
	name       string
	node       *html.Node
	controller *table.Controller
	search     *html.Node
}

// Parse reads an HTML document and attaches a controller to every table
// carrying the marker class.
func Parse(r io.Reader, opts Options) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}
	opts = opts.withDefaults()

	doc := &Document{root: root}
	nodes := findNodes(root, func(n *html.Node) bool {
		return isElement(n, atom.Table) && hasClass(n, opts.MarkerClass)
	})
	for i, n := range nodes {
		doc.tables = append(doc.tables, enhance(n, i, opts))
	}
	slog.Info("initialized sortable tables", "count", len(doc.tables))
	return doc, nil
}

func enhance(n *html.Node, index int, opts Options) *Table {
	t := &Table{name: tableName(n, index), node: n}
	grid := newNodeGrid(n)

	ctrlOpts := []table.Option{table.WithCollator(opts.Collator)}
	container := closest(n, func(c *html.Node) bool { return hasClass(c, opts.ContainerClass) })
	if container != nil {
		controls, search, info := buildControls(opts.Placeholder)
		insertBefore(container, n, controls)
		t.search = search
		ctrlOpts = append(ctrlOpts, table.WithLabel(&nodeLabel{div: info}))
	} else {
		slog.Debug("table has no container, search disabled", "table", t.name, "container", opts.ContainerClass)
	}
	t.controller = table.New(grid, ctrlOpts...)
	return t
}

// buildControls creates the search box and entry-count label block.
func buildControls(placeholder string) (controls, input, info *html.Node) {
	controls = element(atom.Div, "class", "table-controls")
	searchBox := element(atom.Div, "class", "search-box")
	input = element(atom.Input, "type", "text", "placeholder", placeholder, "class", "table-search")
	info = element(atom.Div, "class", "table-info")

	searchBox.AppendChild(input)
	controls.AppendChild(searchBox)
	controls.AppendChild(info)
	return controls, input, info
}

// insertBefore places controls directly above target inside container. A
// target nested deeper than one level is represented by the container
// child that holds it. A table that is its own container gets the controls
// as its preceding sibling.
func insertBefore(container, target, controls *html.Node) {
	if target == container {
		if target.Parent != nil {
			target.Parent.InsertBefore(controls, target)
		}
		return
	}
	anchor := target
	for anchor.Parent != container {
		anchor = anchor.Parent
	}
	container.InsertBefore(controls, anchor)
}

func tableName(n *html.Node, index int) string {
	if id, ok := getAttr(n, "id"); ok && strings.TrimSpace(id) != "" {
		return strings.TrimSpace(id)
	}
	if caption := findFirst(n, func(c *html.Node) bool { return isElement(c, atom.Caption) }); caption != nil {
		if text := strings.Join(strings.Fields(textContent(caption)), " "); text != "" {
			return text
		}
	}
	return "table " + strconv.Itoa(index+1)
}

// Tables returns the enhanced tables in document order.
func (d *Document) Tables() []*Table { return d.tables }

// Render writes the document, including every change made by the
// controllers, to w.
func (d *Document) Render(w io.Writer) error {
	if err := html.Render(w, d.root); err != nil {
		return fmt.Errorf("failed to render html: %w", err)
	}
	return nil
}

// Name is the table's id, its caption, or its position in the document.
func (t *Table) Name() string { return t.name }

// Controller returns the table's controller.
func (t *Table) Controller() *table.Controller { return t.controller }

// Searchable reports whether the table received a search box.
func (t *Table) Searchable() bool { return t.search != nil }

// Search runs a search and mirrors the query into the generated input's
// value attribute so the rendered page shows what it was filtered by.
func (t *Table) Search(query string) {
	if t.search != nil {
		if query == "" {
			removeAttr(t.search, "value")
		} else {
			setAttr(t.search, "value", query)
		}
	}
	t.controller.Search(query)
}
