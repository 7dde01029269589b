package model

import "sortable/internal/table"

// Table is tabular data loaded from a source other than markup.
type Table struct {
	Name       string
	Headers    []string
	Rows       [][]string
	Searchable bool
}

// Binding is one table wired to its controller, ready for display.
type Binding struct {
	Name       string
	Controller *table.Controller
	// Searchable reports whether the table has a search box and entry
	// count. Tables without one can still be sorted.
	Searchable bool
}

// Bind wraps t in an in-memory grid with its own controller.
func Bind(t Table, coll *table.Collator) Binding {
	return Binding{
		Name:       t.Name,
		Controller: table.New(table.NewMemory(t.Headers, t.Rows), table.WithCollator(coll)),
		Searchable: t.Searchable,
	}
}
