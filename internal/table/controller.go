// Package table implements column sorting and free-text row filtering over
// an owned Grid.
package table

import (
	"errors"
	"fmt"
)

// ErrColumnOutOfRange is returned by Sort for a column with no header.
var ErrColumnOutOfRange = errors.New("column out of range")

// Controller adds sorting and searching to one Grid. It keeps a snapshot of
// the rows taken at construction so searching always covers the same row
// set, whatever order sorting has left them in.
type Controller struct {
	grid     Grid
	label    Label
	collator *Collator
	original []Row
	state    SortState
	query    string
}

// Option configures a Controller.
type Option func(*Controller)

// WithLabel attaches the entry-count label. Without one, searching still
// works but no status text is published.
func WithLabel(l Label) Option {
	return func(c *Controller) { c.label = l }
}

// WithCollator sets the string collation used for non-numeric cells.
func WithCollator(coll *Collator) Option {
	return func(c *Controller) {
		if coll != nil {
			c.collator = coll
		}
	}
}

// New creates a controller for grid.
func New(grid Grid, opts ...Option) *Controller {
	c := &Controller{
		grid:     grid,
		original: grid.Rows(),
		state:    SortState{Column: NoColumn, Direction: Ascending},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.collator == nil {
		c.collator = DefaultCollator()
	}
	if c.label != nil {
		c.label.SetText(StatusText(len(c.original), len(c.original), ""))
	}
	return c
}

// Sort activates the header at column. Activating the sorted column again
// flips direction; any other column sorts ascending. Rows are reordered in
// their current live order with a stable sort.
func (c *Controller) Sort(column int) error {
	if n := len(c.grid.Headers()); column < 0 || column >= n {
		return fmt.Errorf("%w: %d (table has %d columns)", ErrColumnOutOfRange, column, n)
	}
	c.state = c.state.Next(column)
	c.grid.MarkSorted(c.state.Column, c.state.Direction)

	rows := c.grid.Rows()
	values := make([]Value, len(rows))
	for i, r := range rows {
		values[i] = ParseValue(cellAt(r, column))
	}
	order := Order(values, c.state.Direction, c.collator)
	sorted := make([]Row, len(rows))
	for i, j := range order {
		sorted[i] = rows[j]
	}
	c.grid.Reorder(sorted)
	return nil
}

// Search shows the rows whose text contains query, case-insensitively, and
// hides the rest. Visibility is recomputed for every row each call.
func (c *Controller) Search(query string) {
	c.query = query
	cells := make([][]string, len(c.original))
	for i, r := range c.original {
		cells[i] = r.Cells()
	}
	visible := 0
	for i, ok := range Filter(cells, query) {
		c.original[i].SetVisible(ok)
		if ok {
			visible++
		}
	}
	if c.label != nil {
		c.label.SetText(StatusText(visible, len(c.original), query))
	}
}

// State returns the current sort state.
func (c *Controller) State() SortState { return c.state }

// Query returns the last search query.
func (c *Controller) Query() string { return c.query }

// Total is the number of rows captured at construction.
func (c *Controller) Total() int { return len(c.original) }

// VisibleCount counts the rows currently flagged visible.
func (c *Controller) VisibleCount() int {
	n := 0
	for _, r := range c.original {
		if r.Visible() {
			n++
		}
	}
	return n
}

// Status is the entry-count text for the current query.
func (c *Controller) Status() string {
	return StatusText(c.VisibleCount(), c.Total(), c.query)
}

// Headers returns the grid's header labels.
func (c *Controller) Headers() []string { return c.grid.Headers() }

// Rows returns the rows in live order, hidden ones included.
func (c *Controller) Rows() []Row { return c.grid.Rows() }

// Collator returns the collator in use.
func (c *Controller) Collator() *Collator { return c.collator }

func cellAt(r Row, column int) string {
	cells := r.Cells()
	if column >= len(cells) {
		return ""
	}
	return cells[column]
}
