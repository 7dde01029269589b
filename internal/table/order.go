package table

import (
	"cmp"
	"fmt"
	"sort"
	"strings"
)

// Direction is the sort direction of a column.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// Toggle flips ascending and descending.
func (d Direction) Toggle() Direction {
	if d == Descending {
		return Ascending
	}
	return Descending
}

// NoColumn marks a SortState that has not sorted anything yet.
const NoColumn = -1

// SortState is the active sorted column and its direction.
type SortState struct {
	Column    int
	Direction Direction
}

// Sorted reports whether a column has been sorted.
func (s SortState) Sorted() bool {
	return s.Column != NoColumn
}

// Next returns the state after activating column: the same column flips
// direction, any other column starts ascending.
func (s SortState) Next(column int) SortState {
	if s.Column == column {
		return SortState{Column: column, Direction: s.Direction.Toggle()}
	}
	return SortState{Column: column, Direction: Ascending}
}

// Compare orders two values. Two numbers compare numerically; any other
// pair falls back to the collator on the trimmed text.
func Compare(a, b Value, coll *Collator) int {
	if a.IsNumeric() && b.IsNumeric() {
		return cmp.Compare(a.Num, b.Num)
	}
	return coll.Compare(a.Raw, b.Raw)
}

// Order returns the stable permutation that sorts values in dir. Ties keep
// their input order in both directions.
func Order(values []Value, dir Direction, coll *Collator) []int {
	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		c := Compare(values[idx[i]], values[idx[j]], coll)
		if dir == Descending {
			c = -c
		}
		return c < 0
	})
	return idx
}

// Match reports whether the lower-cased cells, joined by a space, contain
// the lower-cased query. The empty query matches every row.
func Match(cells []string, query string) bool {
	if query == "" {
		return true
	}
	lowered := make([]string, len(cells))
	for i, c := range cells {
		lowered[i] = strings.ToLower(c)
	}
	return strings.Contains(strings.Join(lowered, " "), strings.ToLower(query))
}

// Filter returns the visibility of each row for query.
func Filter(rows [][]string, query string) []bool {
	visible := make([]bool, len(rows))
	for i, cells := range rows {
		visible[i] = Match(cells, query)
	}
	return visible
}

// StatusText is the entry-count label shown next to the search box.
func StatusText(visible, total int, query string) string {
	if query == "" {
		return fmt.Sprintf("Showing %d entries", total)
	}
	return fmt.Sprintf("Showing %d of %d entries (filtered)", visible, total)
}
