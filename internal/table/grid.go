package table

// Grid is the table a Controller owns: an ordered header list and an
// ordered row list in live display order.
type Grid interface {
	Headers() []string
	Rows() []Row
	// Reorder makes rows the new live order. It receives exactly the rows
	// returned by Rows, permuted.
	Reorder(rows []Row)
	// MarkSorted clears every header indicator, then marks column.
	MarkSorted(column int, dir Direction)
}

// Row is one data row of a Grid.
type Row interface {
	Cells() []string
	Visible() bool
	SetVisible(visible bool)
}

// Label receives the entry-count text after each search.
type Label interface {
	SetText(text string)
}

// Memory is a Grid backed by plain slices.
type Memory struct {
	headers []string
	rows    []Row
	marked  SortState
}

// MemoryRow is a Row held by a Memory grid.
type MemoryRow struct {
	cells  []string
	hidden bool
}

// NewMemory copies headers and rows into a new grid. Short rows are padded
// with empty cells so every row has one cell per header.
func NewMemory(headers []string, rows [][]string) *Memory {
	m := &Memory{
		headers: append([]string(nil), headers...),
		rows:    make([]Row, 0, len(rows)),
		marked:  SortState{Column: NoColumn},
	}
	for _, r := range rows {
		cells := make([]string, max(len(headers), len(r)))
		copy(cells, r)
		m.rows = append(m.rows, &MemoryRow{cells: cells})
	}
	return m
}

func (m *Memory) Headers() []string { return m.headers }

func (m *Memory) Rows() []Row { return append([]Row(nil), m.rows...) }

func (m *Memory) Reorder(rows []Row) {
	m.rows = append(m.rows[:0], rows...)
}

func (m *Memory) MarkSorted(column int, dir Direction) {
	m.marked = SortState{Column: column, Direction: dir}
}

// Marked returns the header indicator last set by MarkSorted.
func (m *Memory) Marked() SortState { return m.marked }

func (r *MemoryRow) Cells() []string { return r.cells }

func (r *MemoryRow) Visible() bool { return !r.hidden }

func (r *MemoryRow) SetVisible(visible bool) { r.hidden = !visible }

// StaticLabel is a Label that keeps the last text it was given.
type StaticLabel struct {
	Text string
}

func (l *StaticLabel) SetText(text string) { l.Text = text }
