package ui

import (
	"fmt"
	"strings"

	"sortable/internal/model"
	"sortable/internal/table"
	"sortable/internal/util"

	"github.com/charmbracelet/lipgloss"
)

const (
	minColumnWidth = 6
	maxColumnWidth = 40
)

// TableModel renders one controller-backed table and tracks the cursor
// and active column.
type TableModel struct {
	name       string
	ctrl       *table.Controller
	searchable bool

	cursor int
	offset int

	viewportHeight int
	activeColumn   int
}

// NewTableModel creates a table model for a bound table.
func NewTableModel(b model.Binding) *TableModel {
	return &TableModel{
		name:       b.Name,
		ctrl:       b.Controller,
		searchable: b.Searchable,
	}
}

// Name returns the table's display name.
func (m *TableModel) Name() string { return m.name }

// Searchable reports whether the table has a search box.
func (m *TableModel) Searchable() bool { return m.searchable }

// Controller returns the table's controller.
func (m *TableModel) Controller() *table.Controller { return m.ctrl }

// visibleRows returns the rows in live order, skipping hidden ones.
func (m *TableModel) visibleRows() []table.Row {
	all := m.ctrl.Rows()
	rows := make([]table.Row, 0, len(all))
	for _, r := range all {
		if r.Visible() {
			rows = append(rows, r)
		}
	}
	return rows
}

func (m *TableModel) columnCount() int {
	return len(m.ctrl.Headers())
}

func (m *TableModel) clampCursor() {
	n := len(m.visibleRows())
	if n == 0 {
		m.cursor = 0
		m.offset = 0
		return
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.offset > m.cursor {
		m.offset = m.cursor
	}
}

func (m *TableModel) NextColumn() {
	if n := m.columnCount(); n > 0 {
		m.activeColumn = (m.activeColumn + 1) % n
	}
}

func (m *TableModel) PrevColumn() {
	n := m.columnCount()
	if n == 0 {
		return
	}
	m.activeColumn--
	if m.activeColumn < 0 {
		m.activeColumn = n - 1
	}
}

// JumpToColumn makes the 1-based column number active.
func (m *TableModel) JumpToColumn(number int) bool {
	if number < 1 || number > m.columnCount() {
		return false
	}
	m.activeColumn = number - 1
	return true
}

// ActivateHeader sorts by column, toggling direction when it is already
// the sorted column, and returns a message describing the new order.
func (m *TableModel) ActivateHeader(column int) (string, error) {
	if err := m.ctrl.Sort(column); err != nil {
		return "", err
	}
	m.activeColumn = column
	m.clampCursor()
	state := m.ctrl.State()
	label := formatHeaderLabel(m.ctrl.Headers()[column])
	if state.Direction == table.Descending {
		return fmt.Sprintf("Sorted %s descending", label), nil
	}
	return fmt.Sprintf("Sorted %s ascending", label), nil
}

// ActiveColumn is the column the header cursor is on.
func (m *TableModel) ActiveColumn() int { return m.activeColumn }

// Search filters the rows and keeps the cursor on a visible row.
func (m *TableModel) Search(query string) {
	m.ctrl.Search(query)
	m.clampCursor()
}

func (m *TableModel) TableMeta() string {
	headers := m.ctrl.Headers()
	if len(headers) == 0 {
		return ""
	}
	parts := []string{fmt.Sprintf("col %s", formatHeaderLabel(headers[m.activeColumn]))}
	if state := m.ctrl.State(); state.Sorted() {
		parts = append(parts, fmt.Sprintf("sort %s %s", formatHeaderLabel(headers[state.Column]), state.Direction))
	}
	if q := m.ctrl.Query(); q != "" {
		parts = append(parts, fmt.Sprintf("search %q", q))
	}
	return strings.Join(parts, "  ·  ")
}

// Status is the entry-count label for searchable tables, or a plain row
// count for the rest.
func (m *TableModel) Status() string {
	if m.searchable {
		return m.ctrl.Status()
	}
	return fmt.Sprintf("%d rows", m.ctrl.Total())
}

func (m *TableModel) columnWidths(width int) []int {
	headers := m.ctrl.Headers()
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = util.DisplayWidth(formatHeaderLabel(h)) + 2
	}
	for _, r := range m.ctrl.Rows() {
		for i, c := range r.Cells() {
			if i < len(widths) {
				widths[i] = max(widths[i], util.DisplayWidth(util.CellText(c)))
			}
		}
	}
	total := 0
	for i := range widths {
		widths[i] = min(max(widths[i]+2, minColumnWidth), maxColumnWidth)
		total += widths[i]
	}
	if extra := width - total; extra > 0 && len(widths) > 0 {
		widths[len(widths)-1] += extra
	}
	return widths
}

// View renders the table.
func (m *TableModel) View(width, height int) string {
	headers := m.ctrl.Headers()
	if len(headers) == 0 {
		return EmptyStateStyle.Width(width).Height(height).Render("This table has no header cells.")
	}
	if m.activeColumn >= len(headers) {
		m.activeColumn = 0
	}

	widths := m.columnWidths(width)
	state := m.ctrl.State()
	labels := make([]string, len(headers))
	for i, h := range headers {
		label := formatHeaderLabel(h)
		if state.Sorted() && state.Column == i {
			label += " " + sortIndicator(state.Direction)
		}
		if i == m.activeColumn {
			label = renderActiveHeaderLabel(label)
		}
		labels[i] = label
	}

	header := renderTableRow(labels, widths, TableHeaderStyle)
	divider := renderTableDivider(widths)

	visibleHeight := height - 3
	if visibleHeight < 1 {
		visibleHeight = 1
	}
	m.viewportHeight = visibleHeight

	rows := m.visibleRows()
	var lines []string
	if len(rows) == 0 {
		lines = append(lines, EmptyStateStyle.Render("No matching entries."))
	}
	for i := m.offset; i < len(rows) && i < m.offset+visibleHeight; i++ {
		style := NormalRowStyle
		if i == m.cursor {
			style = SelectedRowStyle
		}
		cells := make([]string, len(headers))
		for j, c := range rows[i].Cells() {
			if j < len(cells) {
				cells[j] = util.CellText(c)
			}
		}
		lines = append(lines, renderTableRow(cells, widths, style))
	}

	rowPos := ""
	if len(rows) > 0 {
		rowPos = fmt.Sprintf("  ·  row %d/%d", m.cursor+1, len(rows))
	}
	meta := m.TableMeta()
	if meta != "" {
		meta = "  ·  " + meta
	}
	status := StatusBarStyle.Render(fmt.Sprintf("%s%s%s", m.Status(), rowPos, meta))

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		divider,
		strings.Join(lines, "\n"),
	)
	spacerHeight := max(0, height-lipgloss.Height(content)-lipgloss.Height(status))
	spacer := lipgloss.NewStyle().Height(spacerHeight).Render("")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		spacer,
		status,
	)
}

func sortIndicator(dir table.Direction) string {
	if dir == table.Descending {
		return SortIndicatorStyle.Render("↓")
	}
	return SortIndicatorStyle.Render("↑")
}

func formatHeaderLabel(label string) string {
	return strings.ToUpper(util.CellText(label))
}

func renderActiveHeaderLabel(label string) string {
	return lipgloss.NewStyle().Underline(true).Render(label)
}

// renderTableRow renders one line; cells are cut to fit their column so a
// row never wraps.
func renderTableRow(cells []string, widths []int, style lipgloss.Style) string {
	var parts []string
	for i, cell := range cells {
		if i >= len(widths) {
			continue
		}
		inner := widths[i] - style.GetHorizontalPadding()
		if lipgloss.Width(cell) > inner {
			cell = util.TruncateString(cell, inner)
		}
		parts = append(parts, style.Width(widths[i]).MaxHeight(1).Render(cell))
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, parts...)
}

func renderTableDivider(widths []int) string {
	total := 0
	for _, w := range widths {
		total += w
	}
	return DividerStyle.Render(strings.Repeat("─", total))
}

// MoveDown moves the cursor down.
func (m *TableModel) MoveDown() {
	if m.cursor < len(m.visibleRows())-1 {
		m.cursor++
		vh := m.viewport()
		if m.cursor >= m.offset+vh {
			m.offset++
		}
	}
}

// MoveUp moves the cursor up.
func (m *TableModel) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
		if m.cursor < m.offset {
			m.offset--
		}
	}
}

// JumpToTop jumps to the first row.
func (m *TableModel) JumpToTop() {
	m.cursor = 0
	m.offset = 0
}

// JumpToBottom jumps to the last row.
func (m *TableModel) JumpToBottom() {
	n := len(m.visibleRows())
	if n > 0 {
		m.cursor = n - 1
		vh := m.viewport()
		if m.cursor >= vh {
			m.offset = m.cursor - vh + 1
		}
	}
}

// HalfPageDown moves down half a page.
func (m *TableModel) HalfPageDown(pageSize int) {
	m.cursor += pageSize / 2
	m.clampCursor()
	vh := m.viewport()
	if m.cursor >= m.offset+vh {
		m.offset = m.cursor - vh + 1
	}
}

// HalfPageUp moves up half a page.
func (m *TableModel) HalfPageUp(pageSize int) {
	m.cursor -= pageSize / 2
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
}

func (m *TableModel) viewport() int {
	if m.viewportHeight == 0 {
		return 10
	}
	return m.viewportHeight
}
