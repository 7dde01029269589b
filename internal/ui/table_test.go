package ui

import (
	"testing"

	"sortable/internal/model"
	"sortable/internal/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numbered(n int) *TableModel {
	rows := make([][]string, n)
	for i := range rows {
		rows[i] = []string{string(rune('a' + i%26)), "x"}
	}
	rows[0][1] = "keep"
	rows[n-1][1] = "keep"
	return NewTableModel(model.Bind(model.Table{
		Name:       "numbered",
		Headers:    []string{"id", "tag"},
		Rows:       rows,
		Searchable: true,
	}, table.DefaultCollator()))
}

func TestTableModel_CursorClampsAfterSearch(t *testing.T) {
	m := numbered(20)
	m.JumpToBottom()
	require.Equal(t, 19, m.cursor)

	m.Search("keep")
	assert.Equal(t, 1, m.cursor)
	assert.Len(t, m.visibleRows(), 2)

	m.Search("nothing matches")
	assert.Equal(t, 0, m.cursor)
	assert.Equal(t, 0, m.offset)
}

func TestTableModel_ColumnCycling(t *testing.T) {
	m := numbered(3)

	m.PrevColumn()
	assert.Equal(t, 1, m.activeColumn)
	m.NextColumn()
	assert.Equal(t, 0, m.activeColumn)

	assert.True(t, m.JumpToColumn(2))
	assert.Equal(t, 1, m.activeColumn)
	assert.False(t, m.JumpToColumn(3))
	assert.False(t, m.JumpToColumn(0))
}

func TestTableModel_TableMeta(t *testing.T) {
	m := numbered(3)
	assert.Equal(t, "col ID", m.TableMeta())

	_, err := m.ActivateHeader(1)
	require.NoError(t, err)
	_, err = m.ActivateHeader(1)
	require.NoError(t, err)
	m.Search("keep")
	assert.Equal(t, `col TAG  ·  sort TAG desc  ·  search "keep"`, m.TableMeta())
}

func TestTableModel_StatusWithoutSearchBox(t *testing.T) {
	m := NewTableModel(model.Bind(model.Table{Headers: []string{"a"}, Rows: [][]string{{"1"}, {"2"}}}, nil))
	assert.Equal(t, "2 rows", m.Status())
}

func TestTableModel_HalfPage(t *testing.T) {
	m := numbered(20)
	m.viewportHeight = 5

	m.HalfPageDown(10)
	assert.Equal(t, 5, m.cursor)
	assert.Equal(t, 1, m.offset)

	m.HalfPageUp(10)
	assert.Equal(t, 0, m.cursor)
	assert.Equal(t, 0, m.offset)
}

func TestRenderTableRow_TruncatesLongCells(t *testing.T) {
	row := renderTableRow([]string{"a very long cell value"}, []int{10}, NormalRowStyle)
	assert.NotContains(t, row, "\n")
	assert.Contains(t, row, "...")
}
