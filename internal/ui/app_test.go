package ui

import (
	"errors"
	"strings"
	"testing"

	"sortable/internal/model"
	"sortable/internal/table"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBindings() []model.Binding {
	people := model.Table{
		Name:       "people",
		Headers:    []string{"name", "age"},
		Rows:       [][]string{{"Bob", "30"}, {"Ann", "25"}, {"Cy", "25"}},
		Searchable: true,
	}
	scores := model.Table{
		Name:    "scores",
		Headers: []string{"model", "score"},
		Rows:    [][]string{{"beta", "68.03±2.74"}, {"alpha", "12.5±0.3"}},
	}
	coll := table.DefaultCollator()
	return []model.Binding{model.Bind(people, coll), model.Bind(scores, coll)}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// messages runs cmd and flattens batches into the messages they produce.
func messages(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, messages(c)...)
	}
	return out
}

// send delivers msgs in order, feeding the header and query messages that
// each update emits back into the model the way the program loop would.
func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, cmd := m.Update(msg)
		var ok bool
		m, ok = updated.(Model)
		require.True(t, ok)
		for _, emitted := range messages(cmd) {
			switch emitted.(type) {
			case model.HeaderActivatedMsg, model.QueryChangedMsg:
				m = send(t, m, emitted)
			}
		}
	}
	return m
}

func loadedModel(t *testing.T) Model {
	t.Helper()
	m := New("sortable", func() ([]model.Binding, error) { return testBindings(), nil }, "Search table...")
	m.search.Cursor.SetMode(cursor.CursorStatic)
	msg := m.Init()()
	require.IsType(t, model.TablesLoadedMsg{}, msg)
	return send(t, m, msg, tea.WindowSizeMsg{Width: 100, Height: 30})
}

func names(m Model) []string {
	var out []string
	for _, r := range m.currentTableModel().visibleRows() {
		out = append(out, r.Cells()[0])
	}
	return out
}

func TestModel_SortByNumberKeyToggles(t *testing.T) {
	m := loadedModel(t)

	m = send(t, m, runes("2"))
	assert.Equal(t, []string{"Ann", "Cy", "Bob"}, names(m))
	assert.Equal(t, "Sorted AGE ascending", m.info)

	m = send(t, m, runes("2"))
	assert.Equal(t, []string{"Bob", "Ann", "Cy"}, names(m))
	assert.Equal(t, "Sorted AGE descending", m.info)
}

func TestModel_SortActiveColumnWithEnter(t *testing.T) {
	m := loadedModel(t)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{"Ann", "Bob", "Cy"}, names(m))

	m = send(t, m, runes("l"), runes("s"))
	assert.Equal(t, table.SortState{Column: 1, Direction: table.Ascending}, m.currentTableModel().Controller().State())
}

func TestModel_SortUnavailableColumn(t *testing.T) {
	m := loadedModel(t)

	m = send(t, m, runes("7"))
	assert.Equal(t, "Column 7 unavailable", m.info)
	assert.False(t, m.currentTableModel().Controller().State().Sorted())
}

func TestModel_HeaderActivatedOutOfRange(t *testing.T) {
	m := loadedModel(t)

	m = send(t, m, model.HeaderActivatedMsg{Column: 5})
	assert.Contains(t, m.error, "column out of range")
}

func TestModel_SearchFiltersOnEveryKeystroke(t *testing.T) {
	m := loadedModel(t)

	m = send(t, m, runes("/"))
	require.Equal(t, model.ModeSearch, m.mode)

	m = send(t, m, runes("2"))
	assert.Equal(t, []string{"Ann", "Cy"}, names(m))
	m = send(t, m, runes("5"))
	assert.Equal(t, []string{"Ann", "Cy"}, names(m))
	assert.Equal(t, "Showing 2 of 3 entries (filtered)", m.currentTableModel().Status())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, model.ModeNav, m.mode)
	assert.Equal(t, "25", m.currentTableModel().Controller().Query())

	m = send(t, m, runes("/"), tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, []string{"Bob", "Ann", "Cy"}, names(m))
	assert.Equal(t, "Showing 3 entries", m.currentTableModel().Status())
}

func TestModel_SortKeepsHiddenRowsHidden(t *testing.T) {
	m := loadedModel(t)

	m = send(t, m, model.QueryChangedMsg{Query: "an"})
	m = send(t, m, model.HeaderActivatedMsg{Column: 0})
	assert.Equal(t, []string{"Ann"}, names(m))
}

func TestModel_SearchUnavailableWithoutSearchBox(t *testing.T) {
	m := loadedModel(t)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, "scores", m.currentTableModel().Name())

	m = send(t, m, runes("/"))
	assert.Equal(t, model.ModeNav, m.mode)
	assert.Equal(t, "Search is not available for this table", m.info)

	m = send(t, m, model.QueryChangedMsg{Query: "zzz"})
	assert.Equal(t, 2, m.currentTableModel().Controller().VisibleCount())
}

func TestModel_SwitchTableRestoresQuery(t *testing.T) {
	m := loadedModel(t)

	m = send(t, m, runes("/"), runes("b"), tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "", m.search.Value())
	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "b", m.search.Value())
}

func TestModel_ViewShowsIndicatorAndStatus(t *testing.T) {
	m := loadedModel(t)
	m = send(t, m, runes("2"))

	view := m.View()
	assert.Contains(t, view, "AGE ↑")
	assert.Contains(t, view, "Showing 3 entries")
	assert.Contains(t, view, "people")
	assert.Contains(t, view, "table 1/2")

	m = send(t, m, runes("2"))
	assert.Contains(t, m.View(), "AGE ↓")
}

func TestModel_LoadError(t *testing.T) {
	m := New("sortable", func() ([]model.Binding, error) { return nil, errors.New("boom") }, "")
	m = send(t, m, m.Init()(), tea.WindowSizeMsg{Width: 80, Height: 20})

	view := m.View()
	assert.Contains(t, view, "Error: failed to load tables: boom")
	assert.Contains(t, view, "No sortable tables found.")
}

func TestModel_QuitAndHelp(t *testing.T) {
	m := loadedModel(t)

	m = send(t, m, runes("?"))
	assert.True(t, m.showingHelp)
	assert.True(t, strings.Contains(m.View(), "Sorting"))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showingHelp)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_KeysEmitHandlerMessages(t *testing.T) {
	m := loadedModel(t)

	_, cmd := m.Update(runes("2"))
	assert.Equal(t, []tea.Msg{model.HeaderActivatedMsg{Column: 1}}, messages(cmd))

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []tea.Msg{model.HeaderActivatedMsg{Column: 0}}, messages(cmd))

	m = send(t, m, runes("/"))
	updated, cmd := m.Update(runes("a"))
	assert.Contains(t, messages(cmd), tea.Msg(model.QueryChangedMsg{Query: "a"}))
	um := updated.(Model)
	assert.Equal(t, 3, um.currentTableModel().Controller().VisibleCount())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, []tea.Msg{model.QueryChangedMsg{Query: ""}}, messages(cmd))
}
