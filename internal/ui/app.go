package ui

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"sortable/internal/model"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Loader produces the tables to display.
type Loader func() ([]model.Binding, error)

// Model is the root Bubble Tea model.
type Model struct {
	loader Loader
	title  string
	mode   model.Mode
	gState GState

	width  int
	height int

	error       string
	info        string
	showingHelp bool
	loaded      bool

	tables  []*TableModel
	current int

	search     textinput.Model
	keys       KeyMap
	searchKeys SearchKeyMap
}

// New creates a new root model. placeholder is shown in the empty search
// box.
func New(title string, loader Loader, placeholder string) Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = placeholder
	ti.CharLimit = 256

	return Model{
		loader:     loader,
		title:      title,
		mode:       model.ModeNav,
		gState:     GStateIdle,
		search:     ti,
		keys:       DefaultKeyMap(),
		searchKeys: DefaultSearchKeyMap(),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return loadTablesCmd(m.loader)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.search.Width = max(10, msg.Width/2)
		return m, nil

	case model.ErrorMsg:
		m.error = msg.Err.Error()
		m.loaded = true
		return m, nil

	case model.TablesLoadedMsg:
		m.tables = make([]*TableModel, 0, len(msg.Tables))
		for _, b := range msg.Tables {
			m.tables = append(m.tables, NewTableModel(b))
		}
		m.current = 0
		m.loaded = true
		m.error = ""
		m.syncSearchInput()
		slog.Debug("tables loaded", "count", len(m.tables))
		return m, nil

	case model.HeaderActivatedMsg:
		m.onHeaderActivated(msg.Column)
		return m, nil

	case model.QueryChangedMsg:
		m.onQueryChanged(msg.Query)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.mode == model.ModeSearch {
			return m.handleSearchMode(msg)
		}

		if msg.String() == "?" {
			m.showingHelp = !m.showingHelp
			return m, nil
		}
		if m.showingHelp {
			if msg.String() == "esc" {
				m.showingHelp = false
			}
			return m, nil
		}
		return m.handleNavMode(msg)
	}

	if m.mode == model.ModeSearch {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// onHeaderActivated sorts the current table by column.
func (m *Model) onHeaderActivated(column int) {
	t := m.currentTableModel()
	if t == nil {
		return
	}
	info, err := t.ActivateHeader(column)
	if err != nil {
		m.error = err.Error()
		return
	}
	m.error = ""
	m.info = info
	slog.Debug("sorted", "table", t.Name(), "column", column, "direction", t.Controller().State().Direction)
}

// onQueryChanged filters the current table with the search box text.
func (m *Model) onQueryChanged(query string) {
	t := m.currentTableModel()
	if t == nil || !t.Searchable() {
		return
	}
	t.Search(query)
}

func (m Model) handleSearchMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.searchKeys.Done):
		m.mode = model.ModeNav
		m.search.Blur()
		return m, nil
	case key.Matches(msg, m.searchKeys.Cancel):
		m.mode = model.ModeNav
		m.search.Blur()
		m.search.SetValue("")
		return m, queryChangedCmd("")
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if after := m.search.Value(); after != before {
		return m, tea.Batch(cmd, queryChangedCmd(after))
	}
	return m, cmd
}

// handleNavMode handles navigation mode input.
func (m Model) handleNavMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	t := m.currentTableModel()
	if t == nil {
		return m, nil
	}

	// Handle "gg" state machine
	if key.Matches(msg, m.keys.Top) {
		if m.gState == GStateFirstG {
			m.gState = GStateIdle
			t.JumpToTop()
			return m, nil
		}
		m.gState = GStateFirstG
		return m, nil
	}
	m.gState = GStateIdle

	var ctrl tableController = t
	switch {
	case key.Matches(msg, m.keys.Down):
		t.MoveDown()
	case key.Matches(msg, m.keys.Up):
		t.MoveUp()
	case key.Matches(msg, m.keys.Right):
		ctrl.NextColumn()
	case key.Matches(msg, m.keys.Left):
		ctrl.PrevColumn()
	case key.Matches(msg, m.keys.Sort):
		return m, headerActivatedCmd(ctrl.ActiveColumn())
	case key.Matches(msg, m.keys.SortColumn):
		n, _ := strconv.Atoi(msg.String())
		if !ctrl.JumpToColumn(n) {
			m.info = fmt.Sprintf("Column %d unavailable", n)
			return m, nil
		}
		return m, headerActivatedCmd(n - 1)
	case key.Matches(msg, m.keys.Search):
		if !t.Searchable() {
			m.info = "Search is not available for this table"
			return m, nil
		}
		m.mode = model.ModeSearch
		m.info = ""
		cmd := m.search.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.NextTable):
		m.switchTable(1)
	case key.Matches(msg, m.keys.PrevTable):
		m.switchTable(-1)
	case key.Matches(msg, m.keys.Bottom):
		t.JumpToBottom()
	case key.Matches(msg, m.keys.HalfPageDown):
		t.HalfPageDown(m.height / 2)
	case key.Matches(msg, m.keys.HalfPageUp):
		t.HalfPageUp(m.height / 2)
	case key.Matches(msg, m.keys.Back):
		m.info = ""
		m.error = ""
	}
	return m, nil
}

func (m *Model) switchTable(delta int) {
	if len(m.tables) < 2 {
		return
	}
	m.current = (m.current + delta + len(m.tables)) % len(m.tables)
	m.syncSearchInput()
	m.info = ""
	m.error = ""
}

// syncSearchInput shows the current table's own query in the search box.
func (m *Model) syncSearchInput() {
	if t := m.currentTableModel(); t != nil {
		m.search.SetValue(t.Controller().Query())
		return
	}
	m.search.SetValue("")
}

func (m *Model) currentTableModel() *TableModel {
	if m.current < 0 || m.current >= len(m.tables) {
		return nil
	}
	return m.tables[m.current]
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.showingHelp {
		return RenderFullHelp(m.width, m.height)
	}

	t := m.currentTableModel()
	breadcrumb := []string{}
	if t != nil {
		breadcrumb = append(breadcrumb, t.Name())
	}
	header := renderHeader(m.title, breadcrumb, m.tablePosition(), m.width)
	footer := RenderHelp(m.mode, m.width)

	sections := []string{header}
	if len(m.tables) > 1 {
		sections = append(sections, renderTabs(m.tables, m.current, m.width))
	}
	if m.error != "" {
		sections = append(sections, ErrorStyle.Width(m.width).Render("Error: "+m.error))
	}
	if m.info != "" {
		sections = append(sections, SuccessStyle.Width(m.width).Render(m.info))
	}
	if t != nil && t.Searchable() {
		sections = append(sections, m.renderSearchBar(t))
	}

	used := 0
	for _, s := range sections {
		used += lipgloss.Height(s)
	}
	contentHeight := max(1, m.height-used-lipgloss.Height(footer))

	var content string
	switch {
	case !m.loaded:
		content = EmptyStateStyle.Render("Loading tables...")
	case t == nil:
		content = EmptyStateStyle.Render("No sortable tables found.")
	default:
		content = t.View(m.width, contentHeight)
	}
	content = lipgloss.NewStyle().Width(m.width).Height(contentHeight).Render(content)

	sections = append(sections, content, footer)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderSearchBar draws the search box with the entry-count label beside
// it.
func (m Model) renderSearchBar(t *TableModel) string {
	bar := m.search.View() + "  " + InfoLabelStyle.Render(t.Status())
	return SearchBarStyle.Width(m.width).Render(bar)
}

func (m Model) tablePosition() string {
	if len(m.tables) == 0 {
		return ""
	}
	return fmt.Sprintf("table %d/%d", m.current+1, len(m.tables))
}

func renderTabs(tables []*TableModel, current, width int) string {
	var tabStrings []string
	for i, t := range tables {
		tabStyle := lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(ColorMuted)

		if i == current {
			tabStyle = tabStyle.
				Foreground(ColorText).
				Bold(true).
				Underline(true)
		}

		tabStrings = append(tabStrings, tabStyle.Render(t.Name()))
	}

	tabBar := lipgloss.JoinHorizontal(lipgloss.Left, tabStrings...)
	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		BorderBottom(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		Render(tabBar)
}

func renderHeader(title string, breadcrumbParts []string, position string, width int) string {
	left := "  " + HeaderStyle.Render(title)
	if len(breadcrumbParts) > 0 {
		separator := BreadcrumbStyle.Render(" › ")
		parts := make([]string, len(breadcrumbParts))
		for i, part := range breadcrumbParts {
			if i == len(breadcrumbParts)-1 {
				parts[i] = BreadcrumbActiveStyle.Render(part)
			} else {
				parts[i] = BreadcrumbStyle.Render(part)
			}
		}
		left += separator + strings.Join(parts, separator)
	}

	right := BreadcrumbStyle.Render(position) + "  "

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return TitleStyle.Width(width).Render(left + strings.Repeat(" ", padding) + right)
}

// Commands

func loadTablesCmd(loader Loader) tea.Cmd {
	return func() tea.Msg {
		tables, err := loader()
		if err != nil {
			return model.ErrorMsg{Err: fmt.Errorf("failed to load tables: %w", err)}
		}
		return model.TablesLoadedMsg{Tables: tables}
	}
}

func headerActivatedCmd(column int) tea.Cmd {
	return func() tea.Msg {
		return model.HeaderActivatedMsg{Column: column}
	}
}

func queryChangedCmd(query string) tea.Cmd {
	return func() tea.Msg {
		return model.QueryChangedMsg{Query: query}
	}
}
