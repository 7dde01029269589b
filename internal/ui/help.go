package ui

import (
	"strings"

	"sortable/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// RenderHelp renders the mode-sensitive help footer.
func RenderHelp(mode model.Mode, width int) string {
	if mode == model.ModeSearch {
		return renderSearchHelp(width)
	}
	return renderTableHelp(width)
}

func renderTableHelp(width int) string {
	keys := []string{
		helpKey("j/k", "navigate"),
		helpKey("h/l", "column"),
		helpKey("enter", "sort"),
		helpKey("1-9", "sort col N"),
		helpKey("/", "search"),
		helpKey("tab", "next table"),
		helpKey("?", "help"),
		helpKey("q", "quit"),
	}
	return renderHelpLine(keys, width)
}

func renderSearchHelp(width int) string {
	keys := []string{
		helpKey("type", "filter rows"),
		helpKey("enter", "keep filter"),
		helpKey("esc", "clear search"),
	}
	return renderHelpLine(keys, width)
}

func helpKey(key, desc string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(desc)
}

func renderHelpLine(keys []string, width int) string {
	line := strings.Join(keys, "  ")
	return FooterStyle.Width(width).Render(line)
}

// RenderFullHelp renders the full help screen.
func RenderFullHelp(width, height int) string {
	content := lipgloss.NewStyle().
		Width(width-4).
		Height(height-6).
		Padding(1, 2)

	sections := []string{
		titleSection("Navigation"),
		helpSection([]helpItem{
			{"j / ↓", "Move down"},
			{"k / ↑", "Move up"},
			{"h / ← , l / →", "Previous / next column"},
			{"gg", "Jump to top"},
			{"G", "Jump to bottom"},
			{"ctrl+d", "Half page down"},
			{"ctrl+u", "Half page up"},
			{"tab / shift+tab", "Next / previous table"},
		}),
		titleSection("Sorting"),
		helpSection([]helpItem{
			{"enter / s", "Sort by active column (again to reverse)"},
			{"1-9", "Sort by column N (again to reverse)"},
		}),
		titleSection("Searching"),
		helpSection([]helpItem{
			{"/", "Focus the search box"},
			{"enter", "Keep the filter and return to the table"},
			{"esc", "Clear the search"},
		}),
		titleSection("General"),
		helpSection([]helpItem{
			{"esc", "Clear message"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}),
	}

	helpText := content.Render(strings.Join(sections, "\n\n"))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.Width(width).Render("Help"),
		helpText,
		FooterStyle.Width(width).Render(HelpKeyStyle.Render("esc")+" "+HelpDescStyle.Render("close help")),
	)
}

type helpItem struct {
	key  string
	desc string
}

func titleSection(title string) string {
	return LabelStyle.Render(title)
}

func helpSection(items []helpItem) string {
	var lines []string
	for _, item := range items {
		lines = append(lines, "  "+HelpKeyStyle.Render(item.key)+" - "+HelpDescStyle.Render(item.desc))
	}
	return strings.Join(lines, "\n")
}
