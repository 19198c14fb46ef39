package tui

import (
	"strings"

	"github.com/Veraticus/tend/internal/cli"
	"github.com/charmbracelet/lipgloss"
)

// View renders the header, tab bar, active tab and help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.renderTabs(),
		"",
		m.renderActive(),
		m.help.View(m.keymap),
	)

	return content
}

func (m Model) renderHeader() string {
	title := m.theme.Title.Render(cli.HeartIcon + " " + cli.AppTitle)
	disclaimer := m.theme.Subtitle.
		Width(max(m.width-2, 20)).
		Render(cli.StripMarkdown(cli.Disclaimer))
	return lipgloss.JoinVertical(lipgloss.Left, title, disclaimer)
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, tabCount)
	for t := TabNote; t < tabCount; t++ {
		if t == m.active {
			tabs = append(tabs, m.theme.ActiveTab.Render(t.Title()))
		} else {
			tabs = append(tabs, m.theme.InactiveTab.Render(t.Title()))
		}
	}
	return strings.Join(tabs, " ")
}

func (m Model) renderActive() string {
	switch m.active {
	case TabSuggestions:
		return m.suggestions.View()
	case TabCheckIn:
		return m.checkIn.View()
	default:
		return m.note.View()
	}
}
