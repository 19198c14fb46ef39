// Package tui implements the interactive three-tab tend app.
package tui

import (
	"github.com/Veraticus/tend/internal/tui/components"
	"github.com/Veraticus/tend/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Tab identifies one of the app's screens.
type Tab int

// Tabs, in display order.
const (
	TabNote Tab = iota
	TabSuggestions
	TabCheckIn
	tabCount
)

// Title returns the tab bar label.
func (t Tab) Title() string {
	switch t {
	case TabNote:
		return "📝 Care Note Builder"
	case TabSuggestions:
		return "🧭 Support Suggestions"
	case TabCheckIn:
		return "✅ Quick Check-in"
	default:
		return ""
	}
}

// Model holds the main TUI state.
type Model struct {
	theme       themes.Theme
	config      Config
	keymap      KeyMap
	help        help.Model
	note        components.NoteBuilderModel
	suggestions components.SuggestionsModel
	checkIn     components.CheckInModel
	active      Tab
	width       int
	height      int
	quitting    bool
}

// New creates the root model.
func New(opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newModel(cfg)
}

func newModel(cfg Config) Model {
	m := Model{
		theme:       cfg.Theme,
		config:      cfg,
		keymap:      DefaultKeyMap(),
		help:        help.New(),
		note:        components.NewNoteBuilderModel(cfg.Theme, cfg.Formatter),
		suggestions: components.NewSuggestionsModel(cfg.Theme, cfg.Detector, cfg.Markdown),
		checkIn:     components.NewCheckInModel(cfg.Theme, cfg.Detector, cfg.Markdown),
		active:      TabNote,
		width:       cfg.Width,
		height:      cfg.Height,
	}
	m.resize()
	return m
}

// Active returns the visible tab.
func (m Model) Active() Tab {
	return m.active
}

// Note returns the care note tab.
func (m Model) Note() components.NoteBuilderModel {
	return m.note
}

// Suggestions returns the suggestions tab.
func (m Model) Suggestions() components.SuggestionsModel {
	return m.suggestions
}

// CheckIn returns the check-in tab.
func (m Model) CheckIn() components.CheckInModel {
	return m.checkIn
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.config.AltScreen {
		cmds = append(cmds, tea.EnterAltScreen)
	}
	_, cmd := m.note.FocusField(m.note.Focused())
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keymap.NextTab):
			return m.switchTab((m.active + 1) % tabCount)
		case key.Matches(msg, m.keymap.PrevTab):
			return m.switchTab((m.active + tabCount - 1) % tabCount)
		case key.Matches(msg, m.keymap.NoteTab):
			return m.switchTab(TabNote)
		case key.Matches(msg, m.keymap.SuggestTab):
			return m.switchTab(TabSuggestions)
		case key.Matches(msg, m.keymap.CheckInTab):
			return m.switchTab(TabCheckIn)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	}

	return m.updateActive(msg)
}

func (m Model) updateActive(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.active {
	case TabNote:
		m.note, cmd = m.note.Update(msg)
	case TabSuggestions:
		m.suggestions, cmd = m.suggestions.Update(msg)
	case TabCheckIn:
		m.checkIn, cmd = m.checkIn.Update(msg)
	}
	return m, cmd
}

// switchTab blurs the current tab and focuses the next one.
func (m Model) switchTab(tab Tab) (Model, tea.Cmd) {
	if tab == m.active {
		return m, nil
	}

	switch m.active {
	case TabNote:
		m.note = m.note.Blur()
	case TabSuggestions:
		m.suggestions = m.suggestions.Blur()
	case TabCheckIn:
		m.checkIn = m.checkIn.Blur()
	}

	m.active = tab

	var cmd tea.Cmd
	switch tab {
	case TabNote:
		m.note, cmd = m.note.FocusField(m.note.Focused())
	case TabSuggestions:
		m.suggestions, cmd = m.suggestions.Focus()
	case TabCheckIn:
		m.checkIn, cmd = m.checkIn.Focus()
	}
	return m, cmd
}

func (m *Model) resize() {
	size := tea.WindowSizeMsg{Width: m.width, Height: m.height}
	m.note, _ = m.note.Update(size)
	m.suggestions, _ = m.suggestions.Update(size)
	m.checkIn, _ = m.checkIn.Update(size)
	m.help.Width = m.width
}
