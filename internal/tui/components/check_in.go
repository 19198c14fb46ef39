package components

import (
	"strings"

	"github.com/Veraticus/tend/internal/cli"
	"github.com/Veraticus/tend/internal/model"
	"github.com/Veraticus/tend/internal/triage"
	"github.com/Veraticus/tend/internal/tui/themes"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// CheckInModel asks how the caregiver is doing and what they need most.
type CheckInModel struct {
	theme       themes.Theme
	detector    *triage.Detector
	markdown    MarkdownFunc
	result      *model.CheckIn
	feeling     textinput.Model
	cursor      int
	needFocused bool
}

// NewCheckInModel creates the check-in tab.
func NewCheckInModel(theme themes.Theme, detector *triage.Detector, md MarkdownFunc) CheckInModel {
	if md == nil {
		md = PlainMarkdown
	}

	in := textinput.New()
	in.Placeholder = "In one sentence: how are you doing right now?"
	in.CharLimit = 280

	return CheckInModel{
		theme:    theme,
		detector: detector,
		markdown: md,
		feeling:  in,
	}
}

// Focus gives key input to the focused control.
func (m CheckInModel) Focus() (CheckInModel, tea.Cmd) {
	if m.needFocused {
		return m, nil
	}
	cmd := m.feeling.Focus()
	return m, cmd
}

// Blur removes key input from the feeling field.
func (m CheckInModel) Blur() CheckInModel {
	m.feeling.Blur()
	return m
}

// SetFeeling replaces the feeling text.
func (m *CheckInModel) SetFeeling(text string) {
	m.feeling.SetValue(text)
}

// Need returns the highlighted need.
func (m CheckInModel) Need() model.Need {
	return model.Needs()[m.cursor]
}

// Result returns the last check-in, or nil before the first submit.
func (m CheckInModel) Result() *model.CheckIn {
	return m.result
}

// Submit runs the check-in for the current feeling and need.
func (m CheckInModel) Submit() CheckInModel {
	result := m.detector.NextSteps(m.feeling.Value(), m.Need())
	m.result = &result
	return m
}

func (m CheckInModel) toggleFocus() (CheckInModel, tea.Cmd) {
	m.needFocused = !m.needFocused
	if m.needFocused {
		m.feeling.Blur()
		return m, nil
	}
	cmd := m.feeling.Focus()
	return m, cmd
}

// Update handles messages.
func (m CheckInModel) Update(msg tea.Msg) (CheckInModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+s":
			return m.Submit(), nil
		case "tab", "shift+tab":
			return m.toggleFocus()
		case "enter":
			if m.needFocused {
				return m.Submit(), nil
			}
			return m.toggleFocus()
		}

		if m.needFocused {
			n := len(model.Needs())
			switch msg.String() {
			case "j", "down":
				m.cursor = (m.cursor + 1) % n
			case "k", "up":
				m.cursor = (m.cursor + n - 1) % n
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.feeling.Width = max(msg.Width-6, 20)
		return m, nil
	}

	var cmd tea.Cmd
	m.feeling, cmd = m.feeling.Update(msg)
	return m, cmd
}

// View renders the check-in form and result.
func (m CheckInModel) View() string {
	var b strings.Builder

	b.WriteString(label(m.theme, "How are you doing right now?", !m.needFocused))
	b.WriteString("\n")
	b.WriteString(m.feeling.View())
	b.WriteString("\n\n")

	b.WriteString(label(m.theme, "What do you need most in the next 24 hours?", m.needFocused))
	b.WriteString("\n")
	for i, need := range model.Needs() {
		if i == m.cursor {
			b.WriteString("  " + m.theme.Selected.Render("● "+need.Label()))
		} else {
			b.WriteString("  " + m.theme.Normal.Render("○ "+need.Label()))
		}
		b.WriteString("\n")
	}

	if m.result == nil {
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(renderBanners(m.theme, cli.CheckInBanners(m.result.Flags), m.markdown))
	b.WriteString(m.theme.Bold.Render("Suggested next steps (non-medical):"))
	b.WriteString("\n")
	b.WriteString(renderList(m.result.Steps, m.markdown))
	b.WriteString("\n")

	return b.String()
}
