package components

import (
	"strings"

	"github.com/Veraticus/tend/internal/cli"
	"github.com/Veraticus/tend/internal/model"
	"github.com/Veraticus/tend/internal/triage"
	"github.com/Veraticus/tend/internal/tui/themes"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// SuggestionsModel classifies a free-text description on submit.
type SuggestionsModel struct {
	theme     themes.Theme
	detector  *triage.Detector
	markdown  MarkdownFunc
	input     textarea.Model
	buckets   []model.Bucket
	flags     model.SafetyFlags
	submitted bool
}

// NewSuggestionsModel creates the suggestions tab.
func NewSuggestionsModel(theme themes.Theme, detector *triage.Detector, md MarkdownFunc) SuggestionsModel {
	if md == nil {
		md = PlainMarkdown
	}

	ta := textarea.New()
	ta.Placeholder = "Describe the situation (no private info needed)"
	ta.ShowLineNumbers = false
	ta.SetHeight(5)

	return SuggestionsModel{
		theme:    theme,
		detector: detector,
		markdown: md,
		input:    ta,
	}
}

// Focus gives the text area key input.
func (m SuggestionsModel) Focus() (SuggestionsModel, tea.Cmd) {
	cmd := m.input.Focus()
	return m, cmd
}

// Blur removes key input from the text area.
func (m SuggestionsModel) Blur() SuggestionsModel {
	m.input.Blur()
	return m
}

// SetText replaces the description.
func (m *SuggestionsModel) SetText(text string) {
	m.input.SetValue(text)
}

// Submit classifies the current description.
func (m SuggestionsModel) Submit() SuggestionsModel {
	text := m.input.Value()
	m.flags = m.detector.SafetyFlags(text)
	m.buckets = m.detector.Suggestions(text)
	m.submitted = true
	return m
}

// Flags returns the flags from the last submit.
func (m SuggestionsModel) Flags() model.SafetyFlags {
	return m.flags
}

// Buckets returns the buckets from the last submit.
func (m SuggestionsModel) Buckets() []model.Bucket {
	return m.buckets
}

// Update handles messages.
func (m SuggestionsModel) Update(msg tea.Msg) (SuggestionsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+s" {
			return m.Submit(), nil
		}
	case tea.WindowSizeMsg:
		m.input.SetWidth(max(msg.Width-6, 20))
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the input and, after submit, banners and suggestions.
func (m SuggestionsModel) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Subtitle.Render("Uses only keywords/regex to show practical, non-diagnostic suggestions."))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if !m.submitted {
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(renderBanners(m.theme, cli.SuggestionBanners(m.flags), m.markdown))
	b.WriteString("\n")
	b.WriteString(renderBuckets(m.theme, m.buckets, m.markdown))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Muted.Render(cli.Reminder))
	b.WriteString("\n")

	return b.String()
}
