package components

import (
	"strings"

	"github.com/Veraticus/tend/internal/carenote"
	"github.com/Veraticus/tend/internal/model"
	"github.com/Veraticus/tend/internal/tui/themes"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// NoteField identifies an input on the care note form.
type NoteField int

// Care note form fields, in tab order.
const (
	FieldCaregiver NoteField = iota
	FieldRecipient
	FieldDate
	FieldStress
	FieldConcerns
	FieldActions
	FieldQuestions
	noteFieldCount
)

// NoteBuilderModel is the care note form.
type NoteBuilderModel struct {
	theme     themes.Theme
	formatter carenote.Formatter
	note      string
	inputs    [3]textinput.Model
	areas     [3]textarea.Model
	stress    int
	focus     NoteField
	width     int
}

// NewNoteBuilderModel creates an empty form focused on the caregiver name.
func NewNoteBuilderModel(theme themes.Theme, formatter carenote.Formatter) NoteBuilderModel {
	m := NoteBuilderModel{
		theme:     theme,
		formatter: formatter,
		stress:    model.DefaultStressLevel.Rank(),
	}

	placeholders := [3]string{"Caregiver name (optional)", "Care recipient name (optional)", "YYYY-MM-DD (optional)"}
	for i := range m.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 80
		m.inputs[i] = in
	}

	areaPlaceholders := [3]string{
		"What happened today? Objective details: times, behaviors, triggers",
		"What helped / what you tried (non-medical actions)",
		"Questions for a licensed professional (optional)",
	}
	for i := range m.areas {
		ta := textarea.New()
		ta.Placeholder = areaPlaceholders[i]
		ta.ShowLineNumbers = false
		ta.SetHeight(3)
		m.areas[i] = ta
	}

	m.inputs[0].Focus()
	return m
}

// Focused returns the field that receives key input.
func (m NoteBuilderModel) Focused() NoteField {
	return m.focus
}

// StressLevel returns the selected stress level.
func (m NoteBuilderModel) StressLevel() model.StressLevel {
	return model.StressLevels()[m.stress]
}

// CareNote returns the current form contents.
func (m NoteBuilderModel) CareNote() model.CareNote {
	return model.CareNote{
		Caregiver:    m.inputs[0].Value(),
		Recipient:    m.inputs[1].Value(),
		Date:         m.inputs[2].Value(),
		StressLevel:  m.StressLevel(),
		Concerns:     m.areas[0].Value(),
		ActionsTaken: m.areas[1].Value(),
		Questions:    m.areas[2].Value(),
	}
}

// Note returns the last generated note, or "" before the first submit.
func (m NoteBuilderModel) Note() string {
	return m.note
}

// SetValue fills a text field. It is a no-op for the stress selector.
func (m *NoteBuilderModel) SetValue(field NoteField, value string) {
	switch {
	case field <= FieldDate:
		m.inputs[field].SetValue(value)
	case field >= FieldConcerns && field < noteFieldCount:
		m.areas[field-FieldConcerns].SetValue(value)
	}
}

// Generate formats the note from the current fields.
func (m NoteBuilderModel) Generate() NoteBuilderModel {
	m.note = m.formatter.Format(m.CareNote())
	return m
}

// Blur removes focus from every field.
func (m NoteBuilderModel) Blur() NoteBuilderModel {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	for i := range m.areas {
		m.areas[i].Blur()
	}
	return m
}

// FocusField moves focus to field.
func (m NoteBuilderModel) FocusField(field NoteField) (NoteBuilderModel, tea.Cmd) {
	m = m.Blur()
	m.focus = field

	var cmd tea.Cmd
	switch {
	case field <= FieldDate:
		cmd = m.inputs[field].Focus()
	case field >= FieldConcerns:
		cmd = m.areas[field-FieldConcerns].Focus()
	}
	return m, cmd
}

// Update handles messages.
func (m NoteBuilderModel) Update(msg tea.Msg) (NoteBuilderModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			return m.FocusField((m.focus + 1) % noteFieldCount)
		case "shift+tab":
			return m.FocusField((m.focus + noteFieldCount - 1) % noteFieldCount)
		case "ctrl+s":
			return m.Generate(), nil
		}

		if m.focus == FieldStress {
			switch msg.String() {
			case "left", "h":
				if m.stress > 0 {
					m.stress--
				}
			case "right", "l":
				if m.stress < len(model.StressLevels())-1 {
					m.stress++
				}
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.resize(msg.Width)
		return m, nil
	}

	return m.updateFocused(msg)
}

func (m NoteBuilderModel) updateFocused(msg tea.Msg) (NoteBuilderModel, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.focus <= FieldDate:
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	case m.focus >= FieldConcerns:
		i := m.focus - FieldConcerns
		m.areas[i], cmd = m.areas[i].Update(msg)
	}
	return m, cmd
}

func (m *NoteBuilderModel) resize(width int) {
	m.width = width
	inner := max(width-6, 20)
	for i := range m.inputs {
		m.inputs[i].Width = inner
	}
	for i := range m.areas {
		m.areas[i].SetWidth(inner)
	}
}

// View renders the form and, once generated, the note.
func (m NoteBuilderModel) View() string {
	var b strings.Builder

	inputLabels := [3]string{"Caregiver", "Care recipient", "Date"}
	for i, in := range m.inputs {
		b.WriteString(label(m.theme, inputLabels[i], m.focus == NoteField(i)))
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n")
	}

	b.WriteString(label(m.theme, "Your stress level (self-rated, ←/→)", m.focus == FieldStress))
	b.WriteString("\n ")
	for i, level := range model.StressLevels() {
		if i == m.stress {
			b.WriteString(m.theme.Selected.Render(" " + string(level) + " "))
		} else {
			b.WriteString(m.theme.Muted.Render(" " + string(level) + " "))
		}
	}
	b.WriteString("\n")

	areaLabels := [3]string{"What happened today?", "What helped / actions taken", "Questions for a licensed professional"}
	for i, ta := range m.areas {
		b.WriteString(label(m.theme, areaLabels[i], m.focus == FieldConcerns+NoteField(i)))
		b.WriteString("\n")
		b.WriteString(ta.View())
		b.WriteString("\n")
	}

	if m.note != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.StatusSuccess.Render("Generated. Copy/paste below:"))
		b.WriteString("\n")
		b.WriteString(m.theme.RoundedBox.Render(strings.TrimRight(m.note, "\n")))
		b.WriteString("\n")
	}

	return b.String()
}
