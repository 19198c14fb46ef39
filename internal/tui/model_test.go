package tui

import (
	"testing"
	"time"

	"github.com/Veraticus/tend/internal/model"
	"github.com/Veraticus/tend/internal/tui/components"
	tuitest "github.com/Veraticus/tend/internal/tui/testing"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel() Model {
	return New(
		WithSize(100, 40),
		WithAltScreen(false),
		WithClock(func() time.Time { return time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC) }),
	)
}

func update(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func TestModel_TabSwitching(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.Msg
		want Tab
	}{
		{name: "starts on care note", want: TabNote},
		{name: "ctrl+n", keys: []tea.Msg{tuitest.KeyCtrl("n")}, want: TabSuggestions},
		{name: "ctrl+n wraps", keys: []tea.Msg{tuitest.KeyCtrl("n"), tuitest.KeyCtrl("n"), tuitest.KeyCtrl("n")}, want: TabNote},
		{name: "ctrl+p wraps", keys: []tea.Msg{tuitest.KeyCtrl("p")}, want: TabCheckIn},
		{name: "f2", keys: []tea.Msg{tuitest.KeyF(2)}, want: TabSuggestions},
		{name: "f3 then f1", keys: []tea.Msg{tuitest.KeyF(3), tuitest.KeyF(1)}, want: TabNote},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := update(t, newTestModel(), tt.keys...)
			assert.Equal(t, tt.want, m.Active())
		})
	}
}

func TestModel_TabKeyStaysInForm(t *testing.T) {
	m := update(t, newTestModel(), tuitest.KeyTab())

	assert.Equal(t, TabNote, m.Active())
	assert.Equal(t, components.FieldRecipient, m.Note().Focused())
}

func TestModel_SuggestionsFlow(t *testing.T) {
	m := update(t, newTestModel(), tuitest.KeyF(2))
	m = update(t, m, tuitest.TypeText("forgot his pills and can't sleep")...)
	m = update(t, m, tuitest.KeyCtrl("s"))

	buckets := m.Suggestions().Buckets()
	require.Len(t, buckets, 2)
	assert.Equal(t, "Medication reminders (non-medical)", buckets[0].Title)
	assert.Equal(t, "Sleep support (practical)", buckets[1].Title)
	assert.Empty(t, m.Note().Note(), "other tabs untouched")
}

func TestModel_CheckInFlow(t *testing.T) {
	m := update(t, newTestModel(), tuitest.KeyF(3))
	m = update(t, m, tuitest.TypeText("fine")...)
	m = update(t, m, tuitest.KeyEnter(), tuitest.KeyDown(), tuitest.KeyEnter())

	result := m.CheckIn().Result()
	require.NotNil(t, result)
	assert.Equal(t, model.NeedHelpFromSomeoneElse, result.Need)
	assert.False(t, result.Flags.Any())
}

func TestModel_Quit(t *testing.T) {
	for _, msg := range []tea.Msg{tuitest.KeyEsc(), tuitest.KeyCtrl("c")} {
		next, cmd := newTestModel().Update(msg)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
		assert.Empty(t, next.View())
	}
}

func TestModel_View(t *testing.T) {
	m := newTestModel()
	view := tuitest.StripANSI(m.View())

	assert.True(t, tuitest.ContainsInOrder(view,
		"Caregiver Support (Non-Diagnostic)",
		"non-diagnostic",
		"Care Note Builder",
		"Support Suggestions",
		"Quick Check-in",
		"Caregiver",
		"Your stress level",
		"next tab",
	))
}

func TestModel_Resize(t *testing.T) {
	m := update(t, newTestModel(), tuitest.WindowSize(120, 50))
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 50, m.height)
	assert.Equal(t, 120, m.help.Width)
}
