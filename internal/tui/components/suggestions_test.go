package components

import (
	"testing"

	"github.com/Veraticus/tend/internal/model"
	"github.com/Veraticus/tend/internal/triage"
	tuitest "github.com/Veraticus/tend/internal/tui/testing"
	"github.com/Veraticus/tend/internal/tui/themes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestionsModel_Submit(t *testing.T) {
	m, _ := NewSuggestionsModel(themes.Default, triage.Default(), nil).Focus()

	for _, msg := range tuitest.TypeText("Mom fell and I'm exhausted") {
		m, _ = m.Update(msg)
	}
	m, cmd := m.Update(tuitest.KeyCtrl("s"))
	assert.Nil(t, cmd)

	assert.Equal(t, model.SafetyFlags{Burnout: true, Falls: true}, m.Flags())
	require.Len(t, m.Buckets(), 2)
	assert.Equal(t, "Fall-prevention basics", m.Buckets()[0].Title)
	assert.Equal(t, "Caregiver stress reset (10-minute options)", m.Buckets()[1].Title)

	view := tuitest.StripANSI(m.View())
	assert.True(t, tuitest.ContainsInOrder(view,
		"Falls keywords detected.",
		"Fall-prevention basics",
		"consider urgent medical evaluation",
		"Caregiver stress reset",
		"Reminder:",
	))
	assert.NotContains(t, view, "**")
}

func TestSuggestionsModel_CrisisNote(t *testing.T) {
	m := NewSuggestionsModel(themes.Default, triage.Default(), nil)
	m.SetText("I don't want to end my life but I feel hopeless")
	m = m.Submit()

	view := tuitest.StripANSI(m.View())
	assert.Contains(t, view, "Potential self-harm/violence language detected.")
	assert.Contains(t, view, "Samaritans 116 123")
}

func TestSuggestionsModel_BeforeSubmit(t *testing.T) {
	m := NewSuggestionsModel(themes.Default, triage.Default(), nil)

	view := tuitest.StripANSI(m.View())
	assert.NotContains(t, view, "General support")
	assert.Nil(t, m.Buckets())

	m = m.Submit()
	assert.Equal(t, []model.Bucket{triage.FallbackBucket()}, m.Buckets())
}

func TestSuggestionsModel_CustomMarkdown(t *testing.T) {
	m := NewSuggestionsModel(themes.Default, triage.Default(), func(md string) string {
		return "<" + md + ">"
	})
	m.SetText("pills")
	m = m.Submit()

	assert.Contains(t, tuitest.StripANSI(m.View()), "<- Use a **pill organizer**")
}
