// Package carenote renders a copy-and-paste care note from free-text fields.
package carenote

import (
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/tend/internal/model"
)

// DateLayout is the layout used when the date is filled in automatically.
const DateLayout = "2006-01-02"

// Placeholders used for empty fields.
const (
	PlaceholderCaregiver = "[Name]"
	PlaceholderRecipient = "[Name]"
	PlaceholderConcerns  = "[Add objective observations, times, and context]"
	PlaceholderStress    = "[Select a stress level]"
	PlaceholderActions   = "[Add practical steps you took]"
	PlaceholderQuestions = "[Add questions for clinician/social worker, if any]"
)

// SafetyNote closes every note.
const SafetyNote = "If symptoms are severe, sudden, or there are safety concerns, contact local emergency services or a licensed professional."

// Formatter renders care notes. Now supplies the date when none is given.
type Formatter struct {
	Now func() time.Time
}

// Format renders a note using the current local date for an empty date.
func Format(note model.CareNote) string {
	return Formatter{Now: time.Now}.Format(note)
}

// Format renders the note. Fields are trimmed; blank fields get placeholders.
// Names and dates are not validated.
func (f Formatter) Format(note model.CareNote) string {
	date := strings.TrimSpace(note.Date)
	if date == "" {
		now := time.Now
		if f.Now != nil {
			now = f.Now
		}
		date = now().Format(DateLayout)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "CARE NOTE (Non-Diagnostic) — %s\n\n", date)
	fmt.Fprintf(&b, "Caregiver: %s\n", orPlaceholder(note.Caregiver, PlaceholderCaregiver))
	fmt.Fprintf(&b, "Care Recipient: %s\n\n", orPlaceholder(note.Recipient, PlaceholderRecipient))
	section(&b, "What happened (objective):", orPlaceholder(note.Concerns, PlaceholderConcerns))
	section(&b, "Caregiver stress level (self-rated):", orPlaceholder(string(note.StressLevel), PlaceholderStress))
	section(&b, "What helped / actions taken (non-medical):", orPlaceholder(note.ActionsTaken, PlaceholderActions))
	section(&b, "Questions for a licensed professional (optional):", orPlaceholder(note.Questions, PlaceholderQuestions))
	fmt.Fprintf(&b, "Safety note:\n- %s\n", SafetyNote)

	return b.String()
}

func section(b *strings.Builder, heading, body string) {
	fmt.Fprintf(b, "%s\n- %s\n\n", heading, body)
}

func orPlaceholder(value, placeholder string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return placeholder
}
