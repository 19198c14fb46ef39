package triage

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize collapses every run of whitespace to a single space, trims the
// ends and lower-cases the result. It is idempotent.
func Normalize(text string) string {
	collapsed := strings.Join(strings.Fields(text), " ")
	if collapsed == "" {
		return ""
	}
	// Casers carry state, so each call gets its own.
	return cases.Lower(language.Und).String(collapsed)
}
