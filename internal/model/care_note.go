package model

import (
	"fmt"
	"strings"

	"github.com/Veraticus/tend/internal/common"
)

// StressLevel is a self-rated caregiver stress label.
type StressLevel string

// Stress levels, lowest first.
const (
	StressLow      StressLevel = "Low"
	StressMedium   StressLevel = "Medium"
	StressHigh     StressLevel = "High"
	StressVeryHigh StressLevel = "Very High"
)

// DefaultStressLevel is preselected when nothing else is chosen.
const DefaultStressLevel = StressMedium

// StressLevels returns all stress levels in ascending order.
func StressLevels() []StressLevel {
	return []StressLevel{StressLow, StressMedium, StressHigh, StressVeryHigh}
}

// Rank returns the position of the level in StressLevels, or -1 if unknown.
func (s StressLevel) Rank() int {
	for i, level := range StressLevels() {
		if level == s {
			return i
		}
	}
	return -1
}

// ParseStressLevel parses a stress label case-insensitively.
// "very high", "very-high", "very_high" and "veryhigh" are all accepted.
func ParseStressLevel(s string) (StressLevel, error) {
	key := enumKey(s)
	for _, level := range StressLevels() {
		if enumKey(string(level)) == key {
			return level, nil
		}
	}
	return "", fmt.Errorf("%w: %q (want one of Low, Medium, High, Very High)", common.ErrInvalidStressLevel, s)
}

// CareNote holds the fields of a care note before formatting.
type CareNote struct {
	Caregiver    string
	Recipient    string
	Date         string
	StressLevel  StressLevel
	Concerns     string
	ActionsTaken string
	Questions    string
}

// enumKey folds a label for lookup: lower case, no spaces, dashes or underscores.
func enumKey(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_', '\t':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}
