package model

import (
	"fmt"

	"github.com/Veraticus/tend/internal/common"
)

// Need is what a caregiver needs most in the next 24 hours.
type Need string

// Need categories offered by the check-in.
const (
	NeedRest                Need = "rest"
	NeedHelpFromSomeoneElse Need = "help_from_someone_else"
	NeedPlanForTomorrow     Need = "plan_for_tomorrow"
	NeedEmotionalSupport    Need = "emotional_support"
	NeedSaferEnvironment    Need = "safer_environment"
	NeedNotSure             Need = "not_sure"
)

var needLabels = map[Need]string{
	NeedRest:                "Rest",
	NeedHelpFromSomeoneElse: "Help from someone else",
	NeedPlanForTomorrow:     "A plan for tomorrow",
	NeedEmotionalSupport:    "Emotional support",
	NeedSaferEnvironment:    "Safer environment",
	NeedNotSure:             "Not sure",
}

// Needs returns every need category in menu order.
func Needs() []Need {
	return []Need{
		NeedRest,
		NeedHelpFromSomeoneElse,
		NeedPlanForTomorrow,
		NeedEmotionalSupport,
		NeedSaferEnvironment,
		NeedNotSure,
	}
}

// Label returns the human-readable menu label.
func (n Need) Label() string {
	if label, ok := needLabels[n]; ok {
		return label
	}
	return string(n)
}

// Valid reports whether n is one of the known categories.
func (n Need) Valid() bool {
	_, ok := needLabels[n]
	return ok
}

// ParseNeed accepts either the identifier ("plan_for_tomorrow") or the
// label ("A plan for tomorrow"), ignoring case, spaces, dashes and underscores.
func ParseNeed(s string) (Need, error) {
	key := enumKey(s)
	for _, need := range Needs() {
		if key == enumKey(string(need)) || key == enumKey(need.Label()) {
			return need, nil
		}
	}
	return "", fmt.Errorf("%w: %q", common.ErrInvalidNeed, s)
}
