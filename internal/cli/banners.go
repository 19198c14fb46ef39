package cli

import "github.com/Veraticus/tend/internal/model"

// AppTitle names the tool in headers.
const AppTitle = "Caregiver Support (Non-Diagnostic)"

// Disclaimer is shown before any suggestions.
const Disclaimer = "This tool is **non-diagnostic** and **not medical advice**. " +
	"It does not provide a diagnosis, treatment plan, or medication guidance. " +
	"If you think someone may be in immediate danger, call your local emergency number."

// CrisisNote lists crisis lines by region.
const CrisisNote = "If someone might harm themselves or others, or you feel unsafe:\n" +
	"- **US/Canada:** Call/text **988** (Suicide & Crisis Lifeline) or call **911**\n" +
	"- **UK/Ireland:** Samaritans **116 123**\n" +
	"- **Australia:** Lifeline **13 11 14**\n" +
	"- Elsewhere: contact your local emergency number or local crisis line."

// Reminder closes the suggestion output.
const Reminder = "Reminder: This tool is informational only and does not diagnose or recommend medication changes."

// Level ranks banners by urgency.
type Level int

// Banner levels, most urgent first.
const (
	LevelError Level = iota
	LevelWarning
	LevelInfo
)

// Banner is a one-line notice raised by a safety flag.
type Banner struct {
	Message    string
	Flag       model.FlagName
	Level      Level
	CrisisNote bool
}

var suggestionBanners = []Banner{
	{
		Flag:       model.FlagCrisis,
		Level:      LevelError,
		Message:    "Potential self-harm/violence language detected. Please seek immediate help.",
		CrisisNote: true,
	},
	{
		Flag:    model.FlagUrgentMedical,
		Level:   LevelWarning,
		Message: "Possible urgent medical keywords detected. Consider contacting local emergency services or a licensed clinician.",
	},
	{
		Flag:    model.FlagConflictSafety,
		Level:   LevelWarning,
		Message: "Safety/conflict keywords detected. Prioritize immediate safety and consider local support services.",
	},
	{
		Flag:    model.FlagWandering,
		Level:   LevelInfo,
		Message: "Wandering/lost keywords detected. Consider safety steps (door alarms, ID info, supervision) and local guidance.",
	},
	{
		Flag:    model.FlagFalls,
		Level:   LevelInfo,
		Message: "Falls keywords detected. Consider fall-safety steps and seek licensed evaluation if there’s injury/head impact.",
	},
}

var checkInCrisisBanner = Banner{
	Flag:       model.FlagCrisis,
	Level:      LevelError,
	Message:    "If you might harm yourself or someone else, get immediate help.",
	CrisisNote: true,
}

// SuggestionBanners returns the banners raised by flags for the
// suggestions view. Burnout has no banner; the stress bucket covers it.
func SuggestionBanners(flags model.SafetyFlags) []Banner {
	var out []Banner
	for _, b := range suggestionBanners {
		if flags.Get(b.Flag) {
			out = append(out, b)
		}
	}
	return out
}

// CheckInBanners returns the banners raised by flags for a check-in.
// Only a crisis interrupts a check-in.
func CheckInBanners(flags model.SafetyFlags) []Banner {
	if flags.Crisis {
		return []Banner{checkInCrisisBanner}
	}
	return nil
}
