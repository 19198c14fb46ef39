package triage

import "github.com/Veraticus/tend/internal/model"

var nextSteps = map[model.Need][]string{
	model.NeedRest: {
		"Block a 20–60 minute rest window (ask someone to cover if possible).",
		"Do one small reset: water + snack + 10 slow breaths.",
	},
	model.NeedHelpFromSomeoneElse: {
		"Send a specific ask: “Can you cover from 3–4pm?” or “Can you pick up groceries?”",
		"If available, explore respite options (community programs, local agencies).",
	},
	model.NeedPlanForTomorrow: {
		"List 3 must-dos and 1 nice-to-have. Drop the rest.",
		"Prepare one thing tonight that reduces friction tomorrow (med list, bag, meals).",
	},
	model.NeedEmotionalSupport: {
		"Text/call one supportive person with a simple message: “Can you check in with me today?”",
		"Consider a caregiver support group (online or local).",
	},
	model.NeedSaferEnvironment: {
		"Do a 5-minute safety sweep: clear walkways, improve lighting, secure tripping hazards.",
		"If you feel unsafe, contact local support services or emergency services.",
	},
	model.NeedNotSure: {
		"Pick the smallest next action: drink water, sit down, write 2 sentences about what’s hardest.",
		"If you’re concerned about safety or sudden changes, contact a licensed professional.",
	},
}

// StepsFor returns the fixed next steps for a need. Unknown needs get the
// "Not sure" steps.
func StepsFor(need model.Need) []string {
	steps, ok := nextSteps[need]
	if !ok {
		steps = nextSteps[model.NeedNotSure]
	}
	out := make([]string, len(steps))
	copy(out, steps)
	return out
}

// NextSteps checks the feeling together with the need label for safety
// signals and returns the steps for the need. An unknown need contributes
// no text.
func (d *Detector) NextSteps(feeling string, need model.Need) model.CheckIn {
	text := feeling
	if need.Valid() {
		text += " " + need.Label()
	}
	return model.CheckIn{
		Need:  need,
		Flags: d.SafetyFlags(text),
		Steps: StepsFor(need),
	}
}
