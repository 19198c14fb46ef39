package triage

import "github.com/Veraticus/tend/internal/model"

// denialLead anchors a denial to the start of a clause, optionally after a
// short subject ("i'm", "he has"), so "can't say i'm not suicidal" is not
// treated as a denial.
const denialLead = `(?:^|[,.;:!?]\s*|\b(?:and|but|so)\s+)(?:(?:i|he|she|they)(?:'m|'s|'re| am| is| are| have| has)? )?`

// DefaultFlagGroups returns the built-in safety flag pattern groups.
func DefaultFlagGroups() []PatternGroup {
	return []PatternGroup{
		{
			Name: string(model.FlagCrisis),
			Patterns: []string{
				`\bsuicid(al|e)\b`,
				`kill myself`,
				`\bend my life\b`,
				`\bself[- ]?harm\b`,
				`\bhurt myself\b`,
				`\boverdose\b`,
				`\bno reason to live\b`,
				`\bwant to die\b`,
				`\bkill (him|her|them|someone)\b`,
				`\bhurt (him|her|them|someone)\b`,
				`\bweapon\b`,
			},
			// Explicit denials are masked so "no suicidal thoughts" does not
			// raise the flag. None of these can cover a different crisis phrase.
			Exclusions: []string{
				denialLead + `(?:no|not|never|denies|denied)(?: any)? suicidal(?: thoughts?| ideation| feelings?)?\b`,
				denialLead + `no (?:thoughts|ideas?) of (?:suicide|self[- ]?harm)\b`,
				denialLead + `no self[- ]?harm\b`,
			},
		},
		{
			Name: string(model.FlagUrgentMedical),
			Patterns: []string{
				`\bchest pain\b`,
				`\bcan'?t breathe\b`,
				`\bnot breathing\b`,
				`\bunconscious\b`,
				`\bfainted\b`,
				`\bseizure\b`,
				`\bstroke\b`,
				`\bblue lips\b`,
				`\bsevere bleeding\b`,
			},
		},
		{
			Name: string(model.FlagBurnout),
			Patterns: []string{
				`\boverwhelmed\b`,
				`\bburnt? out\b`,
				`\bexhausted\b`,
				`\bno sleep\b`,
				`\bcan'?t cope\b`,
				`\bon edge\b`,
				`\banxious\b`,
				`\bpanic\b`,
				`\bdepressed\b`,
				`\bhopeless\b`,
			},
		},
		{
			Name: string(model.FlagConflictSafety),
			Patterns: []string{
				`\barguments?\b`,
				`\bfighting\b`,
				`\bshouting\b`,
				`\bthreat(en(s|ed|ing)?|s)\b`,
				`\bunsafe\b`,
				`\babuse\b`,
			},
		},
		{
			Name: string(model.FlagWandering),
			Patterns: []string{
				`\bwander(s|ed|ing)?\b`,
				`\blost\b`,
				`\bleft the house\b`,
				`\beloped\b`,
			},
		},
		{
			Name: string(model.FlagFalls),
			Patterns: []string{
				`\bfell\b`,
				`\bfall\b`,
				`\bslipped\b`,
				`\bhead hit\b`,
			},
		},
	}
}

// Topic names, in the order their buckets are emitted.
const (
	TopicMedication = "medication"
	TopicSleep      = "sleep"
	TopicNutrition  = "nutrition"
	TopicFalls      = "falls"
	TopicConfusion  = "confusion"
	TopicStress     = "stress"
)

// DefaultTopics returns the built-in suggestion topics in emission order.
func DefaultTopics() []Topic {
	return []Topic{
		{
			PatternGroup: PatternGroup{
				Name:     TopicMedication,
				Patterns: []string{`\bmeds?\b`, `\bmedication\b`, `\bpills?\b`},
			},
			Bucket: model.Bucket{
				Title: "Medication reminders (non-medical)",
				Items: []string{
					"Use a **pill organizer** or reminder alarms (no dosing advice).",
					"Keep an **up-to-date medication list** (name + schedule) to share with a clinician if needed.",
					"If there are concerns or side effects, **contact a licensed clinician/pharmacist**.",
				},
			},
		},
		{
			PatternGroup: PatternGroup{
				Name: TopicSleep,
				Patterns: []string{
					`\bsleep\b`,
					`\bslept\b`,
					`\bsleeping\b`,
					`\bsleepless\b`,
					`\binsomnia\b`,
					`\bup all night\b`,
					`\bno sleep\b`,
				},
			},
			Bucket: model.Bucket{
				Title: "Sleep support (practical)",
				Items: []string{
					"Try a simple bedtime routine (dim lights, reduce noise, consistent timing).",
					"If caregiving allows: schedule a **nap window** or ask someone to cover for 30–60 minutes.",
					"Track what disrupts sleep (time, triggers) to discuss with a clinician if needed.",
				},
			},
		},
		{
			PatternGroup: PatternGroup{
				Name:     TopicNutrition,
				Patterns: []string{`\bnot eating\b`, `\bappetite\b`, `\bdehydrated\b`, `\bdrinking\b`},
			},
			Bucket: model.Bucket{
				Title: "Nutrition & hydration (non-diagnostic)",
				Items: []string{
					"Offer small, frequent snacks if full meals are hard.",
					"Keep water visible and offer sips regularly if safe to do so.",
					"If there are swallowing concerns, weight loss, or dehydration signs: **seek licensed medical help**.",
				},
			},
		},
		{
			PatternGroup: PatternGroup{
				Name:     TopicFalls,
				Patterns: []string{`\bfell\b`, `\bfall\b`, `\bunsteady\b`, `\bwalker\b`},
			},
			Bucket: model.Bucket{
				Title: "Fall-prevention basics",
				Items: []string{
					"Clear walkways, remove loose rugs, improve lighting.",
					"Use stable footwear and consider grab bars in bathroom areas.",
					"After a fall or head hit: consider **urgent medical evaluation**.",
				},
			},
		},
		{
			PatternGroup: PatternGroup{
				Name:     TopicConfusion,
				Patterns: []string{`\bconfus(ed|ion)\b`, `\bforget(ful|ting)\b`, `\bmemory\b`, `\bdisoriented\b`},
			},
			Bucket: model.Bucket{
				Title: "Confusion/memory concerns (non-diagnostic)",
				Items: []string{
					"Use orientation cues: calendar, clock, simple signage, consistent routines.",
					"Keep notes of patterns (time of day, triggers) for a clinician if you choose.",
					"If confusion is sudden or severe, consider **urgent evaluation**.",
				},
			},
		},
		{
			PatternGroup: PatternGroup{
				Name:     TopicStress,
				Patterns: []string{`\boverwhelmed\b`, `\bexhausted\b`, `\bburnt? out\b`, `\bstressed\b`, `\banxious\b`},
			},
			Bucket: model.Bucket{
				Title: "Caregiver stress reset (10-minute options)",
				Items: []string{
					"Pick one: hydration, quick snack, 10 slow breaths, short walk, or text a friend.",
					"Ask for a specific, small help task (e.g., groceries, 1-hour cover, laundry).",
					"Consider caregiver support groups (local, online) or respite services.",
				},
			},
		},
	}
}

// FallbackBucket is returned when no topic matches.
func FallbackBucket() model.Bucket {
	return model.Bucket{
		Title: "General support",
		Items: []string{
			"Write down today’s top 1–2 challenges and what helped (even slightly).",
			"Identify one person or service you can contact for practical support.",
			"If you’re worried about safety or health changes, contact a licensed professional.",
		},
	}
}
