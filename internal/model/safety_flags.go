// Package model defines the core domain models used throughout tend.
package model

// FlagName identifies one of the safety flag groups.
type FlagName string

// Safety flag names, matching the keys exposed to callers.
const (
	FlagCrisis         FlagName = "crisis"
	FlagUrgentMedical  FlagName = "urgent_medical"
	FlagBurnout        FlagName = "burnout"
	FlagConflictSafety FlagName = "conflict_safety"
	FlagWandering      FlagName = "wandering"
	FlagFalls          FlagName = "falls"
)

// FlagNames returns every safety flag in display order.
func FlagNames() []FlagName {
	return []FlagName{
		FlagCrisis,
		FlagUrgentMedical,
		FlagBurnout,
		FlagConflictSafety,
		FlagWandering,
		FlagFalls,
	}
}

// SafetyFlags holds one boolean per safety flag group.
// A raised flag means a keyword matched; it is not a diagnosis.
type SafetyFlags struct {
	Crisis         bool `json:"crisis" yaml:"crisis"`
	UrgentMedical  bool `json:"urgent_medical" yaml:"urgent_medical"`
	Burnout        bool `json:"burnout" yaml:"burnout"`
	ConflictSafety bool `json:"conflict_safety" yaml:"conflict_safety"`
	Wandering      bool `json:"wandering" yaml:"wandering"`
	Falls          bool `json:"falls" yaml:"falls"`
}

// Get returns the value of the named flag. Unknown names report false.
func (f SafetyFlags) Get(name FlagName) bool {
	switch name {
	case FlagCrisis:
		return f.Crisis
	case FlagUrgentMedical:
		return f.UrgentMedical
	case FlagBurnout:
		return f.Burnout
	case FlagConflictSafety:
		return f.ConflictSafety
	case FlagWandering:
		return f.Wandering
	case FlagFalls:
		return f.Falls
	}
	return false
}

// Set assigns the named flag. Unknown names are ignored.
func (f *SafetyFlags) Set(name FlagName, value bool) {
	switch name {
	case FlagCrisis:
		f.Crisis = value
	case FlagUrgentMedical:
		f.UrgentMedical = value
	case FlagBurnout:
		f.Burnout = value
	case FlagConflictSafety:
		f.ConflictSafety = value
	case FlagWandering:
		f.Wandering = value
	case FlagFalls:
		f.Falls = value
	}
}

// Map returns the flags keyed by name, one entry per flag group.
func (f SafetyFlags) Map() map[string]bool {
	m := make(map[string]bool, len(FlagNames()))
	for _, name := range FlagNames() {
		m[string(name)] = f.Get(name)
	}
	return m
}

// Raised returns the names of all true flags in display order.
func (f SafetyFlags) Raised() []FlagName {
	var raised []FlagName
	for _, name := range FlagNames() {
		if f.Get(name) {
			raised = append(raised, name)
		}
	}
	return raised
}

// Any reports whether at least one flag is raised.
func (f SafetyFlags) Any() bool {
	return len(f.Raised()) > 0
}
