package model

// Bucket is a titled group of static, non-medical advice.
// Items may contain **bold** markdown.
type Bucket struct {
	Title string   `json:"title" yaml:"title"`
	Items []string `json:"items" yaml:"items"`
}

// CheckIn is the result of a quick caregiver check-in.
type CheckIn struct {
	Need  Need        `json:"need" yaml:"need"`
	Steps []string    `json:"steps" yaml:"steps"`
	Flags SafetyFlags `json:"flags" yaml:"flags"`
}
