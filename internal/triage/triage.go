package triage

import "github.com/Veraticus/tend/internal/model"

var defaultDetector = MustNewDetector(DefaultFlagGroups(), DefaultTopics(), FallbackBucket())

// Default returns the detector built from the default tables.
func Default() *Detector {
	return defaultDetector
}

// ClassifySafetyFlags evaluates the default safety flag groups against text.
func ClassifySafetyFlags(text string) model.SafetyFlags {
	return defaultDetector.SafetyFlags(text)
}

// ClassifySuggestionBuckets returns the default suggestion buckets for text.
func ClassifySuggestionBuckets(text string) []model.Bucket {
	return defaultDetector.Suggestions(text)
}

// NextSteps runs a quick check-in against the default tables.
func NextSteps(feeling string, need model.Need) model.CheckIn {
	return defaultDetector.NextSteps(feeling, need)
}
