// Package triage classifies free-text caregiving descriptions with fixed
// keyword and regex tables. It never diagnoses; a match is only a signal.
package triage

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Veraticus/tend/internal/model"
)

// PatternGroup is a named, ordered list of regular expressions.
// Matches of any exclusion are blanked out before the patterns run.
type PatternGroup struct {
	Name       string   `json:"name" yaml:"name"`
	Patterns   []string `json:"patterns" yaml:"patterns"`
	Exclusions []string `json:"exclusions,omitempty" yaml:"exclusions,omitempty"`
}

// Topic binds a pattern group to the suggestion bucket it unlocks.
type Topic struct {
	PatternGroup `yaml:",inline"`
	Bucket       model.Bucket `json:"bucket" yaml:"bucket"`
}

// GroupMatch lists the terms that triggered a group.
type GroupMatch struct {
	Name  string   `json:"name" yaml:"name"`
	Terms []string `json:"terms" yaml:"terms"`
}

type compiledGroup struct {
	patterns   []*regexp.Regexp
	exclusions []*regexp.Regexp
	PatternGroup
}

type compiledTopic struct {
	bucket model.Bucket
	group  compiledGroup
}

// Detector evaluates compiled flag groups and topics against text.
// It is immutable after construction and safe for concurrent use.
type Detector struct {
	fallback model.Bucket
	flags    []compiledGroup
	topics   []compiledTopic
}

// NewDetector compiles the given flag groups and topics. Every flag group
// must be named after a model.FlagName.
func NewDetector(flagGroups []PatternGroup, topics []Topic, fallback model.Bucket) (*Detector, error) {
	known := make(map[string]bool, len(model.FlagNames()))
	for _, name := range model.FlagNames() {
		known[string(name)] = true
	}

	d := &Detector{
		fallback: cloneBucket(fallback),
		flags:    make([]compiledGroup, 0, len(flagGroups)),
		topics:   make([]compiledTopic, 0, len(topics)),
	}

	for _, g := range flagGroups {
		if !known[g.Name] {
			return nil, fmt.Errorf("unknown safety flag group %q", g.Name)
		}
		compiled, err := compileGroup(g)
		if err != nil {
			return nil, err
		}
		d.flags = append(d.flags, compiled)
	}

	for _, t := range topics {
		compiled, err := compileGroup(t.PatternGroup)
		if err != nil {
			return nil, err
		}
		d.topics = append(d.topics, compiledTopic{
			group:  compiled,
			bucket: cloneBucket(t.Bucket),
		})
	}

	return d, nil
}

// MustNewDetector is like NewDetector but panics on error.
func MustNewDetector(flagGroups []PatternGroup, topics []Topic, fallback model.Bucket) *Detector {
	d, err := NewDetector(flagGroups, topics, fallback)
	if err != nil {
		panic(err)
	}
	return d
}

func compileGroup(g PatternGroup) (compiledGroup, error) {
	patterns, err := compileAll(g.Name, g.Patterns)
	if err != nil {
		return compiledGroup{}, err
	}
	exclusions, err := compileAll(g.Name, g.Exclusions)
	if err != nil {
		return compiledGroup{}, err
	}
	return compiledGroup{
		PatternGroup: g,
		patterns:     patterns,
		exclusions:   exclusions,
	}, nil
}

func compileAll(name string, exprs []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		if !strings.HasPrefix(expr, "(?i)") {
			expr = "(?i)" + expr
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("failed to compile pattern for group %s: %w", name, err)
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}

// mask blanks out exclusion matches with spaces so word boundaries on either
// side survive.
func (g compiledGroup) mask(text string) string {
	for _, re := range g.exclusions {
		text = re.ReplaceAllStringFunc(text, func(m string) string {
			return strings.Repeat(" ", len(m))
		})
	}
	return text
}

// matches reports whether any pattern matches the normalized text.
func (g compiledGroup) matches(text string) bool {
	text = g.mask(text)
	for _, re := range g.patterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// terms returns the first match of each pattern that matched, in pattern order.
func (g compiledGroup) terms(text string) []string {
	text = g.mask(text)
	var terms []string
	for _, re := range g.patterns {
		if m := re.FindString(text); m != "" {
			terms = append(terms, m)
		}
	}
	return terms
}

// SafetyFlags evaluates every flag group independently against text.
func (d *Detector) SafetyFlags(text string) model.SafetyFlags {
	normalized := Normalize(text)

	var flags model.SafetyFlags
	for _, g := range d.flags {
		if g.matches(normalized) {
			flags.Set(model.FlagName(g.Name), true)
		}
	}
	return flags
}

// MatchedGroups returns the matched terms for every raised flag group, in group order.
func (d *Detector) MatchedGroups(text string) []GroupMatch {
	normalized := Normalize(text)

	var out []GroupMatch
	for _, g := range d.flags {
		if terms := g.terms(normalized); len(terms) > 0 {
			out = append(out, GroupMatch{Name: g.Name, Terms: terms})
		}
	}
	return out
}

// Suggestions returns one bucket per matching topic in topic order, or the
// fallback bucket alone when nothing matches.
func (d *Detector) Suggestions(text string) []model.Bucket {
	normalized := Normalize(text)

	var buckets []model.Bucket
	for _, t := range d.topics {
		if t.group.matches(normalized) {
			buckets = append(buckets, cloneBucket(t.bucket))
		}
	}

	if len(buckets) == 0 {
		buckets = append(buckets, cloneBucket(d.fallback))
	}
	return buckets
}

// FlagGroups returns the source of the compiled flag groups.
func (d *Detector) FlagGroups() []PatternGroup {
	groups := make([]PatternGroup, 0, len(d.flags))
	for _, g := range d.flags {
		groups = append(groups, g.PatternGroup)
	}
	return groups
}

// Topics returns the source of the compiled topics.
func (d *Detector) Topics() []Topic {
	topics := make([]Topic, 0, len(d.topics))
	for _, t := range d.topics {
		topics = append(topics, Topic{PatternGroup: t.group.PatternGroup, Bucket: cloneBucket(t.bucket)})
	}
	return topics
}

// cloneBucket copies the item slice so callers cannot edit the tables.
func cloneBucket(b model.Bucket) model.Bucket {
	items := make([]string, len(b.Items))
	copy(items, b.Items)
	return model.Bucket{Title: b.Title, Items: items}
}
