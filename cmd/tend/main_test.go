package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Veraticus/tend/internal/common"
	"github.com/Veraticus/tend/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// plainOutput turns off color and markdown rendering for the test.
func plainOutput(t *testing.T) {
	t.Helper()
	viper.Set(config.KeyDisplayColor, false)
	viper.Set(config.KeyDisplayMarkdown, false)
	t.Cleanup(func() {
		d := config.Defaults()
		viper.Set(config.KeyDisplayColor, d.Display.Color)
		viper.Set(config.KeyDisplayMarkdown, d.Display.Markdown)
	})
}

func execute(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	err := cmd.Execute()
	return buf.String(), err
}

func TestFlagsCmd(t *testing.T) {
	plainOutput(t)

	tests := []struct {
		name     string
		stdin    string
		args     []string
		contains []string
	}{
		{
			name:     "text from args",
			args:     []string{"chest", "pain", "and", "feeling", "suicidal"},
			contains: []string{`crisis\s+yes`, `urgent_medical\s+yes`, `falls\s+no`},
		},
		{
			name:     "text from stdin",
			stdin:    "She wandered off again\n",
			contains: []string{`wandering\s+yes`, `crisis\s+no`},
		},
		{
			name:     "explain",
			args:     []string{"--explain", "I feel overwhelmed and haven't slept, no suicidal thoughts"},
			contains: []string{`crisis\s+no`, `Matched terms:`, `burnout: overwhelmed`},
		},
		{
			name:     "explain without matches",
			args:     []string{"--explain", "a quiet afternoon"},
			contains: []string{`No safety keywords matched\.`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, flagsCmd(), tt.stdin, tt.args...)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Regexp(t, want, out)
			}
		})
	}
}

func TestFlagsCmd_JSON(t *testing.T) {
	out, err := execute(t, flagsCmd(), "", "-o", "json", "--explain", "Mom fell and hit her head")
	require.NoError(t, err)

	var report struct {
		Flags   map[string]bool `json:"flags"`
		Matches []struct {
			Name  string   `json:"name"`
			Terms []string `json:"terms"`
		} `json:"matches"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.True(t, report.Flags["falls"])
	assert.False(t, report.Flags["crisis"])
	require.Len(t, report.Matches, 1)
	assert.Equal(t, "falls", report.Matches[0].Name)
}

func TestFlagsCmd_Errors(t *testing.T) {
	tests := []struct {
		name    string
		wantErr error
		stdin   string
		args    []string
	}{
		{name: "bad format", args: []string{"-o", "xml", "hello"}, wantErr: common.ErrInvalidOutputFormat},
		{name: "empty stdin", stdin: "  \n", wantErr: common.ErrNoInput},
		{name: "blank args", args: []string{" "}, wantErr: common.ErrNoInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, flagsCmd(), tt.stdin, tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var userErr *common.UserError
			assert.ErrorAs(t, err, &userErr)
		})
	}
}

func TestSuggestCmd(t *testing.T) {
	plainOutput(t)

	out, err := execute(t, suggestCmd(), "", "I feel overwhelmed and haven't slept, no suicidal thoughts")
	require.NoError(t, err)

	assert.Contains(t, out, "This tool is non-diagnostic")
	assert.NotContains(t, out, "Potential self-harm")
	assert.Less(t,
		strings.Index(out, "Sleep support (practical)"),
		strings.Index(out, "Caregiver stress reset (10-minute options)"))
	assert.Contains(t, out, "- Try a simple bedtime routine")
	assert.Contains(t, out, "Reminder: This tool is informational only")
}

func TestSuggestCmd_Crisis(t *testing.T) {
	plainOutput(t)

	out, err := execute(t, suggestCmd(), "I just want to KILL   MYSELF")
	require.NoError(t, err)

	assert.Contains(t, out, "Potential self-harm/violence language detected.")
	assert.Contains(t, out, "US/Canada: Call/text 988")
	assert.Contains(t, out, "General support")
}

func TestSuggestCmd_YAML(t *testing.T) {
	out, err := execute(t, suggestCmd(), "", "-o", "yaml", "nothing much")
	require.NoError(t, err)

	var report struct {
		Flags   map[string]bool `yaml:"flags"`
		Buckets []struct {
			Title string   `yaml:"title"`
			Items []string `yaml:"items"`
		} `yaml:"buckets"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	require.Len(t, report.Buckets, 1)
	assert.Equal(t, "General support", report.Buckets[0].Title)
	assert.Len(t, report.Flags, 6)
}

func TestNoteCmd(t *testing.T) {
	plainOutput(t)

	out, err := execute(t, noteCmd(), "",
		"--caregiver", "  Sam ",
		"--recipient", "Ada",
		"--date", "2024-05-01",
		"--stress", "very-high",
		"--concerns", "Woke at 3am",
	)
	require.NoError(t, err)

	assert.Contains(t, out, "CARE NOTE (Non-Diagnostic) — 2024-05-01")
	assert.Contains(t, out, "Caregiver: Sam\n")
	assert.Contains(t, out, "Care Recipient: Ada")
	assert.Contains(t, out, "- Very High")
	assert.Contains(t, out, "- Woke at 3am")
	assert.Contains(t, out, "- [Add practical steps you took]")
}

func TestNoteCmd_InvalidStress(t *testing.T) {
	_, err := execute(t, noteCmd(), "", "--stress", "extreme")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidStressLevel)
}

func TestCheckInCmd(t *testing.T) {
	plainOutput(t)

	tests := []struct {
		name     string
		stdin    string
		args     []string
		contains []string
		excludes []string
	}{
		{
			name:     "rest with no feeling",
			args:     []string{"--need", "rest"},
			contains: []string{"Quick check-in: Rest", "Block a 20–60 minute rest window"},
			excludes: []string{"get immediate help"},
		},
		{
			name:     "need by label",
			args:     []string{"--need", "A plan for tomorrow", "tired"},
			contains: []string{"Quick check-in: A plan for tomorrow"},
		},
		{
			name:     "crisis feeling from stdin",
			stdin:    "I want to die\nsecond line ignored\n",
			args:     []string{"-n", "emotional_support"},
			contains: []string{"If you might harm yourself or someone else, get immediate help.", "Samaritans 116 123"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, checkInCmd(), tt.stdin, tt.args...)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, out, unwanted)
			}
		})
	}
}

func TestCheckInCmd_JSON(t *testing.T) {
	out, err := execute(t, checkInCmd(), "", "--need", "rest", "-o", "json")
	require.NoError(t, err)

	var result struct {
		Need  string          `json:"need"`
		Steps []string        `json:"steps"`
		Flags map[string]bool `json:"flags"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "rest", result.Need)
	assert.Len(t, result.Steps, 2)
	for name, raised := range result.Flags {
		assert.False(t, raised, name)
	}
}

func TestCheckInCmd_InvalidNeed(t *testing.T) {
	_, err := execute(t, checkInCmd(), "", "--need", "pizza")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidNeed)
}

func TestPatternsCmd(t *testing.T) {
	out, err := execute(t, patternsCmd(), "")
	require.NoError(t, err)

	assert.Contains(t, out, "KIND")
	assert.Regexp(t, `flag\s+crisis\s+\d+\s+3`, out)
	assert.Contains(t, out, "Fall-prevention basics")

	out, err = execute(t, patternsCmd(), "", "--output", "yaml")
	require.NoError(t, err)

	var dump struct {
		Flags []struct {
			Name       string   `yaml:"name"`
			Exclusions []string `yaml:"exclusions"`
		} `yaml:"flags"`
		Topics []struct {
			Name string `yaml:"name"`
		} `yaml:"topics"`
		Fallback struct {
			Title string `yaml:"title"`
		} `yaml:"fallback"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &dump))
	require.Len(t, dump.Flags, 6)
	assert.Equal(t, "crisis", dump.Flags[0].Name)
	assert.NotEmpty(t, dump.Flags[0].Exclusions)
	require.Len(t, dump.Topics, 6)
	assert.Equal(t, "medication", dump.Topics[0].Name)
	assert.Equal(t, "General support", dump.Fallback.Title)
}

func TestPatternsCmd_BadFormat(t *testing.T) {
	_, err := execute(t, patternsCmd(), "", "-o", "text")
	assert.ErrorIs(t, err, common.ErrInvalidOutputFormat)
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, versionCmd(), "")
	require.NoError(t, err)
	assert.Equal(t, "tend version dev\n", out)
}
