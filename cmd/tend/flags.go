package main

import (
	"github.com/Veraticus/tend/internal/common"
	"github.com/Veraticus/tend/internal/model"
	"github.com/Veraticus/tend/internal/triage"
	"github.com/spf13/cobra"
)

type flagsReport struct {
	Matches []triage.GroupMatch `json:"matches,omitempty" yaml:"matches,omitempty"`
	Flags   model.SafetyFlags   `json:"flags" yaml:"flags"`
}

func flagsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flags [text...]",
		Short: "Detect safety keywords in a description",
		Long: `Check a free-text description for safety keywords (crisis, urgent medical,
burnout, conflict, wandering, falls). Text is taken from the arguments or
from stdin. A flag is a keyword match, not a diagnosis.`,
		Example: `  tend flags "Dad fell and seems confused"
  echo "I'm exhausted" | tend flags --output json`,
		RunE: runFlags,
	}

	cmd.Flags().Bool("explain", false, "Show the terms that raised each flag")
	cmd.Flags().StringP("output", "o", formatText, "Output format (text, json, yaml)")
	return cmd
}

func runFlags(cmd *cobra.Command, args []string) error {
	explain, _ := cmd.Flags().GetBool("explain")
	format, _ := cmd.Flags().GetString("output")
	if err := validateFormat(format, formatText, formatJSON, formatYAML); err != nil {
		return err
	}

	text, err := readText(cmd, args)
	if err != nil {
		return err
	}

	detector := triage.Default()
	report := flagsReport{Flags: detector.SafetyFlags(text)}
	if explain {
		report.Matches = detector.MatchedGroups(text)
	}

	common.LogDebug("classified safety flags", common.Fields{
		"raised": report.Flags.Raised(),
	})

	if format != formatText {
		return writeStructured(cmd.OutOrStdout(), format, report)
	}

	printer, _, err := newPrinter(cmd)
	if err != nil {
		return err
	}
	printer.Flags(report.Flags)
	if explain {
		printer.Matches(report.Matches)
	}
	return nil
}
