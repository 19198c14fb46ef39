package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/Veraticus/tend/internal/model"
	"github.com/Veraticus/tend/internal/triage"
	"github.com/spf13/cobra"
)

type patternsDump struct {
	Flags    []triage.PatternGroup `json:"flags" yaml:"flags"`
	Topics   []triage.Topic        `json:"topics" yaml:"topics"`
	Fallback model.Bucket          `json:"fallback" yaml:"fallback"`
}

func patternsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "patterns",
		Aliases: []string{"pattern"},
		Short:   "Show the built-in keyword rules",
		Long: `Show the keyword and regex rules behind safety flags and suggestion
buckets. The table lists each group; yaml and json include every pattern.`,
		RunE: runPatterns,
	}

	cmd.Flags().StringP("output", "o", formatTable, "Output format (table, yaml, json)")
	return cmd
}

func runPatterns(cmd *cobra.Command, _ []string) error {
	format, _ := cmd.Flags().GetString("output")
	if err := validateFormat(format, formatTable, formatYAML, formatJSON); err != nil {
		return err
	}

	detector := triage.Default()
	dump := patternsDump{
		Flags:    detector.FlagGroups(),
		Topics:   detector.Topics(),
		Fallback: triage.FallbackBucket(),
	}

	if format != formatTable {
		return writeStructured(cmd.OutOrStdout(), format, dump)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "KIND\tNAME\tPATTERNS\tEXCLUSIONS\tBUCKET")
	_, _ = fmt.Fprintln(w, "────\t────\t────────\t──────────\t──────")

	for _, g := range dump.Flags {
		_, _ = fmt.Fprintf(w, "flag\t%s\t%d\t%d\t-\n", g.Name, len(g.Patterns), len(g.Exclusions))
	}
	for _, t := range dump.Topics {
		_, _ = fmt.Fprintf(w, "topic\t%s\t%d\t%d\t%s\n", t.Name, len(t.Patterns), len(t.Exclusions), t.Bucket.Title)
	}

	return w.Flush()
}
