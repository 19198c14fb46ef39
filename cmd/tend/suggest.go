package main

import (
	"github.com/Veraticus/tend/internal/cli"
	"github.com/Veraticus/tend/internal/common"
	"github.com/Veraticus/tend/internal/model"
	"github.com/Veraticus/tend/internal/triage"
	"github.com/spf13/cobra"
)

type suggestReport struct {
	Buckets []model.Bucket    `json:"buckets" yaml:"buckets"`
	Flags   model.SafetyFlags `json:"flags" yaml:"flags"`
}

func suggestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "suggest [text...]",
		Aliases: []string{"suggestions"},
		Short:   "Show practical, non-diagnostic suggestions",
		Long: `Show safety notices and practical suggestions for a free-text description
of a caregiving situation. Only keywords are used; nothing is diagnosed.`,
		Example: `  tend suggest "Mom keeps forgetting her pills and isn't sleeping"`,
		RunE:    runSuggest,
	}

	cmd.Flags().StringP("output", "o", formatText, "Output format (text, json, yaml)")
	return cmd
}

func runSuggest(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("output")
	if err := validateFormat(format, formatText, formatJSON, formatYAML); err != nil {
		return err
	}

	text, err := readText(cmd, args)
	if err != nil {
		return err
	}

	detector := triage.Default()
	report := suggestReport{
		Flags:   detector.SafetyFlags(text),
		Buckets: detector.Suggestions(text),
	}

	common.LogDebug("built suggestions", common.Fields{
		"raised":  report.Flags.Raised(),
		"buckets": len(report.Buckets),
	})

	if format != formatText {
		return writeStructured(cmd.OutOrStdout(), format, report)
	}

	printer, _, err := newPrinter(cmd)
	if err != nil {
		return err
	}

	printer.Title(cli.CompassIcon, "Support suggestions")
	printer.Markdown(cli.Disclaimer)
	printer.Divider()
	printer.Banners(cli.SuggestionBanners(report.Flags))
	printer.Buckets(report.Buckets)
	printer.Divider()
	printer.Subtle(cli.Reminder)
	return nil
}
