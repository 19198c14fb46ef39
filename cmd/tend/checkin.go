package main

import (
	"github.com/Veraticus/tend/internal/cli"
	"github.com/Veraticus/tend/internal/common"
	"github.com/Veraticus/tend/internal/model"
	"github.com/Veraticus/tend/internal/triage"
	"github.com/spf13/cobra"
)

func checkInCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "checkin [feeling...]",
		Aliases: []string{"check-in"},
		Short:   "Quick caregiver check-in",
		Long: `Answer "how are you doing right now?" and pick what you need most in the
next 24 hours. The feeling is taken from the arguments or the first line of
stdin.

Needs: rest, help_from_someone_else, plan_for_tomorrow, emotional_support,
safer_environment, not_sure.`,
		Example: `  tend checkin --need rest "running on empty"`,
		RunE:    runCheckIn,
	}

	cmd.Flags().StringP("need", "n", string(model.NeedNotSure), "What you need most in the next 24 hours")
	cmd.Flags().StringP("output", "o", formatText, "Output format (text, json, yaml)")
	return cmd
}

func runCheckIn(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("output")
	if err := validateFormat(format, formatText, formatJSON, formatYAML); err != nil {
		return err
	}

	needFlag, _ := cmd.Flags().GetString("need")
	need, err := model.ParseNeed(needFlag)
	if err != nil {
		return common.NewUserError("Choose a need (see tend checkin --help)", err)
	}

	feeling, err := readLine(cmd, args)
	if err != nil {
		return err
	}

	result := triage.NextSteps(feeling, need)

	common.LogDebug("check-in complete", common.Fields{
		"need":   string(need),
		"raised": result.Flags.Raised(),
	})

	if format != formatText {
		return writeStructured(cmd.OutOrStdout(), format, result)
	}

	printer, _, err := newPrinter(cmd)
	if err != nil {
		return err
	}
	printer.Title(cli.CheckIcon, "Quick check-in: "+need.Label())
	printer.Banners(cli.CheckInBanners(result.Flags))
	printer.Steps(result.Steps)
	return nil
}
