package main

import (
	"github.com/Veraticus/tend/internal/carenote"
	"github.com/Veraticus/tend/internal/common"
	"github.com/Veraticus/tend/internal/model"
	"github.com/spf13/cobra"
)

func noteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Generate a non-diagnostic care note",
		Long: `Generate a plain-text care note to copy into a message or share with a
licensed professional. Every field is optional; missing fields get a
bracketed placeholder and a missing date uses today.`,
		Example: `  tend note --caregiver Sam --recipient Ada --stress high \
    --concerns "Woke at 3am, confused about where she was"`,
		RunE: runNote,
	}

	cmd.Flags().String("caregiver", "", "Caregiver name")
	cmd.Flags().String("recipient", "", "Care recipient name")
	cmd.Flags().String("date", "", "Date of the note (default: today, YYYY-MM-DD)")
	cmd.Flags().String("stress", string(model.DefaultStressLevel), "Caregiver stress level (low, medium, high, very-high)")
	cmd.Flags().String("concerns", "", "What happened (objective observations)")
	cmd.Flags().String("actions", "", "What helped / actions taken")
	cmd.Flags().String("questions", "", "Questions for a licensed professional")
	return cmd
}

func runNote(cmd *cobra.Command, _ []string) error {
	stressFlag, _ := cmd.Flags().GetString("stress")
	stress, err := model.ParseStressLevel(stressFlag)
	if err != nil {
		return common.NewUserError("Choose a stress level", err)
	}

	note := model.CareNote{StressLevel: stress}
	note.Caregiver, _ = cmd.Flags().GetString("caregiver")
	note.Recipient, _ = cmd.Flags().GetString("recipient")
	note.Date, _ = cmd.Flags().GetString("date")
	note.Concerns, _ = cmd.Flags().GetString("concerns")
	note.ActionsTaken, _ = cmd.Flags().GetString("actions")
	note.Questions, _ = cmd.Flags().GetString("questions")

	printer, _, err := newPrinter(cmd)
	if err != nil {
		return err
	}
	printer.Note(carenote.Format(note))
	return nil
}
