package main

import (
	"github.com/Veraticus/tend/internal/cli"
	"github.com/Veraticus/tend/internal/tui"
	"github.com/Veraticus/tend/internal/tui/components"
	"github.com/spf13/cobra"
)

func uiCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ui",
		Aliases: []string{"tui"},
		Short:   "Open the interactive caregiver support app",
		Long: `Open a terminal app with three tabs: Care Note Builder, Support
Suggestions and Quick Check-in. Press esc or ctrl+c to quit.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}

			md := components.PlainMarkdown
			if settings.Display.Markdown {
				width := settings.Display.Width
				md = func(s string) string {
					return cli.RenderMarkdown(s, width)
				}
			}

			return tui.Run(cmd.Context(), tui.WithMarkdown(md))
		},
	}
}
