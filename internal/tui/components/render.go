// Package components contains the bubbletea models behind each tend tab.
package components

import (
	"strings"

	"github.com/Veraticus/tend/internal/cli"
	"github.com/Veraticus/tend/internal/model"
	"github.com/Veraticus/tend/internal/tui/themes"
)

// MarkdownFunc turns advice markdown into terminal text.
type MarkdownFunc func(md string) string

// PlainMarkdown strips markup; it is the default when none is configured.
func PlainMarkdown(md string) string {
	return cli.StripMarkdown(md)
}

func renderBanners(theme themes.Theme, banners []cli.Banner, md MarkdownFunc) string {
	var b strings.Builder
	for _, banner := range banners {
		switch banner.Level {
		case cli.LevelError:
			b.WriteString(theme.StatusError.Render(cli.ErrorIcon + " " + banner.Message))
		case cli.LevelWarning:
			b.WriteString(theme.StatusWarning.Render(cli.WarningIcon + " " + banner.Message))
		default:
			b.WriteString(theme.StatusInfo.Render(cli.InfoIcon + " " + banner.Message))
		}
		b.WriteString("\n")
		if banner.CrisisNote {
			b.WriteString(md(cli.CrisisNote))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderList(items []string, md MarkdownFunc) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "- "+item)
	}
	return md(strings.Join(lines, "\n"))
}

func renderBuckets(theme themes.Theme, buckets []model.Bucket, md MarkdownFunc) string {
	sections := make([]string, 0, len(buckets))
	for _, bucket := range buckets {
		sections = append(sections, theme.Bold.Render(bucket.Title)+"\n"+renderList(bucket.Items, md))
	}
	return strings.Join(sections, "\n\n")
}

func label(theme themes.Theme, text string, focused bool) string {
	if focused {
		return theme.FocusedLabel.Render("› " + text)
	}
	return theme.BlurredLabel.Render("  " + text)
}
