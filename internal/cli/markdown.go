package cli

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders markdown for the terminal, wrapped to width.
// It falls back to the source text if rendering fails.
func RenderMarkdown(md string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-4),
	)
	if err != nil {
		return md
	}

	rendered, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(rendered, "\n")
}

// StripMarkdown removes bold and italic markers for plain output.
func StripMarkdown(md string) string {
	md = strings.ReplaceAll(md, "**", "")
	return strings.ReplaceAll(md, "__", "")
}
