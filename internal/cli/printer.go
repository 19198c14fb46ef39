package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/tend/internal/model"
	"github.com/Veraticus/tend/internal/triage"
	"github.com/charmbracelet/lipgloss"
)

// Options controls how a Printer renders.
type Options struct {
	Width    int
	Color    bool
	Markdown bool
}

// Printer writes human-readable command output.
type Printer struct {
	w    io.Writer
	opts Options
}

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer, opts Options) *Printer {
	if opts.Width <= 0 {
		opts.Width = 80
	}
	return &Printer{w: w, opts: opts}
}

func (p *Printer) println(s string) {
	_, _ = fmt.Fprintln(p.w, s)
}

func (p *Printer) style(st lipgloss.Style, s string) string {
	if !p.opts.Color {
		return s
	}
	return st.Render(s)
}

// Title prints a heading followed by a blank line.
func (p *Printer) Title(icon, title string) {
	if p.opts.Color {
		p.println(FormatTitle(icon, title))
	} else {
		p.println(icon + " " + title)
	}
	p.println("")
}

// Markdown prints md rendered for the terminal, or stripped of markup when
// markdown rendering is off.
func (p *Printer) Markdown(md string) {
	if p.opts.Markdown {
		p.println(RenderMarkdown(md, p.opts.Width))
		return
	}
	p.println(StripMarkdown(md))
}

// Subtle prints de-emphasized text.
func (p *Printer) Subtle(s string) {
	p.println(p.style(SubtleStyle, s))
}

// Divider prints a horizontal rule sized to the configured width.
func (p *Printer) Divider() {
	p.println(p.style(SubtleStyle, strings.Repeat("─", p.opts.Width)))
}

// Banners prints each banner, followed by the crisis note when one asks for it.
func (p *Printer) Banners(banners []Banner) {
	for _, b := range banners {
		var line string
		switch b.Level {
		case LevelError:
			line = ErrorIcon + " " + b.Message
			line = p.style(ErrorStyle, line)
		case LevelWarning:
			line = p.style(WarningStyle, WarningIcon+" "+b.Message)
		default:
			line = p.style(InfoStyle, InfoIcon+" "+b.Message)
		}
		p.println(line)
		if b.CrisisNote {
			p.Markdown(CrisisNote)
		}
	}
	if len(banners) > 0 {
		p.println("")
	}
}

// Flags prints one row per safety flag.
func (p *Printer) Flags(flags model.SafetyFlags) {
	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	for _, name := range model.FlagNames() {
		value := "no"
		if flags.Get(name) {
			value = "yes"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\n", name, value)
	}
	_ = tw.Flush()
}

// Matches prints the terms behind each raised flag.
func (p *Printer) Matches(matches []triage.GroupMatch) {
	if len(matches) == 0 {
		p.Subtle("No safety keywords matched.")
		return
	}
	p.println("")
	p.println(p.style(BoldStyle, "Matched terms:"))
	for _, m := range matches {
		p.println(fmt.Sprintf("  %s: %s", m.Name, strings.Join(m.Terms, ", ")))
	}
}

// Buckets prints every suggestion bucket as a titled list.
func (p *Printer) Buckets(buckets []model.Bucket) {
	for i, b := range buckets {
		if i > 0 {
			p.println("")
		}
		p.println(p.style(TitleStyle, b.Title))
		p.Markdown(bulletList(b.Items))
	}
}

// Steps prints next steps as a bulleted list.
func (p *Printer) Steps(steps []string) {
	p.println(p.style(BoldStyle, "Suggested next steps (non-medical):"))
	p.Markdown(bulletList(steps))
}

// Note prints a generated care note, boxed when color is on.
func (p *Printer) Note(note string) {
	note = strings.TrimRight(note, "\n")
	if p.opts.Color {
		p.println(FormatSuccess("Generated. Copy/paste below:"))
		p.println(RenderBox(NoteIcon+" Care note", note))
		return
	}
	p.println(note)
}

func bulletList(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "- "+item)
	}
	return strings.Join(lines, "\n")
}
