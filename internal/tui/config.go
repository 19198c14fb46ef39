package tui

import (
	"time"

	"github.com/Veraticus/tend/internal/carenote"
	"github.com/Veraticus/tend/internal/triage"
	"github.com/Veraticus/tend/internal/tui/components"
	"github.com/Veraticus/tend/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme     themes.Theme
	Detector  *triage.Detector
	Markdown  components.MarkdownFunc
	Formatter carenote.Formatter
	Width     int
	Height    int
	AltScreen bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:     themes.Default,
		Detector:  triage.Default(),
		Markdown:  components.PlainMarkdown,
		Width:     80,
		Height:    24,
		AltScreen: true,
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithDetector replaces the built-in pattern tables.
func WithDetector(d *triage.Detector) Option {
	return func(c *Config) {
		if d != nil {
			c.Detector = d
		}
	}
}

// WithClock sets the clock used for undated care notes.
func WithClock(now func() time.Time) Option {
	return func(c *Config) {
		c.Formatter.Now = now
	}
}

// WithMarkdown sets how advice markdown is rendered.
func WithMarkdown(md components.MarkdownFunc) Option {
	return func(c *Config) {
		if md != nil {
			c.Markdown = md
		}
	}
}

// WithAltScreen toggles the alternate screen buffer.
func WithAltScreen(enabled bool) Option {
	return func(c *Config) {
		c.AltScreen = enabled
	}
}
