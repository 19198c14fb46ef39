package config

import (
	"fmt"

	"github.com/Veraticus/tend/internal/common"
	"github.com/spf13/viper"
)

// Config keys.
const (
	KeyLogLevel        = "logging.level"
	KeyLogFormat       = "logging.format"
	KeyDisplayMarkdown = "display.markdown"
	KeyDisplayColor    = "display.color"
	KeyDisplayWidth    = "display.width"
)

const minDisplayWidth = 40

// Settings is the resolved runtime configuration.
type Settings struct {
	Logging LoggingSettings
	Display DisplaySettings
}

// LoggingSettings controls the slog handler.
type LoggingSettings struct {
	Level  string
	Format string
}

// DisplaySettings controls terminal rendering.
type DisplaySettings struct {
	Width    int
	Markdown bool
	Color    bool
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Logging: LoggingSettings{
			Level:  "info",
			Format: "console",
		},
		Display: DisplaySettings{
			Width:    80,
			Markdown: true,
			Color:    true,
		},
	}
}

// SetDefaults registers the built-in settings on v so that files, env vars
// and flags only need to override what they change.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault(KeyLogLevel, d.Logging.Level)
	v.SetDefault(KeyLogFormat, d.Logging.Format)
	v.SetDefault(KeyDisplayMarkdown, d.Display.Markdown)
	v.SetDefault(KeyDisplayColor, d.Display.Color)
	v.SetDefault(KeyDisplayWidth, d.Display.Width)
}

// Load reads settings from v and validates them.
func Load(v *viper.Viper) (Settings, error) {
	s := Settings{
		Logging: LoggingSettings{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
		},
		Display: DisplaySettings{
			Width:    v.GetInt(KeyDisplayWidth),
			Markdown: v.GetBool(KeyDisplayMarkdown),
			Color:    v.GetBool(KeyDisplayColor),
		},
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks every setting.
func (s Settings) Validate() error {
	if _, err := common.ParseLevel(s.Logging.Level); err != nil {
		return err
	}

	switch s.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: invalid log format: %s", common.ErrInvalidConfig, s.Logging.Format)
	}

	if s.Display.Width < minDisplayWidth {
		return fmt.Errorf("%w: display.width must be at least %d, got %d", common.ErrInvalidConfig, minDisplayWidth, s.Display.Width)
	}

	return nil
}
