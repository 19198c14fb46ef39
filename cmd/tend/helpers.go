package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Veraticus/tend/internal/cli"
	"github.com/Veraticus/tend/internal/common"
	"github.com/Veraticus/tend/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --output.
const (
	formatText  = "text"
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// loadSettings resolves display and logging settings from the global viper.
func loadSettings() (config.Settings, error) {
	settings, err := config.Load(viper.GetViper())
	if err != nil {
		return config.Settings{}, common.NewUserError("Check your tend configuration", err)
	}
	return settings, nil
}

// newPrinter builds a printer for the command's output stream.
func newPrinter(cmd *cobra.Command) (*cli.Printer, config.Settings, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, config.Settings{}, err
	}
	return cli.NewPrinter(cmd.OutOrStdout(), printerOptions(settings)), settings, nil
}

func printerOptions(s config.Settings) cli.Options {
	return cli.Options{
		Width:    s.Display.Width,
		Color:    s.Display.Color,
		Markdown: s.Display.Markdown,
	}
}

// stdinIsTerminal reports whether r is an interactive terminal.
func stdinIsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// readText returns the joined args, or all of stdin when no args were given
// and stdin is piped.
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		text := strings.TrimSpace(strings.Join(args, " "))
		if text == "" {
			return "", common.NewUserError("Describe the situation as arguments or on stdin", common.ErrNoInput)
		}
		return text, nil
	}

	in := cmd.InOrStdin()
	if stdinIsTerminal(in) {
		return "", common.NewUserError("Describe the situation as arguments or on stdin", common.ErrNoInput)
	}

	text, err := cli.NewNonBlockingReader(in).ReadAll(cmd.Context())
	if err != nil {
		common.LogError(err, "failed to read stdin", nil)
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	if text == "" {
		return "", common.NewUserError("Describe the situation as arguments or on stdin", common.ErrNoInput)
	}
	return text, nil
}

// readLine returns the joined args, or the first line of piped stdin.
// Unlike readText it accepts empty input.
func readLine(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.TrimSpace(strings.Join(args, " ")), nil
	}

	in := cmd.InOrStdin()
	if stdinIsTerminal(in) {
		return "", nil
	}

	line, err := cli.NewNonBlockingReader(in).ReadLine(cmd.Context())
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return line, nil
}

// validateFormat rejects any format not in allowed.
func validateFormat(format string, allowed ...string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return common.NewUserError(
		fmt.Sprintf("Use one of: %s", strings.Join(allowed, ", ")),
		fmt.Errorf("%w: %q", common.ErrInvalidOutputFormat, format),
	)
}

// writeStructured encodes v as JSON or YAML.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", common.ErrInvalidOutputFormat, format)
	}
}
