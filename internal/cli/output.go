package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/bisko/internal/config"
	"github.com/rshade/bisko/internal/engine"
	"github.com/rshade/bisko/internal/report"
	"github.com/rshade/bisko/internal/tui"
)

// errBinaryToTerminal is returned when a binary report would be written to
// the terminal.
var errBinaryToTerminal = errors.New("binary output needs --out or a redirected stdout")

// resolveFormat returns the requested format, falling back to the
// configured default.
func resolveFormat(flag string, cfg *config.Config) (string, error) {
	format := strings.ToLower(flag)
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	if !slices.Contains(config.OutputFormats(), format) {
		return "", fmt.Errorf(
			"unsupported output format: %s (supported: %s)",
			format, strings.Join(config.OutputFormats(), ", "),
		)
	}
	return format, nil
}

// writeResult renders res in format to outPath, or to the command's output
// when outPath is empty. Table output to a terminal gets the styled summary
// or, with a terminal on stdin too, the interactive sector browser.
func writeResult(cmd *cobra.Command, res *engine.Result, format, outPath string, precision int, plain bool) (err error) {
	w := cmd.OutOrStdout()
	toStdout := outPath == "" && w == os.Stdout

	if outPath != "" {
		f, createErr := os.Create(outPath)
		if createErr != nil {
			return fmt.Errorf("creating output file: %w", createErr)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("closing output file: %w", closeErr)
			}
		}()
		w = f
	}

	switch format {
	case config.FormatTable:
		mode := tui.ModePlain
		if toStdout {
			mode = tui.DetectOutputMode(plain, os.Stdout, os.Stdin)
		}
		return renderTable(cmd, w, res, precision, mode)
	case config.FormatJSON:
		return engine.RenderJSON(w, res)
	case config.FormatNDJSON:
		return engine.RenderNDJSON(w, res)
	case config.FormatXLSX, config.FormatPDF:
		if toStdout && tui.IsTerminal(os.Stdout) {
			return errBinaryToTerminal
		}
		return report.Write(w, format, res, precision)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func renderTable(cmd *cobra.Command, w io.Writer, res *engine.Result, precision int, mode tui.OutputMode) error {
	switch mode {
	case tui.ModeInteractive:
		return tui.Run(res, precision, tea.WithContext(cmd.Context()), tea.WithAltScreen())
	case tui.ModeStyled:
		if _, err := fmt.Fprintln(w, tui.RenderSummary(res, tui.TerminalWidth(os.Stdout), precision)); err != nil {
			return err
		}
	}
	return engine.RenderTable(w, res, precision)
}
