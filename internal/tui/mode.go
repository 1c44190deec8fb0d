package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how a table result is presented.
type OutputMode int

const (
	// ModePlain writes the tabwriter table.
	ModePlain OutputMode = iota
	// ModeStyled writes the lipgloss summary followed by the table.
	ModeStyled
	// ModeInteractive launches the sector browser.
	ModeInteractive
)

func (m OutputMode) String() string {
	switch m {
	case ModeStyled:
		return "styled"
	case ModeInteractive:
		return "interactive"
	default:
		return "plain"
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// TerminalWidth returns the column count of f, or a default when f is not
// a terminal.
func TerminalWidth(f *os.File) int {
	if !IsTerminal(f) {
		return defaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// DetectOutputMode picks the presentation for table output. plain forces
// ModePlain; a terminal on both ends gets the browser, a terminal on
// stdout alone gets the styled summary.
func DetectOutputMode(plain bool, stdout, stdin *os.File) OutputMode {
	return ModeFor(plain, IsTerminal(stdout), IsTerminal(stdin))
}

// ModeFor is DetectOutputMode with the terminal checks already made.
func ModeFor(plain, stdoutTTY, stdinTTY bool) OutputMode {
	switch {
	case plain || !stdoutTTY:
		return ModePlain
	case stdinTTY:
		return ModeInteractive
	default:
		return ModeStyled
	}
}
