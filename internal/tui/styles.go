package tui

import "github.com/charmbracelet/lipgloss"

// Palette.
const (
	ColorHeader   = lipgloss.Color("39")
	ColorLabel    = lipgloss.Color("245")
	ColorValue    = lipgloss.Color("255")
	ColorBorder   = lipgloss.Color("62")
	ColorSubtle   = lipgloss.Color("241")
	ColorSelected = lipgloss.Color("57")
	ColorTotal    = lipgloss.Color("214")
)

// Shared styles.
//
//nolint:gochecknoglobals // lipgloss styles are immutable values shared across views.
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorValue)
	SubtleStyle = lipgloss.NewStyle().Foreground(ColorSubtle)
	InfoStyle   = lipgloss.NewStyle().Italic(true).Foreground(ColorLabel)
	TotalStyle  = lipgloss.NewStyle().Bold(true).Foreground(ColorTotal)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(ColorBorder).
				BorderBottom(true)

	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorValue).
				Background(ColorSelected)
)
