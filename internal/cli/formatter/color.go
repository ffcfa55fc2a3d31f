package formatter

import (
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorCyan   = lipgloss.Color("#8ec0c0")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleCyan   = lipgloss.NewStyle().Foreground(ColorCyan)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// UnitStyle maps a unit's declared color name to a style.
func UnitStyle(color string) lipgloss.Style {
	switch color {
	case "green":
		return StyleGreen
	case "blue":
		return StyleBlue
	case "yellow":
		return StyleYellow
	case "red":
		return StyleRed
	case "purple":
		return StylePurple
	default:
		return StyleFg
	}
}

// Dim renders s in the dim style.
func Dim(s string) string { return StyleDim.Render(s) }

// Bold renders s in the bold foreground style.
func Bold(s string) string { return StyleBold.Render(s) }

// Header renders s in the header style.
func Header(s string) string { return StyleHeader.Render(s) }
