package preview

import "github.com/charmbracelet/lipgloss"

var (
	accentFg  = lipgloss.Color("#7C3AED")
	lineFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}

	titleStyle  = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	canvasStyle = lipgloss.NewStyle().Foreground(lineFg)
	dimStyle    = lipgloss.NewStyle().Foreground(baseDimFg)
)
