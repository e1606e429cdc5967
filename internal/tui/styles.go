package tui

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	ColorPrimary = lipgloss.Color("#006A4E") // bottle green
	ColorAccent  = lipgloss.Color("#F42A41") // red
	ColorSuccess = lipgloss.Color("#2E8B57")
	ColorDanger  = lipgloss.Color("#E74C3C")
	ColorMuted   = lipgloss.Color("#7F8C8D")
	ColorBorder  = lipgloss.Color("#3C3C3C")
)

// Base styles
var (
	AppStyle = lipgloss.NewStyle().Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(ColorPrimary).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)

	LabelStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	ValueStyle = lipgloss.NewStyle().Bold(true)

	TotalStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	TableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)

	ErrorStyle = lipgloss.NewStyle().Foreground(ColorDanger)

	InfoStyle = lipgloss.NewStyle().Foreground(ColorSuccess)

	SliderTrackStyle = lipgloss.NewStyle().Foreground(ColorBorder)

	SliderThumbStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
)
