package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorScreen = lipgloss.Color("#9bbc0f")
	colorPixel  = lipgloss.Color("#0f380f")
	colorBezel  = lipgloss.Color("#50545e")
	colorDim    = lipgloss.Color("#8bac0f")
	colorRed    = lipgloss.Color("#8b0000")
)

type theme struct {
	Screen    lipgloss.Style
	Header    lipgloss.Style
	Clock     lipgloss.Style
	Status    lipgloss.Style
	Active    lipgloss.Style
	Inactive  lipgloss.Style
	Muted     lipgloss.Style
	Container lipgloss.Style
}

func defaultTheme() theme {
	return theme{
		Screen: lipgloss.NewStyle().
			Background(colorScreen).
			Foreground(colorPixel).
			Padding(1, 2),
		Header: lipgloss.NewStyle().
			Background(colorScreen).
			Foreground(colorPixel).
			Bold(true),
		Clock: lipgloss.NewStyle().
			Background(colorScreen).
			Foreground(colorPixel).
			Bold(true).
			Align(lipgloss.Center),
		Status: lipgloss.NewStyle().
			Background(colorScreen).
			Foreground(colorPixel).
			Align(lipgloss.Center),
		Active: lipgloss.NewStyle().
			Background(colorPixel).
			Foreground(colorScreen).
			Bold(true).
			Padding(0, 1),
		Inactive: lipgloss.NewStyle().
			Background(colorScreen).
			Foreground(colorDim).
			Padding(0, 1),
		Muted: lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true),
		Container: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBezel).
			Padding(0, 1),
	}
}
