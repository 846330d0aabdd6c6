package ui

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"})

	yearStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"})

	statsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#AAAAAA"})

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"})

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"})

	sliderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#888888", Dark: "#888888"})

	// Density tiers for map cells, sparse to dense.
	cellStyles = [...]lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#99bbdd", Dark: "#335577"}),
		lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#5588cc", Dark: "#5588bb"}),
		lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#2255aa", Dark: "#77bbee"}),
		lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#113377", Dark: "#aaddff"}),
	}
)
