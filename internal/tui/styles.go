package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorPrimary   = lipgloss.Color("12")  // bright blue
	colorSecondary = lipgloss.Color("10")  // bright green
	colorDim       = lipgloss.Color("240") // gray
	colorHighlight = lipgloss.Color("11")  // bright yellow
	colorFailing   = lipgloss.Color("9")   // bright red
	colorBorder    = lipgloss.Color("238") // dark gray

	// Input area
	styleInput = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	// Table rows
	styleRowSelected = lipgloss.NewStyle().
				Foreground(colorHighlight).
				Bold(true)

	styleRowNormal = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	styleRowFailing = lipgloss.NewStyle().
			Foreground(colorFailing)

	styleTableHeader = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleMetric = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	// Panels
	stylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorBorder)

	// Status bar
	styleStatusBar = lipgloss.NewStyle().
			Foreground(colorDim).
			Padding(0, 1)

	// Panel titles
	styleTitle = lipgloss.NewStyle().
			Foreground(colorDim).
			Bold(true)
)
