package main

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette — true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBase).
			Background(colorMauve).
			Padding(0, 1)

	modeByIDStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorGreen)

	modeByIndexStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorRed)

	itemStyle = lipgloss.NewStyle().
			Foreground(colorText).
			PaddingLeft(2)

	selectedItemStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPeach).
				PaddingLeft(0)

	idStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0)

	historyHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorBlue)

	historyStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorSurface0).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0)
)
