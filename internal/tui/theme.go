package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha subset, true-color hex values.
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorLavender lipgloss.Color = "#b4befe"
	colorText     lipgloss.Color = "#cdd6f4"
	colorOverlay1 lipgloss.Color = "#7f849c"
)

const (
	colorBrand   = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorPrice   = colorPeach
	colorMuted   = colorOverlay1
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorBrand)
	hintStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	cursorStyle  = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
	itemStyle    = lipgloss.NewStyle().Foreground(colorText)
	priceStyle   = lipgloss.NewStyle().Foreground(colorPrice)
	descStyle    = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)
	totalStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorSuccess)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
	statusStyle  = lipgloss.NewStyle().Foreground(colorSuccess)
	sectionStyle = lipgloss.NewStyle().Underline(true)
)
