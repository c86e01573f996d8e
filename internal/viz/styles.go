package viz

import "github.com/charmbracelet/lipgloss"

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

// Header renders a section title in the tool's accent color.
func Header(s string) string { return cyan.Render(s) }

// Warn renders a recoverable-problem notice.
func Warn(s string) string { return yellow.Render(s) }

// Good renders a success notice.
func Good(s string) string { return green.Render(s) }

// Strong renders emphasized values.
func Strong(s string) string { return white.Render(s) }

// Faint renders secondary detail.
func Faint(s string) string { return dim.Render(s) }
