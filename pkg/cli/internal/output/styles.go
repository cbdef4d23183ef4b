package output

import "github.com/charmbracelet/lipgloss"

// Status colors.
var (
	successColor = lipgloss.Color("#00D26A")
	warningColor = lipgloss.Color("#FFB800")
	errorColor   = lipgloss.Color("#FF3838")
	mutedColor   = lipgloss.Color("#6B7280")
)

var (
	successStyle = lipgloss.NewStyle().Foreground(successColor)
	warningStyle = lipgloss.NewStyle().Foreground(warningColor)
	errorStyle   = lipgloss.NewStyle().Foreground(errorColor)
	mutedStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	boldStyle    = lipgloss.NewStyle().Bold(true)
)

// render applies a style only when color output is enabled, so piped and
// NO_COLOR output stays plain.
func render(style lipgloss.Style, text string) string {
	if !ColorEnabled() {
		return text
	}
	return style.Render(text)
}

// Success renders text in the success color.
func Success(text string) string {
	return render(successStyle, text)
}

// Warning renders text in the warning color.
func Warning(text string) string {
	return render(warningStyle, text)
}

// Error renders text in the error color.
func Error(text string) string {
	return render(errorStyle, text)
}

// Muted renders text dimmed.
func Muted(text string) string {
	return render(mutedStyle, text)
}

// Bold renders text bold.
func Bold(text string) string {
	return render(boldStyle, text)
}
