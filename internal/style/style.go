// Package style provides the lipgloss styles for colorized printc output.
// Styling covers only the label and separator; renderings stay untouched.
package style

import "github.com/charmbracelet/lipgloss"

var (
	// Accent is used for labels.
	Accent = lipgloss.Color("#8BC34A")
	// Muted is used for the separator.
	Muted = lipgloss.Color("#7f8c99")

	labelStyle     = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	separatorStyle = lipgloss.NewStyle().Foreground(Muted)
)

// Label styles an entry label for terminal output.
func Label(s string) string {
	return labelStyle.Render(s)
}

// Separator styles the " = " between label and rendering.
func Separator(s string) string {
	return separatorStyle.Render(s)
}
