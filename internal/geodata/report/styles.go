package report

import "github.com/charmbracelet/lipgloss"

// Color palette, shared with the findings browser.
var (
	ColorSuccess = lipgloss.Color("#10B981") // Emerald
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorWarning = lipgloss.Color("#F59E0B") // Amber
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
	ColorHeader  = lipgloss.Color("#06B6D4") // Cyan
)

// Styles bundles the render styles for one report. A zero Styles value
// renders plain text, which is what non-TTY output and --no-color get.
type Styles struct {
	Header  lipgloss.Style
	Pass    lipgloss.Style
	Fail    lipgloss.Style
	Muted   lipgloss.Style
	SevHigh lipgloss.Style
	SevMed  lipgloss.Style
	SevLow  lipgloss.Style
}

// PlainStyles renders without any terminal styling.
func PlainStyles() Styles {
	return Styles{}
}

// ColorStyles returns the styled palette.
func ColorStyles() Styles {
	return Styles{
		Header:  lipgloss.NewStyle().Foreground(ColorHeader).Bold(true),
		Pass:    lipgloss.NewStyle().Foreground(ColorSuccess),
		Fail:    lipgloss.NewStyle().Foreground(ColorError).Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(ColorMuted),
		SevHigh: lipgloss.NewStyle().Foreground(ColorError),
		SevMed:  lipgloss.NewStyle().Foreground(ColorWarning),
		SevLow:  lipgloss.NewStyle().Foreground(ColorMuted),
	}
}
