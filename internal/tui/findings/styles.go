package findings

import "github.com/charmbracelet/lipgloss"

// Color palette, matching the report renderer.
var (
	ColorPrimary   = lipgloss.Color("#06B6D4") // Cyan
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorWarning   = lipgloss.Color("#F59E0B") // Amber
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	FilterBarStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	FilterActiveStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Bold(true)

	PassStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	SevHighStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	SevMediumStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	SevLowStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)
