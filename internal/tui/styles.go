package tui

import "github.com/charmbracelet/lipgloss"

// Palette lifted from the app's visual identity: emerald greens on a
// pale mint background.
var (
	colorPrimary = lipgloss.Color("#10b981")
	colorDark    = lipgloss.Color("#059669")
	colorDeep    = lipgloss.Color("#047857")
	colorError   = lipgloss.Color("#dc2626")
	colorMuted   = lipgloss.Color("#6b7280")

	titleStyle = lipgloss.NewStyle().
			Foreground(colorDark).
			Bold(true).
			Padding(0, 1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorDeep).
			Padding(0, 1)

	menuItemStyle = lipgloss.NewStyle().
			Padding(0, 2)

	menuSelectedStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true).
				Padding(0, 2)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorDeep).
			Width(16)

	tabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(colorMuted)

	activeTabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(colorPrimary).
			Bold(true).
			Underline(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorDark).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 2)
)
