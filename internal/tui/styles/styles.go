// Package styles centralizes the lipgloss styling for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - all meet WCAG AA contrast (4.5:1) on dark surfaces
	PrimaryColor   = lipgloss.Color("#A78BFA") // Purple
	SecondaryColor = lipgloss.Color("#10B981") // Green
	WarningColor   = lipgloss.Color("#F59E0B") // Amber
	ErrorColor     = lipgloss.Color("#F87171") // Red
	MutedColor     = lipgloss.Color("#9CA3AF") // Gray
	SurfaceColor   = lipgloss.Color("#1F2937") // Dark surface
	TextColor      = lipgloss.Color("#F9FAFB") // Light text
	BorderColor    = lipgloss.Color("#6B7280") // Gray

	// Quadrant accents
	DoFirstColor   = lipgloss.Color("#F87171") // Red
	ScheduleColor  = lipgloss.Color("#60A5FA") // Blue
	DelegateColor  = lipgloss.Color("#FBBF24") // Yellow
	EliminateColor = lipgloss.Color("#9CA3AF") // Gray

	// Convenience styles
	Primary   = lipgloss.NewStyle().Foreground(PrimaryColor)
	Secondary = lipgloss.NewStyle().Foreground(SecondaryColor)
	Warning   = lipgloss.NewStyle().Foreground(WarningColor)
	Error     = lipgloss.NewStyle().Foreground(ErrorColor)
	Muted     = lipgloss.NewStyle().Foreground(MutedColor)
	Text      = lipgloss.NewStyle().Foreground(TextColor)

	// Base styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// Tab styles
	TabActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Background(PrimaryColor).
			Padding(0, 2)

	TabInactive = lipgloss.NewStyle().
			Foreground(MutedColor).
			Padding(0, 2)

	// Header
	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(BorderColor).
		MarginBottom(1).
		PaddingBottom(1)

	// Content area
	ContentBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(1, 2)

	// Sidebar
	Sidebar = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(1, 1)

	// Help bar
	HelpBar = lipgloss.NewStyle().
		Foreground(MutedColor).
		MarginTop(1)

	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(SecondaryColor)

	// Selection
	SelectedRow = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Background(SurfaceColor)

	// Timer display
	TimerStudy = lipgloss.NewStyle().
			Bold(true).
			Foreground(SecondaryColor)

	TimerBreak = lipgloss.NewStyle().
			Bold(true).
			Foreground(WarningColor)

	// Chat transcript
	ChatUser = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	ChatBuddy = lipgloss.NewStyle().
			Foreground(SecondaryColor)

	// Status / error line
	StatusBar = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(SurfaceColor).
			Padding(0, 1)

	ErrorBar = lipgloss.NewStyle().
			Bold(true).
			Foreground(ErrorColor)
)

// QuadrantColor returns the accent color for a quadrant label.
func QuadrantColor(quadrant string) lipgloss.Color {
	switch quadrant {
	case "Do First":
		return DoFirstColor
	case "Schedule":
		return ScheduleColor
	case "Delegate":
		return DelegateColor
	default:
		return EliminateColor
	}
}
