// Package theme defines the lipgloss styles the screens render with. The
// theme is an explicit struct handed to each screen, never ambient state, so
// tests can render with a bare theme and alternate palettes stay possible.
package theme

import "github.com/charmbracelet/lipgloss"

// Palette constants, shared with the brand colors of the mobile app.
const (
	ColorPrimary   = lipgloss.Color("#FF6B00")
	ColorAccent    = lipgloss.Color("#FF4500")
	ColorGold      = lipgloss.Color("#FFD700")
	ColorSuccess   = lipgloss.Color("#00C853")
	ColorError     = lipgloss.Color("#FF3D00")
	ColorText      = lipgloss.Color("#FFFFFF")
	ColorSecondary = lipgloss.Color("#AAAAAA")
	ColorFaint     = lipgloss.Color("#757575")
	ColorBorder    = lipgloss.Color("#444444")
)

// Theme is the style set for every screen.
type Theme struct {
	Logo     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Help     lipgloss.Style
	Progress lipgloss.Style

	Card         lipgloss.Style
	CardSelected lipgloss.Style

	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style

	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	Panel lipgloss.Style
}

// Default is the standard Yolked look: orange on dark.
func Default() Theme {
	return Theme{
		Logo: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(ColorSecondary).
			MarginBottom(1),
		Label: lipgloss.NewStyle().
			Foreground(ColorText),
		Error: lipgloss.NewStyle().
			Foreground(ColorError),
		Success: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess),
		Help: lipgloss.NewStyle().
			Foreground(ColorFaint).
			MarginTop(1),
		Progress: lipgloss.NewStyle().
			Foreground(ColorSecondary),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1),
		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Bold(true).
			Padding(0, 1),
		Button: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Background(ColorPrimary).
			Padding(0, 3),
		ButtonDisabled: lipgloss.NewStyle().
			Foreground(ColorFaint).
			Background(ColorBorder).
			Padding(0, 3),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Underline(true).
			Padding(0, 1),
		TabInactive: lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Padding(0, 1),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2),
	}
}
