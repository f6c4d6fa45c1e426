package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for focused inputs, active tab
	ColorDanger    = "196" // Red - for error notices
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorCard      = "24"  // Deep blue - card and avatar background
	ColorSuccess   = "42"  // Green - for success notices
)

// Styles contains shared style definitions used across screens and modals.
var Styles = struct {
	// Title styles
	Title        lipgloss.Style // Bold accent color - for screen titles
	Subtitle     lipgloss.Style // Section headers ("Popular Topics:")
	TitleWarning lipgloss.Style // Bold danger color - for error notices
	TitleSuccess lipgloss.Style // Bold success color - for success notices

	// Box styles
	Box       lipgloss.Style // Standard modal box (highlight border)
	BoxDanger lipgloss.Style // Error modal box (danger border)
	Card      lipgloss.Style // Content card
	Avatar    lipgloss.Style // Profile avatar block

	// Text styles
	Selected  lipgloss.Style // Focused input label / selected list item
	Muted     lipgloss.Style // Dimmed text
	Normal    lipgloss.Style // Normal text
	Hint      lipgloss.Style // Help/hint text
	CardTitle lipgloss.Style
	CardText  lipgloss.Style
	Label     lipgloss.Style // Modal body text

	// Controls
	Button         lipgloss.Style
	ButtonFocused  lipgloss.Style
	ButtonDisabled lipgloss.Style
	Link           lipgloss.Style
	LinkFocused    lipgloss.Style
	Tab            lipgloss.Style
	TabActive      lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)).
		MarginBottom(1),
	Subtitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	TitleWarning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	TitleSuccess: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorSuccess)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2).
		Margin(1),
	BoxDanger: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 2).
		Margin(1),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorCard)).
		Padding(0, 1).
		MarginTop(1).
		MarginBottom(1),
	Avatar: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)).
		Background(lipgloss.Color(ColorCard)).
		Padding(1, 3).
		MarginBottom(1),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	CardTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	CardText: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Label: lipgloss.NewStyle(),
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Background(lipgloss.Color(ColorCard)).
		Padding(0, 2),
	ButtonFocused: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color(ColorHighlight)).
		Padding(0, 2),
	ButtonDisabled: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Background(lipgloss.Color("236")).
		Padding(0, 2),
	Link: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Underline(true),
	LinkFocused: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Underline(true),
	Tab: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Padding(0, 2),
	TabActive: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)).
		Background(lipgloss.Color(ColorCard)).
		Padding(0, 2),
}
