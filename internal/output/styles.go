package output

import "github.com/charmbracelet/lipgloss"

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorGreen is used for the success headline.
	ColorGreen = lipgloss.Color("82")

	// ColorBlue is used for commands the user should run next.
	ColorBlue = lipgloss.Color("33")

	// ColorCyan is used for identifiable nouns: paths, URLs, template names.
	ColorCyan = lipgloss.Color("14")

	// ColorYellow is used for the closing sign-off line.
	ColorYellow = lipgloss.Color("220")

	// ColorDimGray is used for structural chrome such as tree connectors.
	ColorDimGray = lipgloss.Color("240")
)

// Styles groups the semantic styles used across the CLI output.
type Styles struct {
	// Success styles the "Success!" headline.
	Success lipgloss.Style

	// Command styles literal shell commands.
	Command lipgloss.Style

	// Noun styles paths, URLs, and template names.
	Noun lipgloss.Style

	// SignOff styles the closing banner line.
	SignOff lipgloss.Style

	// Bold styles emphasized plain text.
	Bold lipgloss.Style

	// Muted styles secondary annotations.
	Muted lipgloss.Style
}

// GetStyles returns the semantic style set.
func GetStyles() Styles {
	return Styles{
		Success: lipgloss.NewStyle().Bold(true).Foreground(ColorGreen),
		Command: lipgloss.NewStyle().Bold(true).Foreground(ColorBlue),
		Noun:    lipgloss.NewStyle().Foreground(ColorCyan),
		SignOff: lipgloss.NewStyle().Bold(true).Foreground(ColorYellow),
		Bold:    lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Faint(true),
	}
}
