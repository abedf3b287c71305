package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all lipgloss styles for terminal output
type Styles struct {
	enabled bool
	dark    bool

	// Brand and structure
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Header   lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Panel    lipgloss.Style

	// Form
	Label      lipgloss.Style
	LabelFocus lipgloss.Style
	FieldError lipgloss.Style
	Select     lipgloss.Style
	SelectOn   lipgloss.Style
	Help       lipgloss.Style

	// Step indicator
	StepDone    lipgloss.Style
	StepActive  lipgloss.Style
	StepPending lipgloss.Style

	// Autocomplete
	Suggestion      lipgloss.Style
	SuggestionOn    lipgloss.Style
	SuggestionMatch lipgloss.Style

	// Skill chips
	Chip      lipgloss.Style
	ChipOn    lipgloss.Style
	ChipFocus lipgloss.Style

	// Status styles
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style

	// Icons (degraded to ASCII when not interactive)
	IconError   string
	IconSuccess string
	IconStep    string
}

// NewStyles creates a new Styles instance for the given theme.
// When enabled is false, styles return text unchanged (for non-TTY output)
func NewStyles(enabled bool, dark bool) *Styles {
	s := &Styles{enabled: enabled, dark: dark}

	if !enabled {
		// ASCII fallback icons for plain text output
		s.IconError = "ERROR:"
		s.IconSuccess = "OK:"
		s.IconStep = "*"
		return s
	}

	text := lipgloss.Color("15")  // White
	muted := lipgloss.Color("8")  // Gray
	brand := lipgloss.Color("#3182CE")
	if !dark {
		text = lipgloss.Color("0")    // Black
		muted = lipgloss.Color("245") // Mid gray
	}

	s.Title = lipgloss.NewStyle().Bold(true).Foreground(brand)
	s.Subtitle = lipgloss.NewStyle().Foreground(muted)
	s.Header = lipgloss.NewStyle().Bold(true).Foreground(text)
	s.Muted = lipgloss.NewStyle().Foreground(muted)
	s.Accent = lipgloss.NewStyle().Foreground(brand)
	s.Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(muted).
		Padding(1, 2)

	s.Label = lipgloss.NewStyle().Foreground(text)
	s.LabelFocus = lipgloss.NewStyle().Bold(true).Foreground(brand)
	s.FieldError = lipgloss.NewStyle().Foreground(lipgloss.Color("#E53E3E"))
	s.Select = lipgloss.NewStyle().Foreground(text)
	s.SelectOn = lipgloss.NewStyle().Bold(true).Foreground(brand)
	s.Help = lipgloss.NewStyle().Foreground(muted)

	s.StepDone = lipgloss.NewStyle().Foreground(lipgloss.Color("#38A169"))
	s.StepActive = lipgloss.NewStyle().Bold(true).Foreground(brand)
	s.StepPending = lipgloss.NewStyle().Foreground(muted)

	s.Suggestion = lipgloss.NewStyle().Foreground(text)
	s.SuggestionOn = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(brand)
	s.SuggestionMatch = lipgloss.NewStyle().Bold(true).Foreground(brand)

	s.Chip = lipgloss.NewStyle().Foreground(muted)
	s.ChipOn = lipgloss.NewStyle().Foreground(lipgloss.Color("#38A169"))
	s.ChipFocus = lipgloss.NewStyle().Bold(true).Foreground(brand)

	s.Error = lipgloss.NewStyle().Foreground(lipgloss.Color("#E53E3E"))
	s.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("#D69E2E"))
	s.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("#38A169"))

	s.IconError = "✗"   // ✗
	s.IconSuccess = "✓" // ✓
	s.IconStep = "●"    // ●

	return s
}

// Enabled returns whether styling is enabled
func (s *Styles) Enabled() bool {
	return s.enabled
}

// Dark returns whether the dark palette is active
func (s *Styles) Dark() bool {
	return s.dark
}
