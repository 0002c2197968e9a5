package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	DeckTitle      lipgloss.Style
	SlideTitle     lipgloss.Style
	Subtitle       lipgloss.Style
	Position       lipgloss.Style
	StepTitle      lipgloss.Style
	Description    lipgloss.Style
	Body           lipgloss.Style
	Code           lipgloss.Style
	Annotation     lipgloss.Style
	Control        lipgloss.Style
	ControlActive  lipgloss.Style
	ControlLinked  lipgloss.Style
	Dim            lipgloss.Style
	Status         lipgloss.Style
	StatusError    lipgloss.Style
	Prompt         lipgloss.Style
	Visited        lipgloss.Style
	Current        lipgloss.Style
	Help           lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		DeckTitle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		SlideTitle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Subtitle:    lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245")),
		Position:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StepTitle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		Description: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("252")),
		Body:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Code: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Foreground(lipgloss.Color("114")).
			Padding(0, 1),
		Annotation: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("214")).
			Foreground(lipgloss.Color("214")).
			PaddingLeft(1),
		Control:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
		ControlActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("39")).Padding(0, 1),
		ControlLinked: lipgloss.NewStyle().Underline(true),
		Dim:           lipgloss.NewStyle().Faint(true),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("78")),      // green
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),     // red
		Prompt:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")), // yellow
		Visited:       lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Current:       lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Help:          lipgloss.NewStyle().Faint(true),
	}
}
