package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SlideRenderer renders the selected entry of a slide
type SlideRenderer struct {
	styles *Styles
}

// NewSlideRenderer creates a new slide renderer
func NewSlideRenderer(styles *Styles) *SlideRenderer {
	return &SlideRenderer{styles: styles}
}

// Render produces the scrollable slide content for a frame. Body text keeps
// its line breaks; code is printed verbatim.
func (sr *SlideRenderer) Render(f Frame, width int) string {
	var parts []string

	parts = append(parts, sr.styles.StepTitle.Render(f.Title))
	if f.Description != "" {
		parts = append(parts, sr.styles.Description.Render(f.Description))
	}

	if f.Body != "" {
		body := sr.styles.Body
		if width > 0 {
			body = body.Width(width)
		}
		parts = append(parts, "", body.Render(f.Body))
	}

	if f.HasCode {
		// No Width: long code lines are not re-wrapped
		parts = append(parts, "", sr.styles.Code.Render(f.Code))
	}

	if f.HasAnnotation {
		parts = append(parts, "", sr.styles.Annotation.Render(f.Annotation))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// PlainText returns the frame as unstyled text, in display order
func PlainText(f Frame) string {
	var b strings.Builder
	b.WriteString(f.Title)
	b.WriteString("\n")
	if f.Description != "" {
		b.WriteString(f.Description)
		b.WriteString("\n")
	}
	if f.Body != "" {
		b.WriteString("\n")
		b.WriteString(f.Body)
		b.WriteString("\n")
	}
	if f.HasCode {
		b.WriteString("\n")
		b.WriteString(f.Code)
		b.WriteString("\n")
	}
	if f.HasAnnotation {
		b.WriteString("\n")
		b.WriteString(f.Annotation)
		b.WriteString("\n")
	}
	return b.String()
}
