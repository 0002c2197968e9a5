package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// Fixed rows around the scrollable slide body
const (
	HeaderLines = 4 // deck line, slide title, subtitle, gap
	FooterLines = 4 // controls, progress or prompt, status, key help
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	DeckTitle  string
	SlideTitle string
	Subtitle   string
	SlideIndex int
	SlideCount int

	Frame  Frame
	Linked map[int]bool // step indices that jump to another slide
	Body   string       // viewport output

	ShowProgress bool
	Visited      map[int]bool

	Prompt      string
	TextInput   string
	GotoPreview string

	StatusMessage string
	StatusIsError bool

	HelpModel help.Model
	Keys      KeyMap
}

// Layout describes where each region lands on screen
type Layout struct {
	Header         int // header lines shown
	ViewportHeight int
	ControlRow     int
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	slideRender *SlideRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		slideRender: NewSlideRenderer(styles),
	}
}

// Styles returns the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// LayoutFor computes the regions of a terminal of the given height. Short
// terminals lose header lines first, then the body; the control bar keeps
// its row on screen. An unknown height gets a one-line body.
func LayoutFor(height int) Layout {
	if height <= 0 {
		return Layout{Header: HeaderLines, ViewportHeight: 1, ControlRow: HeaderLines + 1}
	}

	header, vh := HeaderLines, height-HeaderLines-FooterLines
	if vh < 1 {
		vh = min(1, max(0, height-FooterLines))
		header = max(0, height-FooterLines-vh)
	}
	return Layout{Header: header, ViewportHeight: vh, ControlRow: header + vh}
}

// RenderSlide renders the scrollable part of a frame
func (r *Renderer) RenderSlide(f Frame, width int) string {
	return r.slideRender.Render(f, width)
}

// ControlBar lays out the frame's selector controls
func (r *Renderer) ControlBar(f Frame, width int, linked map[int]bool) ControlBar {
	return BuildControlBar(r.styles, f, width, linked)
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	width := state.Width
	if width <= 0 {
		width = 80
	}
	layout := LayoutFor(state.Height)

	lines := make([]string, 0, HeaderLines+layout.ViewportHeight+FooterLines)
	lines = append(lines, r.renderHeader(state, width)[:layout.Header]...)

	body := strings.Split(state.Body, "\n")
	for i := 0; i < layout.ViewportHeight; i++ {
		if i < len(body) {
			lines = append(lines, body[i])
		} else {
			lines = append(lines, "")
		}
	}

	lines = append(lines, r.ControlBar(state.Frame, width, state.Linked).String())
	lines = append(lines, r.renderPromptOrProgress(state))
	lines = append(lines, r.renderStatus(state))
	lines = append(lines, r.renderHelp(state, width))

	// Below FooterLines rows the footer is cut from the bottom
	if state.Height > 0 && len(lines) > state.Height {
		lines = lines[:state.Height]
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) renderHeader(state ViewState, width int) []string {
	logo := r.styles.DeckTitle.Render(state.DeckTitle)
	position := r.styles.Position.Render(fmt.Sprintf("slide %d of %d", state.SlideIndex+1, state.SlideCount))

	titleLine := logo
	paddingWidth := width - lipgloss.Width(logo) - lipgloss.Width(position)
	if paddingWidth > 0 {
		titleLine = logo + strings.Repeat(" ", paddingWidth) + position
	} else {
		titleLine = fmt.Sprintf("%s  %s", logo, position)
	}

	subtitle := ""
	if state.Subtitle != "" {
		subtitle = r.styles.Subtitle.MaxWidth(width).Render(state.Subtitle)
	}

	return []string{
		titleLine,
		r.styles.SlideTitle.MaxWidth(width).Render(state.SlideTitle),
		subtitle,
		"",
	}
}

func (r *Renderer) renderPromptOrProgress(state ViewState) string {
	if state.Prompt != "" {
		line := r.styles.Prompt.Render(state.Prompt) + state.TextInput
		if state.GotoPreview != "" {
			line += "  " + r.styles.Dim.Render("→ "+state.GotoPreview)
		}
		return line
	}
	if !state.ShowProgress {
		return ""
	}
	return r.renderProgress(state)
}

// renderProgress draws one dot per slide
func (r *Renderer) renderProgress(state ViewState) string {
	dots := make([]string, state.SlideCount)
	for i := range dots {
		switch {
		case i == state.SlideIndex:
			dots[i] = r.styles.Current.Render("●")
		case state.Visited[i]:
			dots[i] = r.styles.Visited.Render("•")
		default:
			dots[i] = r.styles.Dim.Render("·")
		}
	}
	return strings.Join(dots, " ")
}

func (r *Renderer) renderStatus(state ViewState) string {
	if state.StatusMessage == "" {
		return ""
	}
	if state.StatusIsError {
		return r.styles.StatusError.Render(state.StatusMessage)
	}
	return r.styles.Status.Render(state.StatusMessage)
}

func (r *Renderer) renderHelp(state ViewState, width int) string {
	h := state.HelpModel
	h.Width = width
	return h.View(state.Keys)
}
