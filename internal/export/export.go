// Package export turns a deck into documents: a markdown outline and a JSON dump.
package export

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/goccy/go-json"

	"hookdeck/internal/deck"
)

// Markdown renders every slide and step as a markdown outline
func Markdown(d *deck.Deck) string {
	var b strings.Builder

	title := d.Title
	if title == "" {
		title = "Deck"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)

	for i, s := range d.Slides {
		fmt.Fprintf(&b, "## %d. %s\n\n", i+1, s.Title)
		if s.Subtitle != "" {
			fmt.Fprintf(&b, "_%s_\n\n", s.Subtitle)
		}

		for j, e := range s.Steps.Entries() {
			fmt.Fprintf(&b, "### %d.%d %s\n\n", i+1, j+1, e.Title)
			if e.Description != "" {
				fmt.Fprintf(&b, "**%s**\n\n", e.Description)
			}
			if e.Body != "" {
				// Hard line breaks keep the body's lines apart
				lines := strings.Split(e.Body, "\n")
				for k, line := range lines {
					lines[k] = escapeBlock(line)
				}
				b.WriteString(strings.Join(lines, "  \n"))
				b.WriteString("\n\n")
			}
			if e.HasCode() {
				f := fence(e.Code)
				fmt.Fprintf(&b, "%s\n%s\n%s\n\n", f, e.Code, f)
			}
			if e.HasAnnotation() {
				for _, line := range strings.Split(e.Annotation, "\n") {
					fmt.Fprintf(&b, "> %s\n", escapeBlock(line))
				}
				b.WriteString("\n")
			}
			if target, ok := s.Links.Lookup(e.ID); ok {
				fmt.Fprintf(&b, "See slide %d: %s\n\n", target+1, d.Slides[target].Title)
			}
		}
	}
	return b.String()
}

// fence returns a backtick fence longer than any backtick run in code
func fence(code string) string {
	longest, run := 0, 0
	for _, r := range code {
		if r == '`' {
			run++
			longest = max(longest, run)
			continue
		}
		run = 0
	}
	return strings.Repeat("`", max(3, longest+1))
}

// escapeBlock keeps a line of prose from starting a markdown block such as a
// heading, list, quote, fence or table
func escapeBlock(line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		return line
	}
	indent := line[:len(line)-len(trimmed)]

	switch trimmed[0] {
	case '#', '>', '-', '+', '*', '=', '`', '~', '|', '_':
		return indent + "\\" + trimmed
	}

	// Ordered list markers: digits followed by '.' or ')'
	digits := 0
	for digits < len(trimmed) && trimmed[digits] >= '0' && trimmed[digits] <= '9' {
		digits++
	}
	if digits > 0 && digits < len(trimmed) && (trimmed[digits] == '.' || trimmed[digits] == ')') {
		return indent + trimmed[:digits] + "\\" + trimmed[digits:]
	}
	return line
}

// Render returns the markdown outline styled for a terminal of the given width
func Render(d *deck.Deck, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := r.Render(Markdown(d))
	if err != nil {
		return "", fmt.Errorf("failed to render outline: %w", err)
	}
	return out, nil
}

type jsonStep struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Body        string `json:"body,omitempty"`
	Code        string `json:"code,omitempty"`
	Annotation  string `json:"annotation,omitempty"`
	LinksTo     string `json:"links_to,omitempty"`
}

type jsonSlide struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Subtitle string     `json:"subtitle,omitempty"`
	Kind     string     `json:"kind"`
	Steps    []jsonStep `json:"steps"`
}

type jsonDeck struct {
	Title  string      `json:"title,omitempty"`
	Source string      `json:"source,omitempty"`
	Slides []jsonSlide `json:"slides"`
}

// JSON dumps the deck with links resolved to slide ids
func JSON(d *deck.Deck) ([]byte, error) {
	out := jsonDeck{
		Title:  d.Title,
		Source: d.Source,
		Slides: make([]jsonSlide, 0, d.Len()),
	}
	for _, s := range d.Slides {
		js := jsonSlide{
			ID:       s.ID,
			Title:    s.Title,
			Subtitle: s.Subtitle,
			Kind:     string(s.Kind),
		}
		for _, e := range s.Steps.Entries() {
			step := jsonStep{
				ID:          e.ID,
				Title:       e.Title,
				Description: e.Description,
				Body:        e.Body,
				Code:        e.Code,
				Annotation:  e.Annotation,
			}
			if target, ok := s.Links.Lookup(e.ID); ok {
				step.LinksTo = d.Slides[target].ID
			}
			js.Steps = append(js.Steps, step)
		}
		out.Slides = append(out.Slides, js)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal deck: %w", err)
	}
	return data, nil
}
