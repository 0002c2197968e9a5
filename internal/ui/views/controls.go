package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// maxLabelWidth caps a selector label so a row of them fits a terminal
const maxLabelWidth = 20

type span struct {
	start, end int // [start, end) in cells
	index      int
}

// ControlBar is a rendered row of selector controls plus the cell ranges
// each control occupies, for mouse hit testing.
type ControlBar struct {
	line  string
	spans []span
}

// String returns the rendered row
func (b ControlBar) String() string {
	return b.line
}

// HitTest maps a column, relative to the start of the row, to a control index
func (b ControlBar) HitTest(x int) (int, bool) {
	for _, s := range b.spans {
		if x >= s.start && x < s.end {
			return s.index, true
		}
	}
	return 0, false
}

// Len returns the number of controls on the bar
func (b ControlBar) Len() int {
	return len(b.spans)
}

// BuildControlBar lays the frame's controls out on one row no wider than
// width. Labels fall back to bare numbers when titles do not fit.
func BuildControlBar(styles *Styles, f Frame, width int, linked map[int]bool) ControlBar {
	labels := make([]string, len(f.Controls))
	for i, c := range f.Controls {
		labels[i] = fmt.Sprintf("%d %s", c.Index+1, runewidth.Truncate(c.Label, maxLabelWidth, "…"))
	}
	bar := layoutControls(styles, f.Controls, labels, linked)
	if width > 0 && lipgloss.Width(bar.line) > width {
		for i, c := range f.Controls {
			labels[i] = fmt.Sprintf("%d", c.Index+1)
		}
		bar = layoutControls(styles, f.Controls, labels, linked)
	}
	return bar
}

func layoutControls(styles *Styles, controls []Control, labels []string, linked map[int]bool) ControlBar {
	var b strings.Builder
	spans := make([]span, 0, len(controls))
	x := 0
	for i, c := range controls {
		if i > 0 {
			b.WriteString(" ")
			x++
		}
		style := styles.Control
		if c.Active {
			style = styles.ControlActive
		}
		if linked[c.Index] {
			style = style.Inherit(styles.ControlLinked)
		}
		rendered := style.Render(labels[i])
		w := lipgloss.Width(rendered)
		spans = append(spans, span{start: x, end: x + w, index: c.Index})
		b.WriteString(rendered)
		x += w
	}
	return ControlBar{line: b.String(), spans: spans}
}
