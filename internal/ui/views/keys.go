package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap lists the bindings shown in the footer and the help pager.
// Input handling lives in the input package; these are descriptions only.
type KeyMap struct {
	NextSlide key.Binding
	PrevSlide key.Binding
	NextStep  key.Binding
	PrevStep  key.Binding
	Select    key.Binding
	Follow    key.Binding
	First     key.Binding
	Last      key.Binding
	Goto      key.Binding
	Scroll    key.Binding
	Copy      key.Binding
	Outline   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextSlide: key.NewBinding(key.WithKeys("right", "l", "n", " "), key.WithHelp("→/l", "next slide")),
		PrevSlide: key.NewBinding(key.WithKeys("left", "h", "p"), key.WithHelp("←/h", "prev slide")),
		NextStep:  key.NewBinding(key.WithKeys("down", "j", "tab"), key.WithHelp("↓/j", "next step")),
		PrevStep:  key.NewBinding(key.WithKeys("up", "k", "shift+tab"), key.WithHelp("↑/k", "prev step")),
		Select:    key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "select step")),
		Follow:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open linked slide")),
		First:     key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("gg", "first slide")),
		Last:      key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last slide")),
		Goto:      key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "go to slide")),
		Scroll:    key.NewBinding(key.WithKeys("pgup", "pgdown", "ctrl+u", "ctrl+d"), key.WithHelp("pgup/pgdn", "scroll")),
		Copy:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy code")),
		Outline:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "outline")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextSlide, k.PrevSlide, k.NextStep, k.Select, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextSlide, k.PrevSlide, k.First, k.Last, k.Goto},
		{k.NextStep, k.PrevStep, k.Select, k.Follow},
		{k.Scroll, k.Copy, k.Outline, k.Help, k.Quit},
	}
}

// HelpText renders the full key list as plain text for the help pager
func HelpText(title string, k KeyMap) string {
	sections := []string{"Slides", "Steps", "Other"}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString(" - keys\n")
	for i, column := range k.FullHelp() {
		b.WriteString("\n")
		b.WriteString(sections[i])
		b.WriteString("\n")
		for _, binding := range column {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %-12s %s\n", h.Key, h.Desc))
		}
	}
	b.WriteString("\nSteps on tab slides are chosen with number keys or the mouse.\n")
	b.WriteString("Enter only works on steps that link to another slide.\n")
	return b.String()
}
