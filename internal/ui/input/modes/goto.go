package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"hookdeck/internal/ui/input/types"
)

// GotoMode reads a slide number, id or title to jump to
type GotoMode struct {
	TextInputMode
}

func NewGotoMode(ti *textinput.Model) *GotoMode {
	return &GotoMode{
		TextInputMode: NewTextInputMode(types.ModeGoto, "goto", "Go to: ", ti),
	}
}
