package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"hookdeck/internal/ui/input/types"
)

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyRight:
		return slide("next"), true

	case tea.KeyLeft:
		return slide("previous"), true

	case tea.KeyDown, tea.KeyTab:
		return step(ctx, "next")

	case tea.KeyUp, tea.KeyShiftTab:
		return step(ctx, "previous")

	case tea.KeyPgDown:
		return []types.Action{types.ScrollAction{Lines: 10}}, true

	case tea.KeyPgUp:
		return []types.Action{types.ScrollAction{Lines: -10}}, true

	case tea.KeyHome:
		return slide("first"), true

	case tea.KeyEnd:
		return slide("last"), true

	case tea.KeyEnter:
		// Only steps with a cross reference navigate
		if ctx.HasLink() {
			return []types.Action{types.FollowLinkAction{}}, true
		}
		return nil, true
	}

	key := msg.String()

	// Digits select steps by their selector button
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		m.lastKeyWasG = false
		idx := int(key[0] - '1')
		if idx < ctx.StepCount() {
			return []types.Action{types.SelectStepAction{Index: idx}}, true
		}
		return nil, true
	}

	switch key {
	case "l", "n", " ":
		return slide("next"), true

	case "h", "p":
		return slide("previous"), true

	case "j":
		return step(ctx, "next")

	case "k":
		return step(ctx, "previous")

	case "ctrl+d":
		return []types.Action{types.ScrollAction{Lines: 5}}, true

	case "ctrl+u":
		return []types.Action{types.ScrollAction{Lines: -5}}, true

	case ":":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeGoto}}, true

	case "y":
		if ctx.HasCode() {
			return []types.Action{types.CopyCodeAction{}}, true
		}
		return nil, true

	case "o":
		return []types.Action{types.ShowOutlineAction{}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			// gg - first slide
			m.lastKeyWasG = false
			return slide("first"), true
		}
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true

	case "G":
		m.lastKeyWasG = false
		return slide("last"), true

	default:
		// Any other key cancels the 'g' prefix
		m.lastKeyWasG = false
	}

	return nil, false
}

func slide(direction string) []types.Action {
	return []types.Action{types.NavigateSlideAction{Direction: direction}}
}

// step maps next/previous keys; tab-style slides have no step carousel
func step(ctx types.Context, direction string) ([]types.Action, bool) {
	if !ctx.StepsCyclic() {
		return nil, true
	}
	return []types.Action{types.NavigateStepAction{Direction: direction}}, true
}
