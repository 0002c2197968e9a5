package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hookdeck/internal/config"
	"hookdeck/internal/deck"
	"hookdeck/internal/eventbus"
	"hookdeck/internal/ui/handlers"
	"hookdeck/internal/ui/viewmodels"
	"hookdeck/internal/ui/views"
)

type fakePager struct {
	shown []string
	err   error
}

func (p *fakePager) Show(content string) error {
	p.shown = append(p.shown, content)
	return p.err
}

func newTestModel(t *testing.T) *Model {
	t.Helper()
	d, err := deck.Default()
	require.NoError(t, err)
	p, err := deck.NewPresentation(d)
	require.NoError(t, err)

	m := NewModel(p, nil, nil, nil)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	return m
}

func press(m *Model, keys ...string) tea.Cmd {
	var last tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		_, last = m.Update(msg)
	}
	return last
}

// run executes cmd once and feeds the resulting messages back to the model.
// Commands produced by those messages are not run, so timers never block.
func run(m *Model, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			run(m, c)
		}
		return
	}
	m.Update(msg)
}

func (m *Model) gotoID(t *testing.T, id string) {
	t.Helper()
	idx := m.pres.Deck().IndexOf(id)
	require.GreaterOrEqual(t, idx, 0)
	require.NoError(t, m.pres.SelectSlide(idx))
	m.refresh()
}

func TestSlideKeysWrap(t *testing.T) {
	m := newTestModel(t)
	last := m.pres.Deck().Len() - 1

	press(m, "left")
	assert.Equal(t, last, m.SlideIndex())
	press(m, "right")
	assert.Equal(t, 0, m.SlideIndex())
	press(m, "l", "l")
	assert.Equal(t, 2, m.SlideIndex())
	press(m, "G")
	assert.Equal(t, last, m.SlideIndex())
	press(m, "g", "g")
	assert.Equal(t, 0, m.SlideIndex())
}

func TestStepKeysOnCarouselSlide(t *testing.T) {
	m := newTestModel(t)
	n := m.StepCount()
	require.True(t, m.StepsCyclic())

	press(m, "up")
	assert.Equal(t, n-1, m.StepIndex(), "previous wraps to the last step")
	press(m, "down")
	assert.Equal(t, 0, m.StepIndex())
	press(m, "2")
	assert.Equal(t, 1, m.StepIndex())
	assert.Equal(t, 1, m.frame.ActiveControl())
}

func TestStepKeysOnTabSlide(t *testing.T) {
	m := newTestModel(t)
	m.gotoID(t, "use-effect")
	require.False(t, m.StepsCyclic())

	press(m, "down")
	assert.Equal(t, 0, m.StepIndex(), "tab slides have no next step")
	press(m, "3")
	assert.Equal(t, 2, m.StepIndex())
	press(m, "9")
	assert.Equal(t, 2, m.StepIndex(), "missing step is ignored")
}

func TestEnterFollowsCrossReference(t *testing.T) {
	m := newTestModel(t)
	m.gotoID(t, "overview")
	d := m.pres.Deck()

	press(m, "1", "enter")
	assert.Equal(t, d.IndexOf("use-state"), m.SlideIndex())
	assert.Equal(t, 0, m.StepIndex())

	m.gotoID(t, "overview")
	press(m, "8")
	require.False(t, m.HasLink())
	press(m, "enter")
	assert.Equal(t, d.IndexOf("overview"), m.SlideIndex(), "unlinked step stays put")
}

func TestCrossReferenceEventSetsStatus(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(EventMsg{Event: eventbus.CrossReferenceEvent{EntryID: "useRef", Target: 7}})
	assert.NotNil(t, cmd, "status clears itself")
	assert.Contains(t, m.state.StatusMessage, "useRef")
	assert.Contains(t, m.state.StatusMessage, "slide 8")
}

func TestStaleStatusTimerKeepsNewerError(t *testing.T) {
	m := newTestModel(t)
	m.Update(EventMsg{Event: eventbus.CrossReferenceEvent{EntryID: "useRef", Target: 7}})
	stale := m.state.StatusSeq()

	m.gotoID(t, "use-state")
	m.SetClipboard(func(string) error { return errors.New("no clipboard") })
	run(m, press(m, "y"))
	require.True(t, m.state.StatusIsError)

	m.Update(handlers.ClearStatusMsg{Seq: stale})
	assert.Contains(t, m.state.StatusMessage, "no clipboard", "older timer leaves the error alone")

	m.Update(handlers.ClearStatusMsg{Seq: m.state.StatusSeq()})
	assert.Empty(t, m.state.StatusMessage)
}

func TestGotoMode(t *testing.T) {
	m := newTestModel(t)
	d := m.pres.Deck()

	press(m, ":")
	press(m, "r", "u", "l", "e", "s")
	assert.Equal(t, "9 Rules of Hooks", m.state.GotoPreview)
	assert.Contains(t, m.View(), "Go to: ")

	press(m, "enter")
	assert.Equal(t, d.IndexOf("rules"), m.SlideIndex())
	assert.Empty(t, m.state.GotoPreview)

	press(m, ":", "9", "9", "enter")
	assert.Equal(t, d.IndexOf("rules"), m.SlideIndex())
	assert.True(t, m.state.StatusIsError)

	press(m, ":", "1", "esc")
	assert.Equal(t, d.IndexOf("rules"), m.SlideIndex(), "escape cancels")
}

func TestCopyCode(t *testing.T) {
	m := newTestModel(t)
	var copied string
	m.SetClipboard(func(s string) error {
		copied = s
		return nil
	})

	assert.Nil(t, press(m, "y"), "intro has no code")

	m.gotoID(t, "use-state")
	run(m, press(m, "y"))
	assert.Equal(t, m.frame.Code, copied)
	assert.Contains(t, m.state.StatusMessage, "Copied")

	m.SetClipboard(func(string) error { return errors.New("no clipboard") })
	run(m, press(m, "y"))
	assert.True(t, m.state.StatusIsError)
}

func TestHelpAndOutlineUsePager(t *testing.T) {
	m := newTestModel(t)
	pager := &fakePager{}
	m.SetPager(pager)

	run(m, press(m, "?"))
	run(m, press(m, "o"))
	require.Len(t, pager.shown, 2)
	assert.Contains(t, pager.shown[0], "next slide")
	assert.Contains(t, pager.shown[1], "Rules")

	pager.err = errors.New("no tty")
	run(m, press(m, "?"))
	assert.True(t, m.state.StatusIsError)
}

func TestMouseSelectsStep(t *testing.T) {
	m := newTestModel(t)
	m.gotoID(t, "use-effect")

	bar := m.renderer.ControlBar(m.frame, 120, viewmodels.LinkedSteps(m.pres))
	x := -1
	for i := 0; i < 120; i++ {
		if idx, ok := bar.HitTest(i); ok && idx == 2 {
			x = i
			break
		}
	}
	require.GreaterOrEqual(t, x, 0)

	row := views.LayoutFor(30).ControlRow
	m.Update(tea.MouseMsg{X: x, Y: row - 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, 0, m.StepIndex(), "click outside the control row")

	m.Update(tea.MouseMsg{X: x, Y: row, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, 2, m.StepIndex())
}

func TestMouseSelectsStepOnShortTerminal(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 6})
	m.gotoID(t, "use-effect")

	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, 6)
	row := views.LayoutFor(6).ControlRow
	bar := m.renderer.ControlBar(m.frame, 120, viewmodels.LinkedSteps(m.pres))
	assert.Equal(t, bar.String(), lines[row])

	x := -1
	for i := 0; i < 120; i++ {
		if idx, ok := bar.HitTest(i); ok && idx == 1 {
			x = i
			break
		}
	}
	require.GreaterOrEqual(t, x, 0)

	m.Update(tea.MouseMsg{X: x, Y: row, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, 1, m.StepIndex())
}

func TestMouseClickOnActiveLinkedStepFollows(t *testing.T) {
	m := newTestModel(t)
	m.gotoID(t, "overview")
	d := m.pres.Deck()

	bar := m.renderer.ControlBar(m.frame, 120, viewmodels.LinkedSteps(m.pres))
	x := -1
	for i := 0; i < 120; i++ {
		if idx, ok := bar.HitTest(i); ok && idx == 0 {
			x = i
			break
		}
	}
	require.GreaterOrEqual(t, x, 0)

	m.Update(tea.MouseMsg{X: x, Y: views.LayoutFor(30).ControlRow, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, d.IndexOf("use-state"), m.SlideIndex())
}

func TestMouseDisabled(t *testing.T) {
	d, err := deck.Default()
	require.NoError(t, err)
	p, err := deck.NewPresentation(d)
	require.NoError(t, err)
	cfg := config.DefaultConfig()
	cfg.UISettings.Mouse = false

	m := NewModel(p, nil, cfg, nil)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	m.Update(tea.MouseMsg{X: 1, Y: views.LayoutFor(30).ControlRow, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, 0, m.StepIndex())
}

const reloadedDeck = `
title: Reloaded
slides:
  - id: other
    title: Other
    steps: [{title: x}]
  - id: use-state
    title: useState again
    steps: [{title: y}, {title: z}]
`

func TestDeckReload(t *testing.T) {
	m := newTestModel(t)
	m.gotoID(t, "use-state")

	d, err := deck.Parse([]byte(reloadedDeck))
	require.NoError(t, err)
	m.Update(DeckReloadedMsg{Path: "deck.yaml", Deck: d})

	assert.Equal(t, "Reloaded", m.pres.Deck().Title)
	assert.Equal(t, 1, m.SlideIndex(), "same slide id is kept")
	assert.Contains(t, m.state.StatusMessage, "Reloaded 2 slides")
	assert.False(t, m.state.StatusIsError)

	m.Update(DeckReloadedMsg{Path: "deck.yaml", Err: errors.New("yaml: line 3")})
	assert.Equal(t, "Reloaded", m.pres.Deck().Title, "broken file keeps the old deck")
	assert.True(t, m.state.StatusIsError)
}

func TestViewShowsSlide(t *testing.T) {
	m := newTestModel(t)
	out := m.View()
	assert.Contains(t, out, "Understanding Hooks")
	assert.Contains(t, out, "slide 1 of 9")
	assert.Contains(t, out, "What is a hook?")

	assert.Equal(t, "Loading...", NewModel(m.pres, nil, nil, nil).View())
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	cmd := press(m, "q")
	require.NotNil(t, cmd)
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		require.Len(t, batch, 1)
		msg = batch[0]()
	}
	assert.IsType(t, tea.QuitMsg{}, msg)
}

func TestVisitedSlides(t *testing.T) {
	m := newTestModel(t)
	press(m, "right", "right")
	assert.Equal(t, 3, m.state.VisitedCount())
}
