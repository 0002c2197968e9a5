package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"hookdeck/internal/config"
	"hookdeck/internal/deck"
	"hookdeck/internal/eventbus"
	"hookdeck/internal/export"
	"hookdeck/internal/ui/handlers"
	"hookdeck/internal/ui/input"
	inputtypes "hookdeck/internal/ui/input/types"
	"hookdeck/internal/ui/logic"
	"hookdeck/internal/ui/state"
	"hookdeck/internal/ui/viewmodels"
	"hookdeck/internal/ui/views"
)

// wheelLines is how far one mouse wheel notch scrolls the slide body
const wheelLines = 3

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	log    *zap.Logger
	state  *state.AppState
	pres   *deck.Presentation

	width    int
	height   int
	help     help.Model
	viewport viewport.Model
	frame    views.Frame
	shown    [2]int // slide and step currently in the viewport

	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	eventHandler *handlers.EventHandler
	inputHandler *input.Handler

	pager     Pager
	pagerOps  *PagerOps
	clipboard func(string) error

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model around a presentation
func NewModel(pres *deck.Presentation, bus eventbus.EventBus, cfg *config.Config, logger *zap.Logger) *Model {
	if bus == nil {
		bus = eventbus.Nop()
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	appState := state.NewAppState()
	pagerOps := NewPagerOps(nil)

	m := &Model{
		bus:          bus,
		config:       cfg,
		log:          logger,
		state:        appState,
		pres:         pres,
		help:         help.New(),
		viewport:     viewport.New(80, views.LayoutFor(24).ViewportHeight),
		renderer:     views.NewRenderer(),
		viewModel:    viewmodels.NewViewModel(appState, cfg),
		eventHandler: handlers.NewEventHandler(appState, logger),
		inputHandler: input.New(),
		pager:        pagerOps,
		pagerOps:     pagerOps,
		clipboard:    clipboard.WriteAll,
		shown:        [2]int{-1, -1},
	}
	m.viewModel.SetHelp(m.help)
	m.refresh()
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pagerOps.SetProgram(p)
}

// SetPager replaces the ov pager
func (m *Model) SetPager(p Pager) {
	m.pager = p
}

// SetClipboard replaces the system clipboard writer
func (m *Model) SetClipboard(write func(string) error) {
	m.clipboard = write
}

// Presentation returns the presentation on screen
func (m *Model) Presentation() *deck.Presentation {
	return m.pres
}

// State returns the UI state
func (m *Model) State() *state.AppState {
	return m.state
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Context for the input handler

func (m *Model) SlideIndex() int { return m.pres.SlideIndex() }
func (m *Model) SlideCount() int { return m.pres.Deck().Len() }
func (m *Model) StepIndex() int { return m.pres.Steps().Index() }
func (m *Model) StepCount() int { return m.pres.Steps().Len() }
func (m *Model) StepsCyclic() bool { return m.pres.Steps().Cyclic() }
func (m *Model) HasLink() bool { return m.pres.HasLink() }
func (m *Model) HasCode() bool { return m.frame.HasCode }

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.viewModel.SetHelp(m.help)
		m.viewport.Width = msg.Width
		m.viewport.Height = views.LayoutFor(msg.Height).ViewportHeight
		m.rerender()
		return m, nil

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, m)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		m.refresh()
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	m.viewModel.SetDimensions(m.width, m.height)
	m.viewModel.SetInput(m.inputHandler.Prompt(), m.inputHandler.TextInput())

	vs := m.viewModel.BuildViewState(m.pres, m.frame, m.viewport.View())
	return m.renderer.Render(vs)
}

// refresh projects the selected step and re-renders the slide body when the
// selection changed
func (m *Model) refresh() {
	steps := m.pres.Steps()
	frame, err := views.Project(steps.Catalog(), steps.Index())
	if err != nil {
		m.log.Error("project frame", zap.Error(err))
		return
	}
	m.frame = frame
	m.state.MarkVisited(m.pres.SlideIndex())

	current := [2]int{m.pres.SlideIndex(), steps.Index()}
	if current != m.shown {
		m.viewport.SetContent(m.renderer.RenderSlide(frame, m.contentWidth()))
		m.viewport.GotoTop()
		m.shown = current
	}
}

// rerender renders the current frame again, keeping the scroll position
func (m *Model) rerender() {
	m.viewport.SetContent(m.renderer.RenderSlide(m.frame, m.contentWidth()))
}

func (m *Model) contentWidth() int {
	if m.width <= 0 {
		return 80
	}
	return m.width
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	m.log.Debug("processAction", zap.String("action", action.Type()))
	switch a := action.(type) {
	case inputtypes.NavigateSlideAction:
		switch a.Direction {
		case "next":
			m.pres.NextSlide()
		case "previous":
			m.pres.PreviousSlide()
		case "first":
			m.pres.FirstSlide()
		case "last":
			m.pres.LastSlide()
		}

	case inputtypes.NavigateStepAction:
		var err error
		switch a.Direction {
		case "next":
			err = m.pres.NextStep()
		case "previous":
			err = m.pres.PreviousStep()
		}
		if err != nil && !errors.Is(err, deck.ErrNotCyclic) {
			m.state.SetError(err.Error())
		}

	case inputtypes.SelectStepAction:
		if err := m.pres.SelectStep(a.Index); err != nil {
			m.state.SetError(fmt.Sprintf("No step %d", a.Index+1))
		}

	case inputtypes.FollowLinkAction:
		m.pres.FollowSelected()

	case inputtypes.ScrollAction:
		if a.Lines > 0 {
			m.viewport.ScrollDown(a.Lines)
		} else {
			m.viewport.ScrollUp(-a.Lines)
		}

	case inputtypes.ChangeModeAction:
		if a.Mode == inputtypes.ModeNormal {
			m.state.GotoPreview = ""
		}

	case inputtypes.UpdateTextAction:
		m.state.GotoPreview = logic.Preview(m.pres.Deck(), a.Text)

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeGoto {
			m.gotoSlide(a.Text)
		}

	case inputtypes.CancelTextAction:
		m.state.GotoPreview = ""

	case inputtypes.CopyCodeAction:
		return m.copyCode(m.frame.Code)

	case inputtypes.ShowOutlineAction:
		return m.showInPager("outline", m.outline())

	case inputtypes.ToggleHelpAction:
		return m.showInPager("help", views.HelpText(m.pres.Deck().Title, m.viewModel.Keys()))

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

func (m *Model) gotoSlide(query string) {
	if strings.TrimSpace(query) == "" {
		return
	}
	idx, err := logic.ResolveSlide(m.pres.Deck(), query)
	if err != nil {
		m.state.SetError(fmt.Sprintf("Go to: %v", err))
		return
	}
	if err := m.pres.SelectSlide(idx); err != nil {
		m.state.SetError(err.Error())
	}
}

// handleMouse selects steps by clicking their control and scrolls with the wheel
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !m.config.UISettings.Mouse {
		return nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.viewport.ScrollUp(wheelLines)
		return nil
	case tea.MouseButtonWheelDown:
		m.viewport.ScrollDown(wheelLines)
		return nil
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if msg.Y != views.LayoutFor(m.height).ControlRow {
		return nil
	}

	bar := m.renderer.ControlBar(m.frame, m.contentWidth(), viewmodels.LinkedSteps(m.pres))
	idx, ok := bar.HitTest(msg.X)
	if !ok {
		return nil
	}

	// A second click on the active control of a linked step follows it
	if idx == m.pres.Steps().Index() && m.pres.HasLink() {
		m.pres.FollowSelected()
	} else if err := m.pres.SelectStep(idx); err != nil {
		m.log.Warn("select step from mouse", zap.Int("index", idx), zap.Error(err))
	}
	m.refresh()
	return nil
}

func (m *Model) outline() string {
	out, err := export.Render(m.pres.Deck(), m.contentWidth())
	if err != nil {
		m.log.Warn("render outline", zap.Error(err))
		return export.Markdown(m.pres.Deck())
	}
	return out
}

// showInPager returns a command that shows content using the pager
func (m *Model) showInPager(what, content string) tea.Cmd {
	return func() tea.Msg {
		if m.program != nil {
			m.program.Send(pauseRenderingMsg{})
		}

		err := m.pager.Show(content)

		if m.program != nil {
			m.program.Send(resumeRenderingMsg{})
		}
		return pagerMsg{what: what, err: err}
	}
}

func (m *Model) copyCode(code string) tea.Cmd {
	write := m.clipboard
	return func() tea.Msg {
		return copiedMsg{lines: strings.Count(code, "\n") + 1, err: write(code)}
	}
}

// replaceDeck swaps in a reloaded deck, staying on the same slide when it
// still exists
func (m *Model) replaceDeck(d *deck.Deck) error {
	start := 0
	current := m.pres.Slide().ID
	if idx := d.IndexOf(current); idx >= 0 {
		start = idx
	} else if m.pres.SlideIndex() < d.Len() {
		start = m.pres.SlideIndex()
	}

	pres, err := deck.NewPresentation(d,
		deck.WithBus(m.bus),
		deck.WithRememberSteps(m.config.RememberSteps),
		deck.WithStartSlide(start),
	)
	if err != nil {
		return err
	}

	m.pres = pres
	m.state.ResetVisited()
	m.shown = [2]int{-1, -1}
	m.refresh()
	return nil
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		cmd := m.eventHandler.HandleEvent(msg.Event)
		return m, cmd

	case DeckReloadedMsg:
		event := eventbus.DeckReloadedEvent{Path: msg.Path, Err: msg.Err}
		if msg.Err == nil {
			if err := m.replaceDeck(msg.Deck); err != nil {
				event.Err = err
			} else {
				event.Slides = msg.Deck.Len()
			}
		}
		m.bus.Publish(event)
		return m, m.eventHandler.HandleEvent(event)

	case pagerMsg:
		if msg.err != nil {
			m.log.Warn("pager failed", zap.String("what", msg.what), zap.Error(msg.err))
			m.state.SetError(fmt.Sprintf("Could not open %s: %v", msg.what, msg.err))
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.log.Warn("clipboard write failed", zap.Error(msg.err))
			m.state.SetError(fmt.Sprintf("Copy failed: %v", msg.err))
			return m, nil
		}
		m.state.SetStatus(fmt.Sprintf("Copied %d lines", msg.lines))
		return m, handlers.ClearStatusAfter(m.state)

	case pauseRenderingMsg:
		m.state.InPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.state.InPagerMode = false
		return m, nil

	case handlers.ClearStatusMsg:
		m.state.ClearStatusIfCurrent(msg.Seq)
		return m, nil

	default:
		return m, nil
	}
}
