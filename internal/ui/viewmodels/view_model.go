package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"hookdeck/internal/config"
	"hookdeck/internal/deck"
	"hookdeck/internal/ui/state"
	"hookdeck/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state     *state.AppState
	config    *config.Config
	width     int
	height    int
	help      help.Model
	keys      views.KeyMap
	prompt    string
	textInput *textinput.Model
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, cfg *config.Config) *ViewModel {
	return &ViewModel{
		state:  appState,
		config: cfg,
		help:   help.New(),
		keys:   views.DefaultKeyMap(),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetHelp sets the help model
func (vm *ViewModel) SetHelp(helpModel help.Model) {
	vm.help = helpModel
}

// Keys returns the displayed key bindings
func (vm *ViewModel) Keys() views.KeyMap {
	return vm.keys
}

// SetInput sets the active text prompt; a nil input clears it
func (vm *ViewModel) SetInput(prompt string, ti *textinput.Model) {
	vm.prompt = prompt
	vm.textInput = ti
}

// LinkedSteps returns the steps of the mounted slide that jump elsewhere
func LinkedSteps(p *deck.Presentation) map[int]bool {
	slide := p.Slide()
	if slide.Links.Len() == 0 {
		return nil
	}
	linked := make(map[int]bool)
	for i, e := range slide.Steps.Entries() {
		if _, ok := slide.Links.Lookup(e.ID); ok {
			linked[i] = true
		}
	}
	return linked
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState(p *deck.Presentation, frame views.Frame, body string) views.ViewState {
	slide := p.Slide()
	vs := views.ViewState{
		Width:         vm.width,
		Height:        vm.height,
		DeckTitle:     p.Deck().Title,
		SlideTitle:    slide.Title,
		Subtitle:      slide.Subtitle,
		SlideIndex:    p.SlideIndex(),
		SlideCount:    p.Deck().Len(),
		Frame:         frame,
		Linked:        LinkedSteps(p),
		Body:          body,
		ShowProgress:  vm.config.UISettings.ShowProgress,
		Visited:       vm.state.Visited,
		StatusMessage: vm.state.StatusMessage,
		StatusIsError: vm.state.StatusIsError,
		HelpModel:     vm.help,
		Keys:          vm.keys,
	}
	if vm.textInput != nil {
		vs.Prompt = vm.prompt
		vs.TextInput = vm.textInput.View()
		vs.GotoPreview = vm.state.GotoPreview
	}
	return vs
}
