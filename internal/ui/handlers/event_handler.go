package handlers

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"hookdeck/internal/eventbus"
	"hookdeck/internal/ui/state"
)

// StatusTimeout is how long informational messages stay in the status bar
const StatusTimeout = 3 * time.Second

// ClearStatusMsg clears the status bar if it still shows message Seq
type ClearStatusMsg struct {
	Seq int
}

// EventHandler handles domain events and updates state
type EventHandler struct {
	state *state.AppState
	log   *zap.Logger
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState, logger *zap.Logger) *EventHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventHandler{
		state: appState,
		log:   logger,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.SlideMountedEvent:
		h.state.MarkVisited(e.Index)

	case eventbus.CrossReferenceEvent:
		h.state.SetStatus(fmt.Sprintf("%s → slide %d", e.EntryID, e.Target+1))
		return ClearStatusAfter(h.state)

	case eventbus.DeckReloadedEvent:
		if e.Err != nil {
			h.log.Warn("deck reload failed", zap.String("path", e.Path), zap.Error(e.Err))
			h.state.SetError(fmt.Sprintf("Reload failed: %v", e.Err))
			return nil
		}
		h.state.SetStatus(fmt.Sprintf("Reloaded %d slides", e.Slides))
		return ClearStatusAfter(h.state)

	case eventbus.ErrorEvent:
		h.state.SetError(fmt.Sprintf("Error: %s", e.Message))

	default:
		h.log.Debug("unhandled event", zap.String("type", string(event.Type())))
	}
	return nil
}

// ClearStatusAfter clears the current status message after StatusTimeout,
// unless another message replaced it in the meantime
func ClearStatusAfter(s *state.AppState) tea.Cmd {
	seq := s.StatusSeq()
	return tea.Tick(StatusTimeout, func(time.Time) tea.Msg { return ClearStatusMsg{Seq: seq} })
}
