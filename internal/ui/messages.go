package ui

import (
	"hookdeck/internal/deck"
	"hookdeck/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// DeckReloadedMsg carries a deck re-read from disk. Err is set when the file
// could not be parsed; the current deck stays on screen in that case.
type DeckReloadedMsg struct {
	Path string
	Deck *deck.Deck
	Err  error
}

// pagerMsg contains the result of a pager command
type pagerMsg struct {
	what string
	err  error
}

// copiedMsg contains the result of a clipboard write
type copiedMsg struct {
	lines int
	err   error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
