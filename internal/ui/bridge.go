package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"hookdeck/internal/eventbus"
)

// Bridge forwards bus events the UI reacts to into the program. The returned
// func unsubscribes.
func Bridge(bus eventbus.EventBus, send func(tea.Msg)) func() {
	forward := func(e eventbus.DomainEvent) {
		send(EventMsg{Event: e})
	}
	unsubs := []func(){
		bus.Subscribe(eventbus.EventCrossReference, forward),
		bus.Subscribe(eventbus.EventError, forward),
	}
	return func() {
		for _, unsub := range unsubs {
			unsub()
		}
	}
}
