package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSelectionChanged EventType = "SelectionChanged"
	EventSlideMounted     EventType = "SlideMounted"
	EventCrossReference   EventType = "CrossReference"
	EventDeckLoaded       EventType = "DeckLoaded"
	EventDeckReloaded     EventType = "DeckReloaded"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// Scope names the navigator that produced a selection change
type Scope string

const (
	ScopeSlides Scope = "slides"
	ScopeSteps  Scope = "steps"
)

// SelectionChangedEvent is emitted when a navigator moves to a new index
type SelectionChangedEvent struct {
	Scope Scope
	Old   int
	New   int
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// SlideMountedEvent is emitted when a slide view becomes the visible one
type SlideMountedEvent struct {
	Index   int
	SlideID string
}

func (e SlideMountedEvent) Type() EventType { return EventSlideMounted }

// CrossReferenceEvent is emitted when an entry jumps the outer navigator
type CrossReferenceEvent struct {
	EntryID string
	Target  int
}

func (e CrossReferenceEvent) Type() EventType { return EventCrossReference }

// DeckLoadedEvent is emitted after a deck file has been parsed
type DeckLoadedEvent struct {
	Path   string
	Slides int
}

func (e DeckLoadedEvent) Type() EventType { return EventDeckLoaded }

// DeckReloadedEvent is emitted after the deck file changed on disk
type DeckReloadedEvent struct {
	Path   string
	Slides int
	Err    error
}

func (e DeckReloadedEvent) Type() EventType { return EventDeckReloaded }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
