package navigation

import (
	"errors"

	"hookdeck/internal/domain"
)

var (
	// ErrNoCatalog is returned when a navigator is built without entries
	ErrNoCatalog = errors.New("navigator needs a non-empty catalog")
	// ErrIndexOutOfRange is returned by SelectAt for indices outside the catalog
	ErrIndexOutOfRange = errors.New("index out of range")
)

// State holds the selection of one navigator
type State struct {
	Index int
	Len   int
}

// Direction represents movement directions of a cyclic navigator
type Direction string

const (
	DirectionNext     Direction = "next"
	DirectionPrevious Direction = "previous"
	DirectionFirst    Direction = "first"
	DirectionLast     Direction = "last"
)

// Selector is the contract shared by every navigator variant
type Selector interface {
	Index() int
	Len() int
	Catalog() *domain.Catalog
	SelectAt(i int) error
	Cyclic() bool
}

// SelectionChangedEvent is published whenever the index moves
type SelectionChangedEvent = domain.SelectionChangedEvent
