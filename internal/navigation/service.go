package navigation

import (
	"fmt"

	"hookdeck/internal/domain"
	"hookdeck/internal/eventbus"
)

// base owns the selection state shared by both variants
type base struct {
	catalog *domain.Catalog
	state   State
	scope   domain.Scope
	bus     eventbus.EventBus
}

func newBase(cat *domain.Catalog, scope domain.Scope, bus eventbus.EventBus) (base, error) {
	if cat == nil || cat.Len() == 0 {
		return base{}, ErrNoCatalog
	}
	if bus == nil {
		bus = eventbus.Nop()
	}
	return base{
		catalog: cat,
		state:   State{Index: 0, Len: cat.Len()},
		scope:   scope,
		bus:     bus,
	}, nil
}

// Index returns the current selection
func (b *base) Index() int {
	return b.state.Index
}

// Len returns the size of the underlying catalog
func (b *base) Len() int {
	return b.state.Len
}

// Catalog returns the navigated catalog
func (b *base) Catalog() *domain.Catalog {
	return b.catalog
}

// Current returns the selected entry
func (b *base) Current() domain.Entry {
	e, _ := b.catalog.At(b.state.Index)
	return e
}

// SelectAt jumps straight to index i. Indices outside the catalog are
// rejected and leave the selection untouched.
func (b *base) SelectAt(i int) error {
	if i < 0 || i >= b.state.Len {
		return fmt.Errorf("select %d of %d: %w", i, b.state.Len, ErrIndexOutOfRange)
	}
	b.move(i)
	return nil
}

func (b *base) move(to int) {
	old := b.state.Index
	b.state.Index = to
	if old != to {
		b.bus.Publish(SelectionChangedEvent{
			Scope: b.scope,
			Old:   old,
			New:   to,
		})
	}
}

// Cycle is a carousel navigator that wraps around in both directions
type Cycle struct {
	base
}

// NewCycle creates a cyclic navigator positioned on the first entry
func NewCycle(cat *domain.Catalog, scope domain.Scope, bus eventbus.EventBus) (*Cycle, error) {
	b, err := newBase(cat, scope, bus)
	if err != nil {
		return nil, err
	}
	return &Cycle{base: b}, nil
}

// Cyclic reports true: Cycle supports Next and Previous
func (c *Cycle) Cyclic() bool { return true }

// Next moves forward, wrapping to 0 after the last entry
func (c *Cycle) Next() {
	c.move((c.state.Index + 1) % c.state.Len)
}

// Previous moves backward, wrapping to the last entry before 0
func (c *Cycle) Previous() {
	c.move((c.state.Index - 1 + c.state.Len) % c.state.Len)
}

// Navigate handles navigation in a direction
func (c *Cycle) Navigate(direction Direction) {
	switch direction {
	case DirectionNext:
		c.Next()
	case DirectionPrevious:
		c.Previous()
	case DirectionFirst:
		c.move(0)
	case DirectionLast:
		c.move(c.state.Len - 1)
	}
}

// Direct is a navigator for tab-style slides: selection by button only
type Direct struct {
	base
}

// NewDirect creates a direct-selection navigator positioned on the first entry
func NewDirect(cat *domain.Catalog, scope domain.Scope, bus eventbus.EventBus) (*Direct, error) {
	b, err := newBase(cat, scope, bus)
	if err != nil {
		return nil, err
	}
	return &Direct{base: b}, nil
}

// Cyclic reports false: Direct has no next/previous
func (d *Direct) Cyclic() bool { return false }

// ForKind builds the navigator variant a slide kind asks for
func ForKind(kind domain.SlideKind, cat *domain.Catalog, bus eventbus.EventBus) (Selector, error) {
	if kind.Cyclic() {
		c, err := NewCycle(cat, domain.ScopeSteps, bus)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	d, err := NewDirect(cat, domain.ScopeSteps, bus)
	if err != nil {
		return nil, err
	}
	return d, nil
}
