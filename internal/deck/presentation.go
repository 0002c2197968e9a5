package deck

import (
	"errors"
	"fmt"

	"hookdeck/internal/domain"
	"hookdeck/internal/eventbus"
	"hookdeck/internal/navigation"
)

// ErrNotCyclic is returned when next/previous is asked of a tab-style slide
var ErrNotCyclic = errors.New("slide has no next/previous steps")

// Option configures a Presentation
type Option func(*Presentation)

// WithBus publishes navigation events on bus
func WithBus(bus eventbus.EventBus) Option {
	return func(p *Presentation) {
		p.bus = bus
	}
}

// WithRememberSteps keeps each slide's step when it is left and revisited
func WithRememberSteps(remember bool) Option {
	return func(p *Presentation) {
		p.rememberSteps = remember
	}
}

// WithStartSlide mounts the given slide index first
func WithStartSlide(index int) Option {
	return func(p *Presentation) {
		p.start = index
	}
}

// Presentation owns the outer slide navigator and the mounted slide's
// step navigator. Only one slide is mounted at a time.
type Presentation struct {
	deck   *Deck
	slides *navigation.Cycle
	steps  navigation.Selector

	bus           eventbus.EventBus
	rememberSteps bool
	remembered    map[int]int
	start         int
}

// NewPresentation mounts the first slide (or the configured start slide)
func NewPresentation(d *Deck, opts ...Option) (*Presentation, error) {
	if d == nil {
		return nil, ErrNoSlides
	}
	p := &Presentation{
		deck:       d,
		bus:        eventbus.Nop(),
		remembered: make(map[int]int),
	}
	for _, opt := range opts {
		opt(p)
	}

	slides, err := navigation.NewCycle(d.Catalog(), domain.ScopeSlides, p.bus)
	if err != nil {
		return nil, err
	}
	p.slides = slides

	if p.start != 0 {
		if err := p.slides.SelectAt(p.start); err != nil {
			return nil, fmt.Errorf("start slide: %w", err)
		}
	}
	if err := p.mount(); err != nil {
		return nil, err
	}
	return p, nil
}

// Deck returns the presented deck
func (p *Presentation) Deck() *Deck {
	return p.deck
}

// SlideIndex returns the index of the mounted slide
func (p *Presentation) SlideIndex() int {
	return p.slides.Index()
}

// Slide returns the mounted slide
func (p *Presentation) Slide() Slide {
	return p.deck.Slides[p.slides.Index()]
}

// Slides exposes the outer navigator
func (p *Presentation) Slides() *navigation.Cycle {
	return p.slides
}

// Steps exposes the mounted slide's navigator
func (p *Presentation) Steps() navigation.Selector {
	return p.steps
}

// Entry returns the selected step of the mounted slide
func (p *Presentation) Entry() domain.Entry {
	e, _ := p.steps.Catalog().At(p.steps.Index())
	return e
}

// NextSlide moves to the next slide, wrapping around
func (p *Presentation) NextSlide() {
	p.navigateSlides(navigation.DirectionNext)
}

// PreviousSlide moves to the previous slide, wrapping around
func (p *Presentation) PreviousSlide() {
	p.navigateSlides(navigation.DirectionPrevious)
}

// FirstSlide jumps to the first slide
func (p *Presentation) FirstSlide() {
	p.navigateSlides(navigation.DirectionFirst)
}

// LastSlide jumps to the last slide
func (p *Presentation) LastSlide() {
	p.navigateSlides(navigation.DirectionLast)
}

// SelectSlide jumps to slide i
func (p *Presentation) SelectSlide(i int) error {
	old := p.slides.Index()
	if err := p.slides.SelectAt(i); err != nil {
		return err
	}
	return p.remount(old)
}

// NextStep advances the mounted slide's steps. Tab-style slides have no
// next/previous and return ErrNotCyclic.
func (p *Presentation) NextStep() error {
	c, ok := p.steps.(*navigation.Cycle)
	if !ok {
		return ErrNotCyclic
	}
	c.Next()
	return nil
}

// PreviousStep moves the mounted slide's steps backwards
func (p *Presentation) PreviousStep() error {
	c, ok := p.steps.(*navigation.Cycle)
	if !ok {
		return ErrNotCyclic
	}
	c.Previous()
	return nil
}

// SelectStep selects step i of the mounted slide
func (p *Presentation) SelectStep(i int) error {
	return p.steps.SelectAt(i)
}

// Follow jumps to the slide linked from entryID on the mounted slide.
// It reports whether a link existed.
func (p *Presentation) Follow(entryID string) bool {
	var jumpErr error
	followed := p.Slide().Links.Resolve(entryID, func(target int) {
		p.bus.Publish(domain.CrossReferenceEvent{EntryID: entryID, Target: target})
		jumpErr = p.SelectSlide(target)
	})
	return followed && jumpErr == nil
}

// FollowSelected follows the link of the selected step, if any
func (p *Presentation) FollowSelected() bool {
	return p.Follow(p.Entry().ID)
}

// HasLink reports whether the selected step jumps to another slide
func (p *Presentation) HasLink() bool {
	_, ok := p.Slide().Links.Lookup(p.Entry().ID)
	return ok
}

func (p *Presentation) navigateSlides(direction navigation.Direction) {
	old := p.slides.Index()
	p.slides.Navigate(direction)
	// mount only fails for a catalog-less slide, which build rejects
	_ = p.remount(old)
}

func (p *Presentation) remount(old int) error {
	if old == p.slides.Index() {
		return nil
	}
	if p.rememberSteps && p.steps != nil {
		p.remembered[old] = p.steps.Index()
	}
	return p.mount()
}

func (p *Presentation) mount() error {
	idx := p.slides.Index()
	slide := p.deck.Slides[idx]

	steps, err := navigation.ForKind(slide.Kind, slide.Steps, p.bus)
	if err != nil {
		return fmt.Errorf("mount slide %s: %w", slide.ID, err)
	}
	if p.rememberSteps {
		if step, ok := p.remembered[idx]; ok {
			_ = steps.SelectAt(step)
		}
	}
	p.steps = steps

	p.bus.Publish(domain.SlideMountedEvent{Index: idx, SlideID: slide.ID})
	return nil
}
