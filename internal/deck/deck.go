// Package deck loads slide decks and keeps the presentation state.
package deck

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"hookdeck/internal/domain"
	"hookdeck/internal/xref"
)

//go:embed default.yaml
var defaultDeck []byte

// DefaultName is shown as the source of the embedded deck
const DefaultName = "<builtin>"

var (
	ErrNoSlides       = errors.New("deck has no slides")
	ErrDuplicateSlide = errors.New("duplicate slide id")
	ErrUnknownKind    = errors.New("unknown slide kind")
	ErrUnknownLink    = errors.New("link to unknown slide")
	ErrUnknownStep    = errors.New("link from unknown step")
)

// stepFile is one step as written in a deck file
type stepFile struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Body        string `yaml:"body"`
	Code        string `yaml:"code"`
	Annotation  string `yaml:"annotation"`
}

type slideFile struct {
	ID       string            `yaml:"id"`
	Title    string            `yaml:"title"`
	Subtitle string            `yaml:"subtitle"`
	Kind     string            `yaml:"kind"`
	Steps    []stepFile        `yaml:"steps"`
	Links    map[string]string `yaml:"links"`
}

type deckFile struct {
	Title  string      `yaml:"title"`
	Slides []slideFile `yaml:"slides"`
}

// Slide is one top-level slide and its own step catalog
type Slide struct {
	ID       string
	Title    string
	Subtitle string
	Kind     domain.SlideKind
	Steps    *domain.Catalog
	Links    *xref.Resolver
}

// Deck is a parsed, validated deck
type Deck struct {
	Title  string
	Source string
	Slides []Slide

	outer *domain.Catalog
}

// Default returns the embedded deck
func Default() (*Deck, error) {
	d, err := Parse(defaultDeck)
	if err != nil {
		return nil, fmt.Errorf("builtin deck: %w", err)
	}
	d.Source = DefaultName
	return d, nil
}

// Load reads and parses a deck file
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck: %w", err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	d.Source = path
	return d, nil
}

// Parse decodes and validates deck YAML
func Parse(data []byte) (*Deck, error) {
	var f deckFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse deck: %w", err)
	}
	return build(f)
}

func build(f deckFile) (*Deck, error) {
	if len(f.Slides) == 0 {
		return nil, ErrNoSlides
	}

	// First pass: slide ids define the outer catalog the links point into
	position := make(map[string]int, len(f.Slides))
	outer := make([]domain.Entry, 0, len(f.Slides))
	for i, sf := range f.Slides {
		id := strings.TrimSpace(sf.ID)
		if id == "" {
			id = fmt.Sprintf("slide-%d", i+1)
		}
		if _, dup := position[id]; dup {
			return nil, fmt.Errorf("slide %d: %w: %q", i+1, ErrDuplicateSlide, id)
		}
		position[id] = i
		f.Slides[i].ID = id
		outer = append(outer, domain.Entry{ID: id, Title: sf.Title, Description: sf.Subtitle})
	}

	d := &Deck{
		Title:  f.Title,
		Slides: make([]Slide, 0, len(f.Slides)),
		outer:  domain.MustCatalog(outer...),
	}

	for i, sf := range f.Slides {
		s, err := buildSlide(sf, position)
		if err != nil {
			return nil, fmt.Errorf("slide %d (%s): %w", i+1, sf.ID, err)
		}
		d.Slides = append(d.Slides, s)
	}
	return d, nil
}

func buildSlide(sf slideFile, position map[string]int) (Slide, error) {
	kind := domain.SlideKind(strings.ToLower(strings.TrimSpace(sf.Kind)))
	if kind == "" {
		kind = domain.KindCycle
	}
	if !kind.Valid() {
		return Slide{}, fmt.Errorf("%w: %q", ErrUnknownKind, sf.Kind)
	}

	entries := make([]domain.Entry, 0, len(sf.Steps))
	for _, st := range sf.Steps {
		entries = append(entries, domain.Entry{
			ID:          st.ID,
			Title:       st.Title,
			Description: st.Description,
			Body:        strings.TrimRight(st.Body, "\n"),
			Code:        strings.TrimRight(st.Code, "\n"),
			Annotation:  strings.TrimRight(st.Annotation, "\n"),
		})
	}
	steps, err := domain.NewCatalog(entries...)
	if err != nil {
		return Slide{}, err
	}

	edges := make(map[string]int, len(sf.Links))
	for entryID, slideID := range sf.Links {
		if steps.IndexOf(entryID) < 0 {
			return Slide{}, fmt.Errorf("%w: %q", ErrUnknownStep, entryID)
		}
		target, ok := position[slideID]
		if !ok {
			return Slide{}, fmt.Errorf("%w: %s -> %q", ErrUnknownLink, entryID, slideID)
		}
		edges[entryID] = target
	}
	links, err := xref.NewResolver(edges, len(position))
	if err != nil {
		return Slide{}, err
	}

	return Slide{
		ID:       sf.ID,
		Title:    sf.Title,
		Subtitle: sf.Subtitle,
		Kind:     kind,
		Steps:    steps,
		Links:    links,
	}, nil
}

// Catalog returns the outer catalog: one entry per slide
func (d *Deck) Catalog() *domain.Catalog {
	return d.outer
}

// Len returns the number of slides
func (d *Deck) Len() int {
	return len(d.Slides)
}

// IndexOf returns the index of the slide with the given id, or -1
func (d *Deck) IndexOf(id string) int {
	return d.outer.IndexOf(id)
}
