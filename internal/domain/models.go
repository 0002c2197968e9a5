package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyCatalog is returned when a catalog is built without entries
var ErrEmptyCatalog = errors.New("catalog must contain at least one entry")

// Entry represents one unit of displayable content (a step or a slide)
type Entry struct {
	ID          string // optional, used for cross references
	Title       string
	Description string
	Body        string // line breaks are significant
	Code        string // optional verbatim source sample
	Annotation  string // optional issue/summary block
}

// HasCode reports whether the entry carries a source sample
func (e Entry) HasCode() bool {
	return e.Code != ""
}

// HasAnnotation reports whether the entry carries an annotation block
func (e Entry) HasAnnotation() bool {
	return e.Annotation != ""
}

// Catalog is a fixed, ordered, non-empty sequence of entries
type Catalog struct {
	entries []Entry
}

// NewCatalog creates a catalog from the given entries.
// The entries are copied; later changes to the caller's slice are not seen.
func NewCatalog(entries ...Entry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}
	cp := make([]Entry, len(entries))
	copy(cp, entries)
	return &Catalog{entries: cp}, nil
}

// MustCatalog is like NewCatalog but panics on an empty entry list.
// It is meant for literal content defined in code.
func MustCatalog(entries ...Entry) *Catalog {
	c, err := NewCatalog(entries...)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of entries
func (c *Catalog) Len() int {
	return len(c.entries)
}

// At returns the entry at index i
func (c *Catalog) At(i int) (Entry, error) {
	if i < 0 || i >= len(c.entries) {
		return Entry{}, fmt.Errorf("index %d outside catalog of %d entries", i, len(c.entries))
	}
	return c.entries[i], nil
}

// Contains reports whether i is a valid index into the catalog
func (c *Catalog) Contains(i int) bool {
	return i >= 0 && i < len(c.entries)
}

// Indices enumerates every valid index, in order
func (c *Catalog) Indices() []int {
	idx := make([]int, len(c.entries))
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// Entries returns a copy of the entries
func (c *Catalog) Entries() []Entry {
	cp := make([]Entry, len(c.entries))
	copy(cp, c.entries)
	return cp
}

// IndexOf returns the index of the entry with the given ID, or -1
func (c *Catalog) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, e := range c.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// SlideKind selects how a slide navigates its steps
type SlideKind string

const (
	// KindCycle slides wrap around with next/previous controls
	KindCycle SlideKind = "cycle"
	// KindTabs slides only support direct selection by button
	KindTabs SlideKind = "tabs"
	// KindOverview slides are tabs whose entries may jump to other slides
	KindOverview SlideKind = "overview"
)

// Valid reports whether k is a known kind
func (k SlideKind) Valid() bool {
	switch k {
	case KindCycle, KindTabs, KindOverview:
		return true
	default:
		return false
	}
}

// Cyclic reports whether the kind navigates with wraparound next/previous
func (k SlideKind) Cyclic() bool {
	return k == KindCycle
}
