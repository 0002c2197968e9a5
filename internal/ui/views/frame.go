package views

import (
	"fmt"

	"hookdeck/internal/domain"
)

// Control is one selector button of a catalog
type Control struct {
	Index  int
	Label  string
	Active bool
}

// Frame is everything a slide shows for one selection. It is a pure
// projection of a catalog and an index.
type Frame struct {
	Title         string
	Description   string
	Body          string
	Code          string
	HasCode       bool
	Annotation    string
	HasAnnotation bool
	Controls      []Control
	Selected      int
	Total         int
}

// Project builds the frame for entry idx of cat
func Project(cat *domain.Catalog, idx int) (Frame, error) {
	if cat == nil {
		return Frame{}, fmt.Errorf("project: %w", domain.ErrEmptyCatalog)
	}
	entry, err := cat.At(idx)
	if err != nil {
		return Frame{}, fmt.Errorf("project: %w", err)
	}

	f := Frame{
		Title:         entry.Title,
		Description:   entry.Description,
		Body:          entry.Body,
		Code:          entry.Code,
		HasCode:       entry.HasCode(),
		Annotation:    entry.Annotation,
		HasAnnotation: entry.HasAnnotation(),
		Selected:      idx,
		Total:         cat.Len(),
	}

	// One control per entry, built from the catalog's own indices
	entries := cat.Entries()
	for _, i := range cat.Indices() {
		label := entries[i].Title
		if label == "" {
			label = fmt.Sprintf("%d", i+1)
		}
		f.Controls = append(f.Controls, Control{
			Index:  i,
			Label:  label,
			Active: i == idx,
		})
	}
	return f, nil
}

// ActiveControl returns the index of the active control, or -1
func (f Frame) ActiveControl() int {
	for _, c := range f.Controls {
		if c.Active {
			return c.Index
		}
	}
	return -1
}
