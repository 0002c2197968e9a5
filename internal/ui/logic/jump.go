package logic

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"

	"hookdeck/internal/deck"
)

// ErrNoMatch is returned when a goto query names no slide
var ErrNoMatch = errors.New("no matching slide")

// ResolveSlide finds the slide a goto query refers to. Queries are tried as a
// 1-based slide number, then an exact slide id, then a case-insensitive
// title, then a fuzzy match over ids and titles.
func ResolveSlide(d *deck.Deck, query string) (int, error) {
	query = strings.TrimSpace(query)
	if d == nil || query == "" {
		return 0, ErrNoMatch
	}

	if n, err := strconv.Atoi(query); err == nil {
		if n < 1 || n > d.Len() {
			return 0, fmt.Errorf("slide %d: %w", n, ErrNoMatch)
		}
		return n - 1, nil
	}

	if idx := d.IndexOf(query); idx >= 0 {
		return idx, nil
	}

	for i, s := range d.Slides {
		if strings.EqualFold(s.Title, query) {
			return i, nil
		}
	}

	matches := fuzzy.FindFrom(query, slideSource(d.Slides))
	if len(matches) == 0 {
		return 0, fmt.Errorf("%q: %w", query, ErrNoMatch)
	}
	return matches[0].Index, nil
}

// Preview describes the slide a partial query would jump to, or ""
func Preview(d *deck.Deck, query string) string {
	idx, err := ResolveSlide(d, query)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%d %s", idx+1, d.Slides[idx].Title)
}

// slideSource matches against "id title" so either can be typed
type slideSource []deck.Slide

func (s slideSource) String(i int) string {
	return s[i].ID + " " + s[i].Title
}

func (s slideSource) Len() int {
	return len(s)
}
