// Package xref lets an entry inside a nested view jump the outer navigator.
package xref

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownTarget is returned when an edge points outside the outer catalog
var ErrUnknownTarget = errors.New("cross reference target outside outer catalog")

// JumpFunc moves the outer navigator; usually the outer SelectAt
type JumpFunc func(index int)

// Resolver maps entry identifiers to indices of an outer catalog
type Resolver struct {
	edges map[string]int
}

// NewResolver validates every edge against the outer catalog size
func NewResolver(edges map[string]int, outerLen int) (*Resolver, error) {
	cp := make(map[string]int, len(edges))
	for id, target := range edges {
		if target < 0 || target >= outerLen {
			return nil, fmt.Errorf("%q -> %d (outer size %d): %w", id, target, outerLen, ErrUnknownTarget)
		}
		cp[id] = target
	}
	return &Resolver{edges: cp}, nil
}

// Empty returns a resolver without edges
func Empty() *Resolver {
	return &Resolver{edges: map[string]int{}}
}

// Lookup returns the mapped index for id
func (r *Resolver) Lookup(id string) (int, bool) {
	if r == nil {
		return 0, false
	}
	target, ok := r.edges[id]
	return target, ok
}

// Resolve calls jump exactly once with the mapped index when id has an edge.
// Ids without an edge are the common case and do nothing.
func (r *Resolver) Resolve(id string, jump JumpFunc) bool {
	target, ok := r.Lookup(id)
	if !ok || jump == nil {
		return false
	}
	jump(target)
	return true
}

// IDs returns the mapped identifiers in sorted order
func (r *Resolver) IDs() []string {
	if r == nil {
		return nil
	}
	ids := make([]string, 0, len(r.edges))
	for id := range r.edges {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of edges
func (r *Resolver) Len() int {
	if r == nil {
		return 0
	}
	return len(r.edges)
}
