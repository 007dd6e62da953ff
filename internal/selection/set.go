// Package selection tracks the listings picked as ingredients for a meal idea.
package selection

import "sort"

// Set is a set of listing IDs. It is not safe for concurrent use; the board
// serialises access to it.
type Set struct {
	ids map[string]struct{}
}

func New() *Set {
	return &Set{ids: make(map[string]struct{})}
}

// Toggle adds the id when selected is true and removes it otherwise.
// It reports whether membership changed.
func (s *Set) Toggle(id string, selected bool) bool {
	_, had := s.ids[id]
	switch {
	case selected && !had:
		s.ids[id] = struct{}{}
		return true
	case !selected && had:
		delete(s.ids, id)
		return true
	}
	return false
}

// Remove drops the id, reporting whether it was a member.
func (s *Set) Remove(id string) bool {
	return s.Toggle(id, false)
}

func (s *Set) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

func (s *Set) Len() int {
	return len(s.ids)
}

// IDs returns the members in lexical order.
func (s *Set) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
