// Package catalog holds the filtering and pagination pipeline that sits
// between the remote creature API and the terminal UI.
package catalog

import "sort"

// EntryRef is one row of the catalog index. Handle identifies the entry and
// is what detail lookups are keyed on.
type EntryRef struct {
	Name   string
	Handle string
}

// Stat is a named base stat.
type Stat struct {
	Name  string
	Value int
}

// EntryDetail is the full record for an entry, fetched on demand.
type EntryDetail struct {
	ID             int
	Name           string
	ImageRef       string
	Tags           []string
	Attributes     []string
	Stats          []Stat
	Height         int
	Weight         int
	BaseExperience int
}

// HasAnyTag reports whether the detail carries at least one tag in selected.
func (d *EntryDetail) HasAnyTag(selected TagSet) bool {
	if d == nil {
		return false
	}
	for _, tag := range d.Tags {
		if selected.Has(tag) {
			return true
		}
	}
	return false
}

// TagSet is a set of tag names.
type TagSet map[string]struct{}

// NewTagSet builds a set from names.
func NewTagSet(names ...string) TagSet {
	s := make(TagSet, len(names))
	for _, name := range names {
		s[name] = struct{}{}
	}
	return s
}

// Has reports membership.
func (s TagSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Toggle flips membership and returns the new state.
func (s TagSet) Toggle(name string) bool {
	if s.Has(name) {
		delete(s, name)
		return false
	}
	s[name] = struct{}{}
	return true
}

// Clone returns an independent copy.
func (s TagSet) Clone() TagSet {
	out := make(TagSet, len(s))
	for name := range s {
		out[name] = struct{}{}
	}
	return out
}

// Sorted returns the members in lexical order.
func (s TagSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for name := range s {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
