package domain

import "slices"

// FilterState is the mutable browsing state of one session: active tag
// filters, the search query and the current selection. The zero value is
// an empty state.
type FilterState struct {
	active       [CategoryCount][]TagValue
	query        string
	selectedID   int
	hasSelection bool
}

// NewFilterState returns an empty state.
func NewFilterState() FilterState {
	return FilterState{}
}

// Toggle adds v to the selection set of c, or removes it if already
// present. Out-of-range categories are ignored and report false.
//
// The slice is replaced, never edited in place, so copies of s taken by
// assignment keep their own selection.
func (s *FilterState) Toggle(c Category, v TagValue) bool {
	if !c.Valid() {
		return false
	}
	vs := s.active[c]
	if i := slices.Index(vs, v); i >= 0 {
		s.active[c] = slices.Concat(vs[:i:i], vs[i+1:])
		return true
	}
	s.active[c] = append(slices.Clip(vs), v)
	return true
}

// Has reports whether v is selected under c.
func (s FilterState) Has(c Category, v TagValue) bool {
	if !c.Valid() {
		return false
	}
	return slices.Contains(s.active[c], v)
}

// Count returns how many values are selected under c.
func (s FilterState) Count(c Category) int {
	if !c.Valid() {
		return 0
	}
	return len(s.active[c])
}

// Selected returns a copy of the values selected under c, in the order
// they were toggled on.
func (s FilterState) Selected(c Category) []TagValue {
	if !c.Valid() {
		return nil
	}
	return slices.Clone(s.active[c])
}

// SetQuery replaces the raw search query.
func (s *FilterState) SetQuery(q string) { s.query = q }

// Query returns the raw search query as typed.
func (s FilterState) Query() string { return s.query }

// Clear empties every category and the query. The selection is kept.
func (s *FilterState) Clear() {
	for c := range s.active {
		s.active[c] = nil
	}
	s.query = ""
}

// Select records id as the current selection.
func (s *FilterState) Select(id int) {
	s.selectedID = id
	s.hasSelection = true
}

// SelectedID returns the selected recipe id, if any.
func (s FilterState) SelectedID() (int, bool) {
	return s.selectedID, s.hasSelection
}

// IsEmpty reports whether no filter and no query are active.
func (s FilterState) IsEmpty() bool {
	if s.query != "" {
		return false
	}
	for _, vs := range s.active {
		if len(vs) > 0 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy.
func (s FilterState) Clone() FilterState {
	out := s
	for c := range s.active {
		out.active[c] = slices.Clone(s.active[c])
	}
	return out
}
