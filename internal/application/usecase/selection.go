package usecase

// Selection is the set of selected RowKeys. It is the only mutable state of
// the review core; it starts empty and persists entry-by-entry across filter
// and sort changes until explicitly cleared.
type Selection struct {
	keys map[string]struct{}
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{keys: make(map[string]struct{})}
}

// Toggle adds or removes a key.
func (s *Selection) Toggle(key string, included bool) {
	if included {
		s.keys[key] = struct{}{}
	} else {
		delete(s.keys, key)
	}
}

// SelectAllVisible replaces the selection with exactly the visible keys.
// It does not union with the prior selection: selecting all while filtered
// to overused rows, then switching the filter back, leaves only the
// overused keys selected.
func (s *Selection) SelectAllVisible(visibleKeys []string) {
	s.keys = make(map[string]struct{}, len(visibleKeys))
	for _, key := range visibleKeys {
		s.keys[key] = struct{}{}
	}
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.keys = make(map[string]struct{})
}

// Has reports whether the key is selected.
func (s *Selection) Has(key string) bool {
	_, ok := s.keys[key]
	return ok
}

// Count returns the number of selected keys, visible or not.
func (s *Selection) Count() int {
	return len(s.keys)
}

// IsAllVisibleSelected reports whether every visible key is selected. An
// empty visible set yields false, so the header checkbox is never
// vacuously checked.
func (s *Selection) IsAllVisibleSelected(visibleKeys []string) bool {
	if len(visibleKeys) == 0 {
		return false
	}
	for _, key := range visibleKeys {
		if !s.Has(key) {
			return false
		}
	}
	return true
}
