package key

// PressSet is the live set of keys currently held down. It is mutated on
// every key transition and is not safe for concurrent use.
type PressSet struct {
	keys map[Identifier]struct{}
}

// NewPressSet creates an empty press set.
func NewPressSet() *PressSet {
	return &PressSet{keys: make(map[Identifier]struct{})}
}

// Apply updates the set from a raw event. Key-down adds the lowercased
// identifier and key-up removes it. It returns false for other kinds,
// leaving the set untouched.
func (s *PressSet) Apply(e Event) bool {
	switch e.Kind {
	case KindDown:
		s.Press(e.Identifier())
	case KindUp:
		s.Release(e.Identifier())
	default:
		return false
	}
	return true
}

// Press marks id as held.
func (s *PressSet) Press(id Identifier) {
	s.keys[id] = struct{}{}
}

// Release marks id as no longer held.
func (s *PressSet) Release(id Identifier) {
	delete(s.keys, id)
}

// Has reports whether id is held.
func (s *PressSet) Has(id Identifier) bool {
	_, ok := s.keys[id]
	return ok
}

// Len returns the number of held keys.
func (s *PressSet) Len() int {
	return len(s.keys)
}

// IsEmpty returns true when no key is held.
func (s *PressSet) IsEmpty() bool {
	return len(s.keys) == 0
}

// Clear releases every key.
func (s *PressSet) Clear() {
	clear(s.keys)
}

// Combination returns the held keys as a canonical Combination.
func (s *PressSet) Combination() Combination {
	ids := make([]Identifier, 0, len(s.keys))
	for id := range s.keys {
		ids = append(ids, id)
	}
	return FromIdentifiers(ids...)
}
