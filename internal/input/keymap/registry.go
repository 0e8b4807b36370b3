package keymap

import (
	"sync"

	"github.com/dshills/hotkeys/internal/element"
	"github.com/dshills/hotkeys/internal/input/key"
)

// Registry holds shortcuts in registration order.
// It is safe for concurrent access; the bindings of a Shortcut are not.
type Registry struct {
	mu sync.RWMutex

	// shortcuts holds every shortcut in registration order.
	shortcuts []*Shortcut

	// byName indexes shortcuts by name.
	byName map[string]*Shortcut
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*Shortcut),
	}
}

// Register adds a shortcut named name with the given spellings and default
// scope. If the name is already registered nothing changes and Register
// returns false.
func (r *Registry) Register(name string, spellings []string, scope element.Element) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[name]; exists {
		return false
	}

	sc := newShortcut(name, key.NormalizeAll(spellings), scope)
	r.shortcuts = append(r.shortcuts, sc)
	r.byName[name] = sc
	return true
}

// Get returns the shortcut with the given name.
func (r *Registry) Get(name string) (*Shortcut, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sc, ok := r.byName[name]
	return sc, ok
}

// Has reports whether a shortcut with the given name exists.
func (r *Registry) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Shortcuts returns all shortcuts in registration order.
func (r *Registry) Shortcuts() []*Shortcut {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Shortcut, len(r.shortcuts))
	copy(out, r.shortcuts)
	return out
}

// Len returns the number of registered shortcuts.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.shortcuts)
}

// Match returns the first registered shortcut holding the pressed
// combination. The pressed identifiers may be in any order. An empty
// combination never matches.
func (r *Registry) Match(pressed key.Combination) (*Shortcut, bool) {
	if pressed.IsEmpty() {
		return nil, false
	}
	combo := key.FromIdentifiers(pressed...)

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, sc := range r.shortcuts {
		if sc.Holds(combo) {
			return sc, true
		}
	}
	return nil, false
}

// Conflict describes a combination claimed by more than one shortcut.
type Conflict struct {
	// Combination is the shared combination.
	Combination key.Combination

	// Winner is the first-registered shortcut; Match always returns it.
	Winner *Shortcut

	// Shadowed is a later shortcut that can never be matched by Combination.
	Shadowed *Shortcut
}

// Conflicts returns every shadowed (combination, shortcut) pair in
// registration order.
func (r *Registry) Conflicts() []Conflict {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var conflicts []Conflict
	for i, later := range r.shortcuts {
		for _, combo := range later.combinations {
			for _, earlier := range r.shortcuts[:i] {
				if earlier.Holds(combo) {
					conflicts = append(conflicts, Conflict{
						Combination: combo,
						Winner:      earlier,
						Shadowed:    later,
					})
					break
				}
			}
		}
	}
	return conflicts
}
