package event

import "sync"

// registry holds subscriptions grouped by key, in subscription order.
// It is safe for concurrent access.
type registry[K comparable, E any] struct {
	mu   sync.RWMutex
	subs map[K][]*subscription[K, E]
	byID map[string]*subscription[K, E]
}

func newRegistry[K comparable, E any]() *registry[K, E] {
	return &registry[K, E]{
		subs: make(map[K][]*subscription[K, E]),
		byID: make(map[string]*subscription[K, E]),
	}
}

// add appends a subscription after any existing ones for its key.
func (r *registry[K, E]) add(sub *subscription[K, E]) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.subs[sub.key] = append(r.subs[sub.key], sub)
	r.byID[sub.id] = sub
}

// remove deletes a subscription by ID.
// The per-key slice is rebuilt rather than spliced so snapshots handed out
// by match stay intact.
func (r *registry[K, E]) remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub, ok := r.byID[id]
	if !ok {
		return false
	}
	delete(r.byID, id)

	old := r.subs[sub.key]
	kept := make([]*subscription[K, E], 0, len(old))
	for _, s := range old {
		if s.id != id {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		delete(r.subs, sub.key)
	} else {
		r.subs[sub.key] = kept
	}
	return true
}

// match returns a snapshot of the subscriptions for key.
func (r *registry[K, E]) match(key K) []*subscription[K, E] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	subs := r.subs[key]
	if len(subs) == 0 {
		return nil
	}
	out := make([]*subscription[K, E], len(subs))
	copy(out, subs)
	return out
}

// len returns the number of registered subscriptions.
func (r *registry[K, E]) len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}
