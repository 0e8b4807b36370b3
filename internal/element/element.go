// Package element models the UI elements hotkey listeners are scoped to.
//
// The hotkey engine never walks a UI tree itself. Hosts hand it elements
// (the scope a shortcut or listener belongs to) and key events carrying the
// propagation path from the deepest target up to the root. Delivery is
// decided by identity: a listener fires when its scope element appears in
// the path.
//
// Element implementations must be comparable; pointer types are the norm.
package element

// Element is an opaque UI element.
type Element interface {
	// Name returns a human-readable label used in logs.
	Name() string
}

// Ref is an opaque handle that may or may not currently point at an
// element, such as a component-scoped template reference.
type Ref any

// Resolver turns a Ref into a concrete element.
type Resolver interface {
	// Resolve returns the element behind ref, or nil when it is absent.
	Resolve(ref Ref) Element
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(ref Ref) Element

// Resolve implements Resolver.
func (f ResolverFunc) Resolve(ref Ref) Element {
	return f(ref)
}

// Handle is a late-bound reference. Hosts create it when a component is
// declared and fill in Current once the element is mounted.
type Handle struct {
	Current Element
}

// NewHandle returns a handle pointing at e (which may be nil).
func NewHandle(e Element) *Handle {
	return &Handle{Current: e}
}

// DefaultResolver resolves Elements to themselves and Handles to their
// current element. Anything else resolves to nil.
var DefaultResolver Resolver = ResolverFunc(resolveDefault)

func resolveDefault(ref Ref) Element {
	switch r := ref.(type) {
	case nil:
		return nil
	case *Handle:
		if r == nil {
			return nil
		}
		return r.Current
	case Element:
		return r
	default:
		return nil
	}
}

// Contains reports whether target is one of the elements in path.
func Contains(path []Element, target Element) bool {
	if target == nil {
		return false
	}
	for _, e := range path {
		if e == target {
			return true
		}
	}
	return false
}
