package key

import (
	"time"

	"github.com/dshills/hotkeys/internal/element"
)

// Kind identifies the type of a raw keyboard event.
type Kind uint8

const (
	// KindOther is any event the tracker ignores (keypress, repeat, ...).
	KindOther Kind = iota

	// KindDown is a key-down transition.
	KindDown

	// KindUp is a key-up transition.
	KindUp
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindDown:
		return "keydown"
	case KindUp:
		return "keyup"
	default:
		return "other"
	}
}

// Event is a raw keyboard event delivered by the host.
type Event struct {
	// Kind is the event type.
	Kind Kind

	// Key is the key name as reported by the host ("Control", "k", "ArrowUp").
	Key string

	// Path is the propagation path, deepest target first and root last.
	Path []element.Element

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewDown creates a key-down event with the current timestamp.
func NewDown(name string, path []element.Element) Event {
	return Event{Kind: KindDown, Key: name, Path: path, Timestamp: time.Now()}
}

// NewUp creates a key-up event with the current timestamp.
func NewUp(name string, path []element.Element) Event {
	return Event{Kind: KindUp, Key: name, Path: path, Timestamp: time.Now()}
}

// Identifier returns the lowercased key identifier.
func (e Event) Identifier() Identifier {
	return FromEvent(e.Key)
}

// Target returns the deepest element on the path, or nil.
func (e Event) Target() element.Element {
	if len(e.Path) == 0 {
		return nil
	}
	return e.Path[0]
}
