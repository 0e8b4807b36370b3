// Package terminal feeds a tcell terminal's input to the hotkey engine.
//
// Terminals report whole key presses, not separate key transitions. Host
// turns each press into key-down events for the modifiers and the key,
// followed by key-up events in reverse order, all targeted at the element
// that currently has focus. Terminal focus events are forwarded to a
// component.Window.
package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/hotkeys/internal/component"
	"github.com/dshills/hotkeys/internal/element"
	"github.com/dshills/hotkeys/internal/input/key"
)

// Engine consumes raw key events.
type Engine interface {
	AddKeyEvent(ev key.Event) (string, bool)
}

// Host adapts terminal events for an Engine.
// It is not safe for concurrent use; call it from the event loop.
type Host struct {
	engine Engine
	window *component.Window
	focus  *element.Node
}

// NewHost creates a host whose events target focus.
func NewHost(engine Engine, focus *element.Node) *Host {
	return &Host{
		engine: engine,
		window: component.NewWindow(),
		focus:  focus,
	}
}

// Window returns the focus source driven by terminal focus events.
func (h *Host) Window() *component.Window {
	return h.window
}

// Focus moves keyboard focus to n.
func (h *Host) Focus(n *element.Node) {
	h.focus = n
}

// Focused returns the element receiving key events.
func (h *Host) Focused() *element.Node {
	return h.focus
}

// HandleEvent processes one terminal event and returns the names of the
// hotkeys it triggered, in order. Events other than keys and focus
// changes are ignored.
func (h *Host) HandleEvent(ev tcell.Event) []string {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return h.press(KeyNames(e))
	case *tcell.EventFocus:
		h.window.SetFocused(e.Focused)
	}
	return nil
}

func (h *Host) press(ids []key.Identifier) []string {
	if len(ids) == 0 {
		return nil
	}

	var path []element.Element
	if h.focus != nil {
		path = h.focus.Path()
	}

	var matched []string
	feed := func(ev key.Event) {
		if name, ok := h.engine.AddKeyEvent(ev); ok {
			matched = append(matched, name)
		}
	}
	for _, id := range ids {
		feed(key.NewDown(string(id), path))
	}
	for i := len(ids) - 1; i >= 0; i-- {
		feed(key.NewUp(string(ids[i]), path))
	}
	return matched
}
