// Package component provides reference implementations of the host-side
// collaborators the hotkey engine listens to: a Component with suspend and
// resume hooks and a Window with focus and blur hooks.
package component

import "github.com/dshills/hotkeys/internal/element"

// State represents the lifecycle state of a component.
type State int

// Component states.
const (
	// StateActive - Component is shown.
	StateActive State = iota

	// StateSuspended - Component is hidden and its listeners are stopped.
	StateSuspended
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateSuspended:
		return "suspended"
	default:
		return "unknown"
	}
}

// Component is a UI component that can be hidden and shown again.
// Hooks run in registration order. It is not safe for concurrent use.
type Component struct {
	name    string
	element element.Element
	state   State

	suspendHooks []func()
	resumeHooks  []func()
}

// New creates an active component rooted at el.
func New(name string, el element.Element) *Component {
	return &Component{name: name, element: el}
}

// Name returns the component name.
func (c *Component) Name() string {
	return c.name
}

// Element returns the component's root element.
func (c *Component) Element() element.Element {
	return c.element
}

// State returns the current state.
func (c *Component) State() State {
	return c.state
}

// OnSuspend registers fn to run each time the component is suspended.
func (c *Component) OnSuspend(fn func()) {
	c.suspendHooks = append(c.suspendHooks, fn)
}

// OnResume registers fn to run each time the component is resumed.
func (c *Component) OnResume(fn func()) {
	c.resumeHooks = append(c.resumeHooks, fn)
}

// Suspend hides the component. It does nothing if already suspended.
func (c *Component) Suspend() {
	if c.state == StateSuspended {
		return
	}
	c.state = StateSuspended
	run(c.suspendHooks)
}

// Resume shows the component again. It does nothing unless suspended.
func (c *Component) Resume() {
	if c.state != StateSuspended {
		return
	}
	c.state = StateActive
	run(c.resumeHooks)
}

// Toggle suspends an active component and resumes a suspended one.
func (c *Component) Toggle() {
	if c.state == StateSuspended {
		c.Resume()
	} else {
		c.Suspend()
	}
}

func run(hooks []func()) {
	for _, fn := range hooks {
		fn()
	}
}
