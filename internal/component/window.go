package component

// Window tracks application focus and notifies hooks on every report.
// A new Window is focused.
type Window struct {
	unfocused bool

	focusHooks []func()
	blurHooks  []func()
}

// NewWindow creates a focused window.
func NewWindow() *Window {
	return &Window{}
}

// OnFocus registers fn to run whenever the window gains focus.
func (w *Window) OnFocus(fn func()) {
	w.focusHooks = append(w.focusHooks, fn)
}

// OnBlur registers fn to run whenever the window loses focus.
func (w *Window) OnBlur(fn func()) {
	w.blurHooks = append(w.blurHooks, fn)
}

// Focused reports whether the window has focus.
func (w *Window) Focused() bool {
	return !w.unfocused
}

// SetFocused records a focus report and runs the matching hooks. A repeated
// report runs them again, since hosts may drop the opposite event.
func (w *Window) SetFocused(focused bool) {
	w.unfocused = !focused
	if focused {
		run(w.focusHooks)
	} else {
		run(w.blurHooks)
	}
}
