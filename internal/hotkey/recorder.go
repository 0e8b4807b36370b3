package hotkey

// Recorder receives engine measurements. internal/metrics provides a
// Prometheus implementation.
type Recorder interface {
	// Matched is called when a key transition produces a current match.
	Matched(name string)

	// Unobserved is called when a combination matches a shortcut with no
	// listeners.
	Unobserved(name string)

	// Delivered is called each time a listener callback runs.
	Delivered(name string)

	// ScopeMiss is called when a listener is skipped because its scope is
	// not on the event path.
	ScopeMiss(name string)

	// Bindings reports the current number of active listeners on a shortcut.
	Bindings(name string, n int)

	// HandlerPanic is called when a listener callback panics.
	HandlerPanic()
}

type nopRecorder struct{}

func (nopRecorder) Matched(string)       {}
func (nopRecorder) Unobserved(string)    {}
func (nopRecorder) Delivered(string)     {}
func (nopRecorder) ScopeMiss(string)     {}
func (nopRecorder) Bindings(string, int) {}
func (nopRecorder) HandlerPanic()        {}
