package hotkey

// Lifecycle is implemented by components that can be hidden and shown
// again. Each method registers a hook that is called on every transition.
type Lifecycle interface {
	OnSuspend(fn func())
	OnResume(fn func())
}

// Window is the host's focus source. Each method registers a hook called
// whenever the application window gains or loses focus.
type Window interface {
	OnFocus(fn func())
	OnBlur(fn func())
}
