// Package hotkey detects keyboard shortcuts from a raw key event stream and
// dispatches them to scoped listeners.
//
// A Service tracks the set of keys currently held, recomputes the current
// match on every key transition and publishes the triggering event to the
// listeners of the matched shortcut. Each listener is scoped to an element;
// it is called only when that element lies on the event's propagation path.
//
//	svc := hotkey.New(hotkey.WithConfig(src), hotkey.WithRoot(doc))
//	svc.Register("save", []string{"ctrl+s", "meta+s"}, nil)
//
//	r, err := svc.On("save", func(ev key.Event) { ... }, editorHandle)
//	...
//	r.Stop()
//
// Listeners owned by a component that can be hidden use OnWithin (or
// Resumable.BindLifecycle) so they stop while the component is suspended
// and come back only if they were enabled before.
//
// A Service is not safe for concurrent use. Drive it from the host's UI
// loop.
package hotkey
