package hotkey

import (
	"github.com/dshills/hotkeys/internal/element"
	"github.com/dshills/hotkeys/internal/event"
	"github.com/dshills/hotkeys/internal/input/key"
	"github.com/dshills/hotkeys/internal/input/keymap"
)

// Resumable is a listener attached to a shortcut. It can be stopped and
// started any number of times.
type Resumable struct {
	svc      *Service
	shortcut *keymap.Shortcut
	ref      element.Ref
	callback func(key.Event)

	sub     event.Subscription
	binding *keymap.Binding

	suspended  bool
	wasEnabled bool
}

// Start begins listening. Calling Start on a started listener does nothing.
func (r *Resumable) Start() {
	if r.sub != nil {
		return
	}

	sub, err := r.svc.bus.Subscribe(r.shortcut, r.deliver, event.WithFilter(r.inScope))
	if err != nil {
		r.svc.logger.Error("failed to subscribe", "hotkey", r.shortcut.Name(), "error", err)
		return
	}
	r.sub = sub
	r.binding = keymap.NewBinding(sub.ID(), r.ref)
	r.shortcut.Bind(r.binding)
	r.svc.recorder.Bindings(r.shortcut.Name(), r.shortcut.BindingCount())
}

// Stop stops listening. No delivery happens after Stop returns, including
// the rest of a dispatch already in progress. Calling Stop on a stopped
// listener does nothing.
func (r *Resumable) Stop() {
	if r.sub == nil {
		return
	}

	if err := r.svc.bus.Unsubscribe(r.sub); err != nil {
		r.svc.logger.Warn("unsubscribe failed", "hotkey", r.shortcut.Name(), "subscription", r.sub.ID(), "error", err)
	}
	r.shortcut.Unbind(r.binding)
	r.sub = nil
	r.binding = nil
	r.svc.recorder.Bindings(r.shortcut.Name(), r.shortcut.BindingCount())
}

// Enabled reports whether the listener is started.
func (r *Resumable) Enabled() bool {
	return r.sub != nil && r.sub.IsActive()
}

// Name returns the shortcut name.
func (r *Resumable) Name() string {
	return r.shortcut.Name()
}

// Suspend records whether the listener is enabled and stops it.
// A second Suspend without a Resume in between does nothing.
func (r *Resumable) Suspend() {
	if r.suspended {
		return
	}
	r.suspended = true
	r.wasEnabled = r.Enabled()
	r.Stop()
}

// Resume restarts the listener if it was enabled when suspended.
// Without a prior Suspend it does nothing.
func (r *Resumable) Resume() {
	if !r.suspended {
		return
	}
	r.suspended = false
	if r.wasEnabled {
		r.Start()
	}
}

// BindLifecycle makes the listener follow lc: suspended while lc is
// suspended, resumed with it.
func (r *Resumable) BindLifecycle(lc Lifecycle) {
	lc.OnSuspend(r.Suspend)
	lc.OnResume(r.Resume)
}

// inScope is the subscription filter. The scope is resolved on every call,
// so a Handle filled in after On still takes effect.
func (r *Resumable) inScope(ev key.Event) bool {
	scope := r.svc.resolve(r.ref, r.shortcut.Scope())
	if !element.Contains(ev.Path, scope) {
		r.svc.recorder.ScopeMiss(r.shortcut.Name())
		return false
	}
	return true
}

// deliver is the bus handler; inScope has already accepted ev.
func (r *Resumable) deliver(ev key.Event) {
	r.svc.recorder.Delivered(r.shortcut.Name())
	r.callback(ev)
}
