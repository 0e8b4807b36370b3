// Package event provides the typed dispatch bus used to deliver hotkey
// triggers to listeners.
//
// A Bus is keyed by a comparable identity (the registered shortcut) rather
// than a string topic, and carries a typed payload (the raw key event).
// Delivery is synchronous, in subscription order, inside the publisher's
// goroutine:
//
//	bus := event.NewBus[*keymap.Shortcut, key.Event]()
//	sub, _ := bus.Subscribe(shortcut, func(ev key.Event) { ... },
//	    event.WithFilter(func(ev key.Event) bool { return inScope(ev) }))
//	bus.Publish(shortcut, ev)
//	bus.Unsubscribe(sub)
//
// # Subscription Lifecycle
//
// A subscription receives payloads until it is unsubscribed. Its state is
// checked at delivery time, so a handler that unsubscribes another
// subscription during a publish round prevents that subscription from being
// called later in the same round. A filter rejection is counted in Stats.
//
// # Panics
//
// A panicking handler is recovered and reported to the bus PanicHandler as a
// *PanicError. Delivery continues with the remaining subscriptions.
package event
