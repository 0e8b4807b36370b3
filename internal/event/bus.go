package event

import (
	"runtime/debug"
	"sync/atomic"
)

// Bus delivers payloads of type E to handlers subscribed under keys of type K.
// All methods are safe for concurrent use. Publish runs handlers in the
// caller's goroutine.
type Bus[K comparable, E any] struct {
	registry *registry[K, E]
	config   busConfig

	eventsPublished atomic.Uint64
	eventsDelivered atomic.Uint64
	eventsFiltered  atomic.Uint64
	handlerPanics   atomic.Uint64
}

// NewBus creates a new bus with the given options.
func NewBus[K comparable, E any](opts ...BusOption) *Bus[K, E] {
	config := defaultBusConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &Bus[K, E]{
		registry: newRegistry[K, E](),
		config:   config,
	}
}

// Subscribe registers handler under key.
// Handlers for the same key are called in the order they subscribed.
func (b *Bus[K, E]) Subscribe(key K, handler Handler[E], opts ...SubscriptionOption[E]) (Subscription, error) {
	if handler == nil {
		return nil, ErrNilHandler
	}

	var config SubscriptionConfig[E]
	for _, opt := range opts {
		opt(&config)
	}

	sub := newSubscription(key, handler, config)
	b.registry.add(sub)
	return sub, nil
}

// Unsubscribe removes a subscription. A subscription removed while a
// Publish is in progress receives nothing further from it.
func (b *Bus[K, E]) Unsubscribe(sub Subscription) error {
	if sub == nil {
		return ErrInvalidSubscription
	}
	s, ok := sub.(*subscription[K, E])
	if !ok {
		return ErrInvalidSubscription
	}

	s.cancelled.Store(true)
	if !b.registry.remove(s.id) {
		return ErrSubscriptionNotFound
	}
	return nil
}

// Publish delivers payload to every subscription under key whose filter
// accepts it and returns the number of handlers that ran to completion.
func (b *Bus[K, E]) Publish(key K, payload E) int {
	subs := b.registry.match(key)
	if len(subs) == 0 {
		return 0
	}
	b.eventsPublished.Add(1)

	delivered := 0
	for _, sub := range subs {
		// Checked per delivery: an earlier handler may have unsubscribed
		// this one.
		if !sub.IsActive() {
			continue
		}
		if sub.config.Filter != nil && !sub.config.Filter(payload) {
			b.eventsFiltered.Add(1)
			continue
		}
		if b.dispatch(sub, payload) {
			delivered++
		}
	}
	return delivered
}

// dispatch calls the handler, recovering any panic.
func (b *Bus[K, E]) dispatch(sub *subscription[K, E], payload E) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			b.handlerPanics.Add(1)
			b.config.panicHandler(&PanicError{
				SubscriptionID: sub.id,
				Key:            sub.keyString(),
				Value:          r,
				Stack:          string(debug.Stack()),
			})
			ok = false
		}
	}()

	sub.handler(payload)
	b.eventsDelivered.Add(1)
	return true
}

// Stats returns current bus statistics.
func (b *Bus[K, E]) Stats() Stats {
	return Stats{
		EventsPublished:   b.eventsPublished.Load(),
		EventsDelivered:   b.eventsDelivered.Load(),
		EventsFiltered:    b.eventsFiltered.Load(),
		HandlerPanics:     b.handlerPanics.Load(),
		ActiveSubscribers: b.registry.len(),
	}
}
