package event

// Handler receives a published payload.
type Handler[E any] func(payload E)

// FilterFunc decides whether a payload is delivered to a subscription.
type FilterFunc[E any] func(payload E) bool

// PanicHandler is called when a handler panics.
type PanicHandler func(err *PanicError)

// DefaultPanicHandler drops the panic; the bus has already recovered it.
func DefaultPanicHandler(*PanicError) {}

// Stats contains bus statistics.
type Stats struct {
	// EventsPublished is the number of Publish calls that found at least one subscription.
	EventsPublished uint64

	// EventsDelivered is the number of handler invocations that returned normally.
	EventsDelivered uint64

	// EventsFiltered is the number of deliveries rejected by a subscription filter.
	EventsFiltered uint64

	// HandlerPanics is the number of handlers that panicked.
	HandlerPanics uint64

	// ActiveSubscribers is the number of registered subscriptions.
	ActiveSubscribers int
}
