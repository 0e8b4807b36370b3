package event

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Subscription represents a registered handler.
type Subscription interface {
	// ID returns the unique subscription identifier.
	ID() string

	// IsActive returns true until the subscription is unsubscribed.
	IsActive() bool
}

// SubscriptionConfig contains configuration for a subscription.
type SubscriptionConfig[E any] struct {
	// Filter is an optional predicate.
	// If set, payloads are only delivered if Filter returns true.
	Filter FilterFunc[E]
}

// SubscriptionOption configures a subscription.
type SubscriptionOption[E any] func(*SubscriptionConfig[E])

// WithFilter sets a filter predicate.
func WithFilter[E any](f FilterFunc[E]) SubscriptionOption[E] {
	return func(c *SubscriptionConfig[E]) {
		c.Filter = f
	}
}

// subscription is the concrete Subscription held by a Bus.
type subscription[K comparable, E any] struct {
	id        string
	key       K
	handler   Handler[E]
	config    SubscriptionConfig[E]
	cancelled atomic.Bool
}

func newSubscription[K comparable, E any](key K, handler Handler[E], config SubscriptionConfig[E]) *subscription[K, E] {
	return &subscription[K, E]{
		id:      uuid.NewString(),
		key:     key,
		handler: handler,
		config:  config,
	}
}

// ID returns the unique subscription identifier.
func (s *subscription[K, E]) ID() string {
	return s.id
}

// IsActive returns true until the subscription is unsubscribed.
func (s *subscription[K, E]) IsActive() bool {
	return !s.cancelled.Load()
}

// keyString renders the subscription key for diagnostics.
func (s *subscription[K, E]) keyString() string {
	if str, ok := any(s.key).(fmt.Stringer); ok {
		return str.String()
	}
	return fmt.Sprintf("%v", s.key)
}
