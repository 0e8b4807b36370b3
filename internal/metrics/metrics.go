// Package metrics records hotkey engine activity as Prometheus metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Config configures the recorder.
type Config struct {
	// Namespace is the metrics namespace (default: "hotkeys").
	Namespace string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the recorder.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "hotkeys",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Recorder implements the hotkey engine's Recorder interface.
type Recorder struct {
	matches       *prometheus.CounterVec
	unobserved    *prometheus.CounterVec
	deliveries    *prometheus.CounterVec
	scopeMisses   *prometheus.CounterVec
	bindings      *prometheus.GaugeVec
	handlerPanics prometheus.Counter
}

// New registers the metrics and returns a recorder.
// Registering twice on the same registry panics, as with promauto.
func New(opts ...Option) *Recorder {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Recorder{
		matches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "matches_total",
			Help:        "Key transitions that produced a hotkey match",
			ConstLabels: config.ConstLabels,
		}, []string{"hotkey"}),

		unobserved: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "unobserved_matches_total",
			Help:        "Combinations that matched a hotkey with no listeners",
			ConstLabels: config.ConstLabels,
		}, []string{"hotkey"}),

		deliveries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "deliveries_total",
			Help:        "Listener callbacks invoked",
			ConstLabels: config.ConstLabels,
		}, []string{"hotkey"}),

		scopeMisses: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "scope_misses_total",
			Help:        "Listeners skipped because their scope was not on the event path",
			ConstLabels: config.ConstLabels,
		}, []string{"hotkey"}),

		bindings: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Name:        "active_bindings",
			Help:        "Active listeners per hotkey",
			ConstLabels: config.ConstLabels,
		}, []string{"hotkey"}),

		handlerPanics: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "handler_panics_total",
			Help:        "Listener callbacks that panicked",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// Matched counts a match.
func (r *Recorder) Matched(name string) {
	r.matches.WithLabelValues(name).Inc()
}

// Unobserved counts a match without listeners.
func (r *Recorder) Unobserved(name string) {
	r.unobserved.WithLabelValues(name).Inc()
}

// Delivered counts a listener invocation.
func (r *Recorder) Delivered(name string) {
	r.deliveries.WithLabelValues(name).Inc()
}

// ScopeMiss counts a listener skipped by scope.
func (r *Recorder) ScopeMiss(name string) {
	r.scopeMisses.WithLabelValues(name).Inc()
}

// Bindings sets the active listener gauge.
func (r *Recorder) Bindings(name string, n int) {
	r.bindings.WithLabelValues(name).Set(float64(n))
}

// HandlerPanic counts a panicking listener.
func (r *Recorder) HandlerPanic() {
	r.handlerPanics.Inc()
}

// Handler returns an HTTP handler exposing the metrics in g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
