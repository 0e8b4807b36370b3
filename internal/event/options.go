package event

// BusOption configures a Bus.
type BusOption func(*busConfig)

// busConfig contains configuration for the event bus.
type busConfig struct {
	// panicHandler is called when a handler panics.
	panicHandler PanicHandler
}

// defaultBusConfig returns the default configuration.
func defaultBusConfig() busConfig {
	return busConfig{
		panicHandler: DefaultPanicHandler,
	}
}

// WithPanicHandler sets the panic handler for the bus.
func WithPanicHandler(h PanicHandler) BusOption {
	return func(c *busConfig) {
		if h != nil {
			c.panicHandler = h
		}
	}
}
