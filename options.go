package singleton

// Option configures a Registry created by NewRegistry.
type Option func(*Registry)

// WithObserver attaches an Observer that receives hit, construct, dedup and
// failure events for every accessor bound to the registry.
func WithObserver(o Observer) Option {
	return func(r *Registry) {
		r.observer = o
	}
}

// AccessorOption configures an accessor created by New, Must or Of.
type AccessorOption func(*accessorConfig)

type accessorConfig struct {
	registry *Registry
	name     string
}

// WithRegistry binds the accessor to r instead of the process-wide Default
// registry.
func WithRegistry(r *Registry) AccessorOption {
	return func(c *accessorConfig) {
		c.registry = r
	}
}

// WithName qualifies the accessor's key so the same type can hold several
// independent singletons.
func WithName(name string) AccessorOption {
	return func(c *accessorConfig) {
		c.name = name
	}
}

func newAccessorConfig(opts []AccessorOption) accessorConfig {
	var c accessorConfig
	for _, opt := range opts {
		opt(&c)
	}
	if c.registry == nil {
		c.registry = Default()
	}
	return c
}
