package singleton

// New returns an accessor for the single instance of T built by ctor.
//
// Nothing is constructed until the accessor is first called. The first
// successful call stores the instance in the accessor's registry under T
// (and the WithName qualifier, if any); every later call returns that same
// instance without calling ctor again. If ctor returns an error the accessor
// returns a *ConstructionError wrapping it and stores nothing, so the next
// call retries. Concurrent first calls share a single invocation of ctor,
// and callers waiting on a failed invocation receive the same error.
//
// A panic in ctor is re-raised with its original value in the caller and in
// every caller waiting on the same construction; nothing is stored.
//
// As with sync.Once, ctor must not call its own accessor (or any accessor
// for the same type, name and registry): the call waits on its own
// construction and deadlocks.
//
// Accessors for the same T and name bound to the same registry share one
// instance, whichever constructor reaches the registry first.
func New[T any](ctor func() (T, error), opts ...AccessorOption) func() (T, error) {
	if ctor == nil {
		panic("singleton: nil constructor")
	}
	cfg := newAccessorConfig(opts)
	key := NewKey[T](cfg.name)
	return func() (T, error) {
		return load(cfg.registry, key, ctor)
	}
}

// Must is New for constructors that cannot return an error. A panic in ctor
// propagates to the caller with its original value and nothing is stored.
//
// Must can still observe an error when it waits on a failing construction
// started by a New accessor sharing its slot. It then retries with its own
// ctor, so it never returns a zero value in place of an instance.
func Must[T any](ctor func() T, opts ...AccessorOption) func() T {
	if ctor == nil {
		panic("singleton: nil constructor")
	}
	get := New(func() (T, error) { return ctor(), nil }, opts...)
	return func() T {
		for {
			v, err := get()
			if err == nil {
				return v
			}
		}
	}
}

// Of returns an accessor for a single zero-valued *T. It shares its slot
// with any Must or New accessor of *T bound to the same registry and name.
func Of[T any](opts ...AccessorOption) func() *T {
	return Must(func() *T { return new(T) }, opts...)
}
