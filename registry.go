package singleton

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Registry holds at most one instance per key. Instances are stored on the
// first successful construction and never removed.
type Registry struct {
	group    singleflight.Group
	mu       sync.RWMutex
	store    map[slotKey]any
	flights  map[slotKey]string
	nextID   uint64
	observer Observer
}

// Entry describes one stored instance in a Registry snapshot.
type Entry struct {
	Type reflect.Type
	Name string
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the process-wide registry used by accessors created
// without WithRegistry. It is created on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry returns an empty, isolated registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		store:   make(map[slotKey]any),
		flights: make(map[slotKey]string),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Len returns the number of stored instances.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.store)
}

// Entries returns a snapshot of the stored keys. Order is unspecified.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := make([]Entry, 0, len(r.store))
	for k := range r.store {
		entries = append(entries, Entry{Type: k.typ, Name: k.name})
	}
	return entries
}

// Lookup returns the instance stored under T and name without constructing
// one. The second result is false if no instance has been stored yet.
func Lookup[T any](r *Registry, name string) (T, bool) {
	r.mu.RLock()
	v, ok := r.store[NewKey[T](name).slot()]
	r.mu.RUnlock()
	if !ok {
		var zero T
		return zero, false
	}
	t, _ := v.(T)
	return t, true
}

// load returns the instance for key, calling ctor at most once per
// successful initialisation. Concurrent first callers share one flight.
// Errors and panics are not stored, so a later call retries. A panic in
// ctor is re-raised with its original value in every caller of the flight.
func load[T any](r *Registry, key Key[T], ctor func() (T, error)) (T, error) {
	sk := key.slot()

	// Fast path: already stored.
	r.mu.RLock()
	v, ok := r.store[sk]
	r.mu.RUnlock()
	if ok {
		r.emit(EventHit, sk, nil)
		t, _ := v.(T)
		return t, nil
	}

	// Slow path: coalesce concurrent constructions.
	led := false
	val, err, _ := r.group.Do(r.flightKey(sk), func() (any, error) {
		led = true

		// Double-check: a previous flight may have stored while we waited.
		r.mu.RLock()
		v, ok := r.store[sk]
		r.mu.RUnlock()
		if ok {
			r.emit(EventHit, sk, nil)
			return v, nil
		}

		r.emit(EventConstruct, sk, nil)
		inst, err := construct(ctor)
		var p *constructorPanic
		if errors.As(err, &p) {
			r.emit(EventFailure, sk, err)
			return nil, err
		}
		if err != nil {
			r.emit(EventFailure, sk, err)
			return nil, &ConstructionError{Type: sk.typ, Name: sk.name, Err: err}
		}

		r.mu.Lock()
		r.store[sk] = inst
		r.mu.Unlock()
		return inst, nil
	})
	if !led {
		r.emit(EventDedup, sk, err)
	}

	var p *constructorPanic
	if errors.As(err, &p) {
		panic(p.value)
	}

	if err != nil {
		var zero T
		return zero, err
	}
	t, _ := val.(T)
	return t, nil
}

// constructorPanic carries a recovered constructor panic out of the flight,
// so singleflight does not wrap it.
type constructorPanic struct {
	value any
}

func (p *constructorPanic) Error() string {
	return fmt.Sprintf("singleton: constructor panicked: %v", p.value)
}

func construct[T any](ctor func() (T, error)) (inst T, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = &constructorPanic{value: v}
		}
	}()
	return ctor()
}

// flightKey maps a slot to a process-unique singleflight key. Type names are
// not unique across packages, so each slot gets its own id.
func (r *Registry) flightKey(sk slotKey) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.flights[sk]
	if !ok {
		r.nextID++
		id = strconv.FormatUint(r.nextID, 10)
		r.flights[sk] = id
	}
	return id
}

func (r *Registry) emit(event Event, sk slotKey, err error) {
	if r.observer == nil {
		return
	}
	r.observer.On(EventData{
		Event: event,
		Type:  sk.typ,
		Name:  sk.name,
		Err:   err,
	})
}
