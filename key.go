package singleton

import (
	"fmt"
	"reflect"
)

// Key identifies a singleton slot: the identity of type T plus an optional
// name. Two keys for the same T and name refer to the same instance within
// a Registry.
type Key[T any] struct {
	name string
}

// NewKey creates a key for T qualified by name. The empty name is the
// default slot used by accessors created without WithName.
func NewKey[T any](name string) Key[T] {
	return Key[T]{name: name}
}

// Name returns the name qualifier of the key.
func (k Key[T]) Name() string { return k.name }

// Type returns the reflect.Type identity of T. Interface types are reported
// as themselves rather than as the dynamic type of a zero value.
func (k Key[T]) Type() reflect.Type {
	return reflect.TypeFor[T]()
}

func (k Key[T]) String() string {
	if k.name == "" {
		return k.Type().String()
	}
	return fmt.Sprintf("%s:%s", k.Type(), k.name)
}

func (k Key[T]) slot() slotKey {
	return slotKey{typ: k.Type(), name: k.name}
}

// slotKey is the untyped map key the registry stores instances under.
type slotKey struct {
	typ  reflect.Type
	name string
}
