package singleton

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrConstruction is matched by every error returned when a wrapped type's
// constructor fails.
var ErrConstruction = errors.New("singleton: construction failed")

// ConstructionError reports a failed first construction. The registry is
// left unpopulated, so the next accessor call retries.
type ConstructionError struct {
	Type reflect.Type
	Name string
	Err  error
}

func (e *ConstructionError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("singleton: construct %s: %v", e.Type, e.Err)
	}
	return fmt.Sprintf("singleton: construct %s (%s): %v", e.Type, e.Name, e.Err)
}

// Unwrap returns the constructor's error.
func (e *ConstructionError) Unwrap() error { return e.Err }

// Is reports whether target is ErrConstruction.
func (e *ConstructionError) Is(target error) bool {
	return target == ErrConstruction
}
