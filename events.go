package singleton

import "reflect"

// Observer receives registry lifecycle events. Implementations must be safe
// for concurrent use when accessors are called from multiple goroutines.
type Observer interface {
	On(eventData EventData)
}

// Event represents a registry event type.
type Event int

const (
	// EventHit is emitted when an accessor returns an already stored instance.
	EventHit Event = iota
	// EventConstruct is emitted when an accessor invokes the constructor.
	EventConstruct
	// EventDedup is emitted when a concurrent caller shares an in-flight
	// construction instead of starting a new one.
	EventDedup
	// EventFailure is emitted when the constructor returns an error.
	EventFailure
)

func (e Event) String() string {
	switch e {
	case EventHit:
		return "hit"
	case EventConstruct:
		return "construct"
	case EventDedup:
		return "dedup"
	case EventFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// EventData carries the details of a registry event.
type EventData struct {
	Event Event
	Type  reflect.Type
	Name  string
	// Err is set for EventFailure.
	Err error
}
