package orchestration

import "context"

// Operation is a lazy, parameterless unit of remote work. Nothing happens
// until the orchestrator calls it, so a slice of Operations is an ordered
// list of thunks.
type Operation[T any] struct {
	// Label is the human context used to prefix failures, for example
	// "data from https://example.com" or "weather data".
	Label string
	// Call performs the work. It should honor ctx for cancellation.
	Call func(ctx context.Context) (T, error)
}

// NewOperation builds an Operation from a label and a call.
func NewOperation[T any](label string, call func(ctx context.Context) (T, error)) Operation[T] {
	return Operation[T]{Label: label, Call: call}
}
