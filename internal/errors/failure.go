package apperrors

import "fmt"

// FailureKind is the closed set of categories a remote operation failure is
// classified into.
type FailureKind int

const (
	// KindUnknown covers failures with no better classification.
	KindUnknown FailureKind = iota
	// KindTimeout means the call exceeded its configured time bound.
	KindTimeout
	// KindRemoteStatus means the call completed with a non-success status.
	KindRemoteStatus
	// KindTransport means the call failed below the application layer
	// (DNS, connection refused, TLS, broken body).
	KindTransport
)

// String returns the lowercase name of the kind, suitable for log fields
// and metric labels.
func (k FailureKind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindRemoteStatus:
		return "remote_status"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// Detail phrases used when a failure carries no better message.
const (
	TimeoutDetail = "request timeout - server took too long to respond"
	UnknownDetail = "unknown error occurred"
)

// StatusCoder is implemented by errors that carry a remote status code.
type StatusCoder interface {
	error
	Status() int
	// RemoteMessage returns the message reported by the remote side, or ""
	// when none was provided.
	RemoteMessage() string
}

// NormalizedError is the single error shape that leaves the orchestration
// layer. Its message always starts with the operation label.
type NormalizedError struct {
	// Kind is the failure classification.
	Kind FailureKind
	// Label identifies the operation, e.g. "data from https://example.com".
	Label string
	// Detail is the human-readable failure description.
	Detail string
	// StatusCode is set for KindRemoteStatus only.
	StatusCode int
	// Cause is the original failure.
	Cause error
}

// Error returns "failed to fetch <label>: <detail>".
func (e *NormalizedError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %s", e.Label, e.Detail)
}

// Unwrap returns the original failure.
func (e *NormalizedError) Unwrap() error { return e.Cause }

// AggregateError reports the first failure of a concurrent join.
type AggregateError struct {
	// Index is the input position of the failed operation.
	Index int
	// Total is the number of operations in the join.
	Total int
	// Err is the failure of the operation at Index.
	Err error
}

func (e *AggregateError) Error() string {
	return "failed to fetch multiple targets: " + e.Err.Error()
}

func (e *AggregateError) Unwrap() error { return e.Err }

// SequenceError reports the step at which a sequential run stopped.
type SequenceError struct {
	// Step is the 1-based position of the failed operation.
	Step int
	// Total is the number of operations in the run.
	Total int
	// Err is the failure of the operation at Step.
	Err error
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("sequential step %d/%d: %v", e.Step, e.Total, e.Err)
}

func (e *SequenceError) Unwrap() error { return e.Err }
