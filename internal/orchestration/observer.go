//go:generate mockgen -source=observer.go -destination=mocks/mock_observer.go -package=mocks

package orchestration

import (
	"time"

	apperrors "github.com/agbru/sampler/internal/errors"
)

// Observer receives lifecycle notifications for every invoked operation.
// It is the observability side channel of the orchestrator: metrics, spinners
// and audit trails plug in here, and the orchestrator's results never depend
// on it.
//
// Implementations must be safe for concurrent use, since InvokeAll notifies
// from several goroutines.
type Observer interface {
	// OperationStarted is called right before the operation runs.
	OperationStarted(label string)
	// OperationSucceeded is called after a successful run.
	OperationSucceeded(label string, elapsed time.Duration)
	// OperationFailed is called after a failed run, with the classified kind.
	OperationFailed(label string, kind apperrors.FailureKind, elapsed time.Duration)
	// OperationCanceled is called instead of OperationFailed when a sibling's
	// failure aborted the run inside InvokeAll.
	OperationCanceled(label string, elapsed time.Duration)
}

// NullObserver is a no-op implementation of Observer.
type NullObserver struct{}

func (NullObserver) OperationStarted(string) {}
func (NullObserver) OperationSucceeded(string, time.Duration) {}
func (NullObserver) OperationFailed(string, apperrors.FailureKind, time.Duration) {}
func (NullObserver) OperationCanceled(string, time.Duration) {}

// MultiObserver fans notifications out to several observers in order.
type MultiObserver []Observer

// OperationStarted notifies every observer.
func (m MultiObserver) OperationStarted(label string) {
	for _, o := range m {
		o.OperationStarted(label)
	}
}

// OperationSucceeded notifies every observer.
func (m MultiObserver) OperationSucceeded(label string, elapsed time.Duration) {
	for _, o := range m {
		o.OperationSucceeded(label, elapsed)
	}
}

// OperationFailed notifies every observer.
func (m MultiObserver) OperationFailed(label string, kind apperrors.FailureKind, elapsed time.Duration) {
	for _, o := range m {
		o.OperationFailed(label, kind, elapsed)
	}
}

// OperationCanceled notifies every observer.
func (m MultiObserver) OperationCanceled(label string, elapsed time.Duration) {
	for _, o := range m {
		o.OperationCanceled(label, elapsed)
	}
}
