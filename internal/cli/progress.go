package cli

import (
	"io"
	"sync"
	"time"

	apperrors "github.com/agbru/sampler/internal/errors"
	"github.com/agbru/sampler/internal/format"
	"github.com/agbru/sampler/internal/orchestration"
)

// SpinnerObserver shows a spinner with a completion bar while operations
// run. The spinner starts with the first operation and stops when none are
// in flight. It is safe for concurrent use.
type SpinnerObserver struct {
	mu       sync.Mutex
	spinner  Spinner
	total    int
	finished int
	failed   int
	running  int
	active   bool
}

var _ orchestration.Observer = (*SpinnerObserver)(nil)

// NewSpinnerObserver creates an observer drawing on out for a batch of
// total operations.
func NewSpinnerObserver(out io.Writer, total int) *SpinnerObserver {
	return newSpinnerObserver(newSpinner(out), total)
}

func newSpinnerObserver(s Spinner, total int) *SpinnerObserver {
	return &SpinnerObserver{spinner: s, total: total}
}

// OperationStarted starts the spinner if it is idle.
func (o *SpinnerObserver) OperationStarted(string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.running++
	o.refresh()
	if !o.active {
		o.active = true
		o.spinner.Start()
	}
}

// OperationSucceeded advances the bar.
func (o *SpinnerObserver) OperationSucceeded(string, time.Duration) {
	o.complete(false)
}

// OperationFailed advances the bar and counts the failure.
func (o *SpinnerObserver) OperationFailed(string, apperrors.FailureKind, time.Duration) {
	o.complete(true)
}

// OperationCanceled advances the bar without counting a failure.
func (o *SpinnerObserver) OperationCanceled(string, time.Duration) {
	o.complete(false)
}

func (o *SpinnerObserver) complete(failed bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.running--
	o.finished++
	if failed {
		o.failed++
	}
	o.refresh()
	if o.running <= 0 {
		o.stopLocked()
	}
}

// Stop halts the spinner. It is safe to call more than once.
func (o *SpinnerObserver) Stop() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.stopLocked()
}

// Counts returns the finished and failed operation counts.
func (o *SpinnerObserver) Counts() (finished, failed int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.finished, o.failed
}

func (o *SpinnerObserver) stopLocked() {
	if o.active {
		o.active = false
		o.spinner.Stop()
	}
}

func (o *SpinnerObserver) refresh() {
	o.spinner.UpdateSuffix(" fetching " + format.ProgressBar(o.finished, o.total, ProgressBarWidth))
}
