package orchestration

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/sampler/internal/errors"
	"github.com/agbru/sampler/internal/logging"
)

const tracerName = "github.com/agbru/sampler/internal/orchestration"

// Orchestrator carries the injected side channels used while invoking
// operations. It holds no per-call state and is safe for concurrent use.
type Orchestrator struct {
	logger   logging.Logger
	observer Observer
	tracer   trace.Tracer
}

// Option configures an Orchestrator during construction.
type Option func(*Orchestrator)

// WithLogger sets the logger used for operation diagnostics.
func WithLogger(l logging.Logger) Option {
	return func(o *Orchestrator) { o.logger = l }
}

// WithObserver sets the lifecycle observer.
func WithObserver(obs Observer) Option {
	return func(o *Orchestrator) { o.observer = obs }
}

// WithTracer sets the tracer used to open one span per invocation.
func WithTracer(t trace.Tracer) Option {
	return func(o *Orchestrator) { o.tracer = t }
}

// New creates an Orchestrator. Without options it logs nothing, observes
// nothing and uses the global OpenTelemetry tracer (a no-op unless an SDK is
// installed).
func New(opts ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = logging.NewNop()
	}
	if o.observer == nil {
		o.observer = NullObserver{}
	}
	if o.tracer == nil {
		o.tracer = otel.Tracer(tracerName)
	}
	return o
}

// Invoke executes a single operation.
//
// On success the result is returned unchanged. On failure the error is
// classified with Classify before it is returned, so callers only ever see
// a *apperrors.NormalizedError.
//
// Parameters:
//   - ctx: The context passed to the operation.
//   - o: The orchestrator supplying the logger, observer and tracer.
//   - op: The operation to run.
//
// Returns:
//   - T: The operation result, or the zero value on failure.
//   - error: nil, or a *apperrors.NormalizedError.
func Invoke[T any](ctx context.Context, o *Orchestrator, op Operation[T]) (T, error) {
	return invoke(ctx, o, op, nil)
}

// invoke runs op. When aborted is non-nil and reports true for a
// context.Canceled failure, the run was cut short by the enclosing join and
// is reported to the observer as canceled instead of failed.
func invoke[T any](ctx context.Context, o *Orchestrator, op Operation[T], aborted func() bool) (T, error) {
	ctx, span := o.tracer.Start(ctx, "orchestration.Invoke",
		trace.WithAttributes(attribute.String("operation.label", op.Label)))
	defer span.End()

	o.observer.OperationStarted(op.Label)
	o.logger.Debug("operation started", logging.String("label", op.Label))

	start := time.Now()
	result, err := call(ctx, op)
	elapsed := time.Since(start)

	if err != nil {
		norm := Classify(op.Label, err)
		if aborted != nil && errors.Is(err, context.Canceled) && aborted() {
			span.SetStatus(codes.Unset, "canceled by sibling failure")
			o.observer.OperationCanceled(op.Label, elapsed)
			o.logger.Debug("operation canceled",
				logging.String("label", op.Label),
				logging.Duration("elapsed", elapsed))
			var zero T
			return zero, norm
		}
		span.RecordError(norm)
		span.SetStatus(codes.Error, norm.Kind.String())
		o.observer.OperationFailed(op.Label, norm.Kind, elapsed)
		o.logger.Error("operation failed", norm,
			logging.String("label", op.Label),
			logging.String("kind", norm.Kind.String()),
			logging.Duration("elapsed", elapsed))
		var zero T
		return zero, norm
	}

	o.observer.OperationSucceeded(op.Label, elapsed)
	o.logger.Debug("operation succeeded",
		logging.String("label", op.Label),
		logging.Duration("elapsed", elapsed))
	return result, nil
}

// call runs op.Call, turning a missing call or a panic into an error so that
// nothing unclassified escapes Invoke.
func call[T any](ctx context.Context, op Operation[T]) (result T, err error) {
	if op.Call == nil {
		return result, fmt.Errorf("operation %q has no call", op.Label)
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("operation panicked: %v", r)
		}
	}()
	return op.Call(ctx)
}

// indexedFailure remembers which input position produced an errgroup error.
type indexedFailure struct {
	index int
	err   error
}

func (f indexedFailure) Error() string { return f.err.Error() }

// InvokeAll launches every operation concurrently and waits for all of them.
//
// Results are returned in input order regardless of completion order. The
// join is all-or-nothing: the first failure cancels the shared context, the
// remaining operations are awaited so no goroutine outlives the call, and
// the call fails with a *apperrors.AggregateError wrapping that first
// failure. Partial results are discarded. Operations cut short by that
// cancellation are reported to the observer through OperationCanceled, so
// only the real failure counts as one.
//
// An empty input returns an empty slice and no error.
func InvokeAll[T any](ctx context.Context, o *Orchestrator, ops []Operation[T]) ([]T, error) {
	results := make([]T, len(ops))
	if len(ops) == 0 {
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	aborted := func() bool { return gctx.Err() != nil && ctx.Err() == nil }
	for i, op := range ops {
		i := i
		op := op
		g.Go(func() error {
			res, err := invoke(gctx, o, op, aborted)
			if err != nil {
				return indexedFailure{index: i, err: err}
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		failure := err.(indexedFailure)
		o.logger.Debug("concurrent join failed",
			logging.Int("index", failure.index),
			logging.Int("total", len(ops)))
		return nil, &apperrors.AggregateError{Index: failure.index, Total: len(ops), Err: failure.err}
	}
	return results, nil
}

// InvokeSequentially runs operations one at a time, strictly in input order.
// Each operation starts only after the previous one has completed. The first
// failure stops the run: later operations are never started and the call
// fails with a *apperrors.SequenceError. Partial results are discarded.
//
// An empty input returns an empty slice and no error.
func InvokeSequentially[T any](ctx context.Context, o *Orchestrator, ops []Operation[T]) ([]T, error) {
	results := make([]T, 0, len(ops))
	for i, op := range ops {
		if err := ctx.Err(); err != nil {
			return nil, &apperrors.SequenceError{Step: i + 1, Total: len(ops), Err: Classify(op.Label, err)}
		}
		res, err := Invoke(ctx, o, op)
		if err != nil {
			return nil, &apperrors.SequenceError{Step: i + 1, Total: len(ops), Err: err}
		}
		results = append(results, res)
	}
	return results, nil
}
