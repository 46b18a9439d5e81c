// Package metrics exports orchestration activity as Prometheus metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	apperrors "github.com/agbru/sampler/internal/errors"
	"github.com/agbru/sampler/internal/orchestration"
)

// Namespace prefixes every metric name.
const Namespace = "sampler"

// Outcome label values.
const (
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	OutcomeCanceled = "canceled"
)

// Collector records operation lifecycle events as Prometheus metrics. It
// implements orchestration.Observer and is safe for concurrent use.
//
// Operation labels are not used as metric labels: they embed URLs and would
// make series cardinality unbounded.
type Collector struct {
	inFlight prometheus.Gauge
	total    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

var _ orchestration.Observer = (*Collector)(nil)

// NewCollector creates the metrics and registers them with reg.
//
// Parameters:
//   - reg: The registerer receiving the metrics, typically a per-server
//     *prometheus.Registry.
//
// Returns:
//   - *Collector: The collector.
//   - error: An error if any metric is already registered with reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "operations_in_flight",
			Help:      "Number of remote operations currently running.",
		}),
		total: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "operations_total",
			Help:      "Completed remote operations by outcome and failure kind (\"none\" unless failed).",
		}, []string{"outcome", "kind"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "operation_duration_seconds",
			Help:      "Duration of remote operations.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12),
		}, []string{"outcome"}),
	}
	for _, m := range []prometheus.Collector{c.inFlight, c.total, c.duration} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// OperationStarted increments the in-flight gauge.
func (c *Collector) OperationStarted(string) {
	c.inFlight.Inc()
}

// OperationSucceeded records a successful completion.
func (c *Collector) OperationSucceeded(_ string, elapsed time.Duration) {
	c.inFlight.Dec()
	c.total.WithLabelValues(OutcomeSuccess, "none").Inc()
	c.duration.WithLabelValues(OutcomeSuccess).Observe(elapsed.Seconds())
}

// OperationFailed records a failed completion under its failure kind.
func (c *Collector) OperationFailed(_ string, kind apperrors.FailureKind, elapsed time.Duration) {
	c.inFlight.Dec()
	c.total.WithLabelValues(OutcomeFailure, kind.String()).Inc()
	c.duration.WithLabelValues(OutcomeFailure).Observe(elapsed.Seconds())
}

// OperationCanceled records a run aborted by a sibling's failure. It is not
// counted as a failure.
func (c *Collector) OperationCanceled(_ string, elapsed time.Duration) {
	c.inFlight.Dec()
	c.total.WithLabelValues(OutcomeCanceled, "none").Inc()
	c.duration.WithLabelValues(OutcomeCanceled).Observe(elapsed.Seconds())
}
