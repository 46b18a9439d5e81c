package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	apperrors "github.com/agbru/sampler/internal/errors"
	"github.com/agbru/sampler/internal/orchestration"
)

func scrape(t *testing.T, reg *prometheus.Registry) string {
	t.Helper()
	rec := httptest.NewRecorder()
	promhttp.HandlerFor(reg, promhttp.HandlerOpts{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
	return rec.Body.String()
}

func TestNewCollector(t *testing.T) {
	t.Parallel()

	t.Run("Registers on a fresh registry", func(t *testing.T) {
		t.Parallel()
		if _, err := NewCollector(prometheus.NewRegistry()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Duplicate registration fails", func(t *testing.T) {
		t.Parallel()
		reg := prometheus.NewRegistry()
		if _, err := NewCollector(reg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := NewCollector(reg); err == nil {
			t.Error("expected an error for duplicate registration")
		}
	})
}

func TestCollector_RecordsOutcomes(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	if err != nil {
		t.Fatalf("NewCollector: %v", err)
	}

	c.OperationStarted("a")
	c.OperationSucceeded("a", 10*time.Millisecond)
	c.OperationStarted("b")
	c.OperationFailed("b", apperrors.KindTimeout, time.Second)
	c.OperationStarted("c")

	body := scrape(t, reg)
	for _, want := range []string{
		`sampler_operations_total{kind="none",outcome="success"} 1`,
		`sampler_operations_total{kind="timeout",outcome="failure"} 1`,
		`sampler_operations_in_flight 1`,
		`sampler_operation_duration_seconds_count{outcome="failure"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output should contain %q\n%s", want, body)
		}
	}
}

func TestCollector_AsOrchestrationObserver(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	if err != nil {
		t.Fatalf("NewCollector: %v", err)
	}
	o := orchestration.New(orchestration.WithObserver(c))

	ops := []orchestration.Operation[int]{
		orchestration.NewOperation("one", func(context.Context) (int, error) { return 1, nil }),
		orchestration.NewOperation("two", func(context.Context) (int, error) { return 0, errors.New("boom") }),
	}
	if _, err := orchestration.InvokeSequentially(context.Background(), o, ops); err == nil {
		t.Fatal("expected the second step to fail")
	}

	body := scrape(t, reg)
	if !strings.Contains(body, `sampler_operations_total{kind="unknown",outcome="failure"} 1`) {
		t.Errorf("expected one unknown failure\n%s", body)
	}
	if !strings.Contains(body, `sampler_operations_in_flight 0`) {
		t.Errorf("in-flight gauge should return to zero\n%s", body)
	}
}

func TestCollector_FanOutCountsOneFailure(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	if err != nil {
		t.Fatalf("NewCollector: %v", err)
	}
	o := orchestration.New(orchestration.WithObserver(c))

	slow := func(label string) orchestration.Operation[int] {
		return orchestration.NewOperation(label, func(ctx context.Context) (int, error) {
			select {
			case <-ctx.Done():
				return 0, ctx.Err()
			case <-time.After(5 * time.Second):
				return 1, nil
			}
		})
	}
	ops := []orchestration.Operation[int]{
		slow("slow1"),
		slow("slow2"),
		orchestration.NewOperation("bad", func(context.Context) (int, error) { return 0, errors.New("boom") }),
	}
	if _, err := orchestration.InvokeAll(context.Background(), o, ops); err == nil {
		t.Fatal("expected the fan-out to fail")
	}

	body := scrape(t, reg)
	for _, want := range []string{
		`sampler_operations_total{kind="unknown",outcome="failure"} 1`,
		`sampler_operations_total{kind="none",outcome="canceled"} 2`,
		`sampler_operations_in_flight 0`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output should contain %q\n%s", want, body)
		}
	}
}
