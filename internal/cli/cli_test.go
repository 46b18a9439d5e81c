package cli

import (
	"bytes"
	"errors"
	"math/big"
	"strings"
	"sync"
	"testing"
	"time"

	apperrors "github.com/agbru/sampler/internal/errors"
	"github.com/agbru/sampler/internal/ui"
)

// MockSpinner records calls for assertions.
type MockSpinner struct {
	mu     sync.Mutex
	starts int
	stops  int
	suffix string
}

func (m *MockSpinner) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.starts++
}

func (m *MockSpinner) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stops++
}

func (m *MockSpinner) UpdateSuffix(suffix string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.suffix = suffix
}

func TestSpinnerObserver(t *testing.T) {
	t.Parallel()

	t.Run("Starts once and stops when idle", func(t *testing.T) {
		t.Parallel()
		sp := &MockSpinner{}
		obs := newSpinnerObserver(sp, 2)

		obs.OperationStarted("a")
		obs.OperationStarted("b")
		if sp.starts != 1 {
			t.Errorf("expected 1 start, got %d", sp.starts)
		}
		obs.OperationSucceeded("a", time.Millisecond)
		if sp.stops != 0 {
			t.Error("spinner should keep running while an operation is in flight")
		}
		obs.OperationFailed("b", apperrors.KindTimeout, time.Millisecond)
		if sp.stops != 1 {
			t.Errorf("expected 1 stop, got %d", sp.stops)
		}
		if !strings.Contains(sp.suffix, "2/2") {
			t.Errorf("suffix should show completion, got %q", sp.suffix)
		}
		finished, failed := obs.Counts()
		if finished != 2 || failed != 1 {
			t.Errorf("expected 2 finished and 1 failed, got %d and %d", finished, failed)
		}
	})

	t.Run("Canceled operations are not failures", func(t *testing.T) {
		t.Parallel()
		sp := &MockSpinner{}
		obs := newSpinnerObserver(sp, 2)
		obs.OperationStarted("a")
		obs.OperationStarted("b")
		obs.OperationFailed("a", apperrors.KindRemoteStatus, time.Millisecond)
		obs.OperationCanceled("b", time.Millisecond)

		finished, failed := obs.Counts()
		if finished != 2 || failed != 1 {
			t.Errorf("expected 2 finished and 1 failed, got %d and %d", finished, failed)
		}
		if sp.stops != 1 {
			t.Errorf("expected 1 stop, got %d", sp.stops)
		}
	})

	t.Run("Stop is idempotent", func(t *testing.T) {
		t.Parallel()
		sp := &MockSpinner{}
		obs := newSpinnerObserver(sp, 1)
		obs.OperationStarted("a")
		obs.Stop()
		obs.Stop()
		if sp.stops != 1 {
			t.Errorf("expected 1 stop, got %d", sp.stops)
		}
	})

	t.Run("Concurrent events are safe", func(t *testing.T) {
		t.Parallel()
		sp := &MockSpinner{}
		obs := newSpinnerObserver(sp, 50)
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				obs.OperationStarted("x")
				obs.OperationSucceeded("x", 0)
			}()
		}
		wg.Wait()
		finished, _ := obs.Counts()
		if finished != 50 {
			t.Errorf("expected 50 finished, got %d", finished)
		}
	})
}

func TestIsTerminal_NonFile(t *testing.T) {
	t.Parallel()
	if IsTerminal(&bytes.Buffer{}) {
		t.Error("a buffer is never a terminal")
	}
}

// The display tests share the package-level theme and run sequentially.

func TestDisplayFibResult(t *testing.T) {
	defer ui.SetCurrentTheme(ui.GetCurrentTheme())
	ui.SetCurrentTheme(ui.NoColorTheme)

	tests := []struct {
		name     string
		value    *big.Int
		quiet    bool
		contains []string
		excludes []string
	}{
		{
			name:     "Grouped digits",
			value:    big.NewInt(12345),
			contains: []string{"F(10) = 12,345", "Computed in"},
		},
		{
			name:     "Truncated output",
			value:    new(big.Int).Exp(big.NewInt(10), big.NewInt(200), nil),
			contains: []string{"...", "(truncated, 201 digits"},
		},
		{
			name:     "Quiet prints only the value",
			value:    big.NewInt(12345),
			quiet:    true,
			contains: []string{"12345\n"},
			excludes: []string{"F(", "Computed"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			DisplayFibResult(&buf, 10, tt.value, time.Millisecond, tt.quiet)
			out := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("expected output to contain %q, got %q", want, out)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(out, bad) {
					t.Errorf("expected output not to contain %q, got %q", bad, out)
				}
			}
		})
	}
}

func TestDisplayFailure(t *testing.T) {
	defer ui.SetCurrentTheme(ui.GetCurrentTheme())
	ui.SetCurrentTheme(ui.NoColorTheme)

	var buf bytes.Buffer
	DisplayFailure(&buf, &apperrors.NormalizedError{Kind: apperrors.KindTimeout, Label: "weather data", Detail: apperrors.TimeoutDetail})
	if got, want := buf.String(), "✗ failed to fetch weather data: "+apperrors.TimeoutDetail+" [timeout]\n"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	buf.Reset()
	DisplayFailure(&buf, errors.New("plain"))
	if buf.String() != "✗ plain\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestDisplayFetchResults(t *testing.T) {
	defer ui.SetCurrentTheme(ui.GetCurrentTheme())
	ui.SetCurrentTheme(ui.NoColorTheme)

	var buf bytes.Buffer
	DisplayFetchResults(&buf,
		[]string{"https://a", "https://b", "https://c"},
		[]any{map[string]any{"id": 1}, map[string]any{"title": strings.Repeat("x", 200)}, []any{1, 2}},
		1500*time.Millisecond)
	out := buf.String()
	for _, want := range []string{"https://a\n  {\"id\":1}", "https://b", "...", "https://c\n  [1,2]", "3 target(s) in 1.5s"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got %q", want, out)
		}
	}
}

func TestFormatPreview(t *testing.T) {
	t.Parallel()
	if got := FormatPreview(map[string]any{"a": 1}); got != `{"a":1}` {
		t.Errorf("unexpected preview %q", got)
	}
	long := FormatPreview(strings.Repeat("y", 500))
	if len(long) != PreviewLimit+3 {
		t.Errorf("expected preview of %d chars, got %d", PreviewLimit+3, len(long))
	}
}
