package app

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/agbru/sampler/internal/errors"
	"github.com/agbru/sampler/internal/fetch"
	"github.com/agbru/sampler/internal/logging"
)

type runResult struct {
	code   int
	out    string
	errOut string
}

// run executes the application with a private config file that sets max_n
// to 50, so the user's own config never leaks into tests.
func run(t *testing.T, opts []AppOption, args ...string) runResult {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("max_n: 50\n"), 0o600))

	var out, errOut bytes.Buffer
	a := New(&out, &errOut, append([]AppOption{WithLogger(logging.NewNop())}, opts...)...)
	code := a.Run(context.Background(), append(args, "--no-color", "--config", cfgPath))
	return runResult{code: code, out: out.String(), errOut: errOut.String()}
}

func TestFibCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantOut  string
		exact    bool
	}{
		{"Default output", []string{"fib", "10"}, apperrors.ExitSuccess, "F(10) = 55", false},
		{"Quiet prints the bare value", []string{"fib", "100", "-q"}, apperrors.ExitSuccess, "354224848179261915075\n", true},
		{"Sequence", []string{"fib", "10", "--sequence", "-q"}, apperrors.ExitSuccess, "0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55\n", true},
		{"Last digits keep leading zeros", []string{"fib", "100", "--last-digits", "3", "-q"}, apperrors.ExitSuccess, "075\n", true},
		{"Flag overrides file limit", []string{"fib", "60", "--sequence", "--max-n", "100"}, apperrors.ExitSuccess, "1548008755920", false},
		{"File limit applies", []string{"fib", "60", "--sequence"}, apperrors.ExitErrorConfig, "", false},
		{"Full value above the ceiling", []string{"fib", "10000001"}, apperrors.ExitErrorConfig, "", false},
		{"Last digits above the ceiling", []string{"fib", "10000001", "--last-digits", "2", "-q"}, apperrors.ExitSuccess, "01\n", true},
		{"Non-numeric index", []string{"fib", "abc"}, apperrors.ExitErrorConfig, "", false},
		{"Negative index", []string{"fib", "-5"}, apperrors.ExitErrorConfig, "", false},
		{"Conflicting flags", []string{"fib", "5", "--sequence", "--last-digits", "2"}, apperrors.ExitErrorConfig, "", false},
		{"Missing argument", []string{"fib"}, apperrors.ExitErrorGeneric, "", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := run(t, nil, tt.args...)
			assert.Equal(t, tt.wantCode, res.code, "stderr: %s", res.errOut)
			if tt.exact {
				assert.Equal(t, tt.wantOut, res.out)
			} else {
				assert.Contains(t, res.out, tt.wantOut)
			}
		})
	}
}

func TestFibCommand_ErrorMessages(t *testing.T) {
	t.Parallel()

	res := run(t, nil, "fib", "abc")
	assert.Contains(t, res.errOut, invalidIndexMessage)

	res = run(t, nil, "fib", "60", "--sequence")
	assert.Contains(t, res.errOut, "Please enter a number no greater than 50.")

	res = run(t, nil, "fib", "10000001")
	assert.Contains(t, res.errOut, "Please enter a number no greater than 10000000, or use --last-digits.")
}

func TestUnknownFlagIsConfigError(t *testing.T) {
	t.Parallel()
	res := run(t, nil, "fib", "10", "--bogus")
	assert.Equal(t, apperrors.ExitErrorConfig, res.code)
	assert.Contains(t, res.errOut, "unknown flag")
}

func TestInvalidConfigValue(t *testing.T) {
	t.Parallel()
	res := run(t, nil, "fib", "10", "--timeout", "-1s")
	assert.Equal(t, apperrors.ExitErrorConfig, res.code)
	assert.Contains(t, res.errOut, "timeout must be strictly positive")
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()
	res := run(t, nil, "version")
	assert.Equal(t, apperrors.ExitSuccess, res.code)
	assert.True(t, strings.HasPrefix(res.out, "sampler "+Version))
}

func TestFetchCommand(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/fail":
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"message":"backend exploded"}`))
		case "/list":
			_, _ = w.Write([]byte(`[{"id":1},{"id":2}]`))
		case "/slow":
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		default:
			_, _ = w.Write([]byte(`{"path":"` + r.URL.Path + `"}`))
		}
	}))
	t.Cleanup(srv.Close)

	t.Run("Concurrent fetch prints results in argument order", func(t *testing.T) {
		t.Parallel()
		res := run(t, nil, "fetch", srv.URL+"/a", srv.URL+"/b")
		require.Equal(t, apperrors.ExitSuccess, res.code, res.errOut)
		a := strings.Index(res.out, `{"path":"/a"}`)
		b := strings.Index(res.out, `{"path":"/b"}`)
		require.NotEqual(t, -1, a)
		require.NotEqual(t, -1, b)
		assert.Less(t, a, b)
		assert.Contains(t, res.out, "2 target(s)")
	})

	t.Run("Array bodies are printed", func(t *testing.T) {
		t.Parallel()
		res := run(t, nil, "fetch", srv.URL+"/list")
		require.Equal(t, apperrors.ExitSuccess, res.code, res.errOut)
		assert.Contains(t, res.out, `[{"id":1},{"id":2}]`)
	})

	t.Run("Concurrent failure is aggregated", func(t *testing.T) {
		t.Parallel()
		res := run(t, nil, "fetch", srv.URL+"/a", srv.URL+"/fail")
		assert.Equal(t, apperrors.ExitErrorRemote, res.code)
		assert.Contains(t, res.errOut, "failed to fetch multiple targets: failed to fetch data from "+srv.URL+"/fail: backend exploded")
		assert.Contains(t, res.errOut, "[remote_status]")
	})

	t.Run("Sequential failure names the step", func(t *testing.T) {
		t.Parallel()
		res := run(t, nil, "fetch", "--sequential", srv.URL+"/a", srv.URL+"/fail")
		assert.Equal(t, apperrors.ExitErrorRemote, res.code)
		assert.Contains(t, res.errOut, "sequential step 2/2")
	})

	t.Run("Timeout maps to the timeout exit code", func(t *testing.T) {
		t.Parallel()
		res := run(t, nil, "fetch", "--timeout", "50ms", srv.URL+"/slow")
		assert.Equal(t, apperrors.ExitErrorTimeout, res.code)
		assert.Contains(t, res.errOut, apperrors.TimeoutDetail)
	})

	t.Run("Requires at least one target", func(t *testing.T) {
		t.Parallel()
		res := run(t, nil, "fetch")
		assert.Equal(t, apperrors.ExitErrorGeneric, res.code)
	})
}

// demoServer answers the three remote calls made by the demo. A non-empty
// failPath returns 500 for that path.
func demoServer(t *testing.T, failPath string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == failPath {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		switch r.URL.Path {
		case "/post":
			_, _ = w.Write([]byte(`{"id":1,"title":"sunt aut facere"}`))
		case "/weather":
			_, _ = w.Write([]byte(`{"current_units":{"temperature_2m":"°C"},"current":{"temperature_2m":11.4,"weather_code":3,"wind_speed_10m":9.7}}`))
		case "/user":
			_, _ = w.Write([]byte(`{"results":[{"name":{"first":"Ada","last":"Lovelace"},"email":"ada@example.com"}]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func demoOptions(srv *httptest.Server) []AppOption {
	return []AppOption{
		WithPostURL(srv.URL + "/post"),
		WithFetchOptions(
			fetch.WithWeatherURL(srv.URL+"/weather"),
			fetch.WithRandomUserURL(srv.URL+"/user"),
		),
		WithDemoDelay(time.Millisecond),
	}
}

func TestDemoCommand(t *testing.T) {
	t.Parallel()

	t.Run("Runs every section", func(t *testing.T) {
		t.Parallel()
		res := run(t, demoOptions(demoServer(t, "")), "demo")
		require.Equal(t, apperrors.ExitSuccess, res.code, res.errOut)

		for _, want := range []string{
			"Fibonacci of 10: 55",
			"Factorial of 5: 120",
			"John Doe",
			"Employee ID: E123, Title: Software Developer",
			"Annual Salary: $72000",
			"Processed: [9 8]",
			"Total: 28",
			"Max: 9, Min: 1",
			"Unique: [go rust zig]",
			"Fetched post title: sunt aut facere",
			"Current temperature in London: 11.4°C",
			"Random user: Ada Lovelace (ada@example.com)",
			"Async operation completed after 1ms",
			"Caught ValidationError: Invalid input data - Details: Input must be at least 5 characters long",
			"Caught RemoteCallError: API request failed (Status: 404)",
			"Outer handler: Inner error",
			"still a ValidationError: true",
			"Deferred call always executes",
			"Malformed input yields: <nil>",
			`Input validation passed for "validInput123"`,
			`Input validation failed for "ab"`,
		} {
			assert.Contains(t, res.out, want)
		}
	})

	t.Run("Remote failure is reported and the demo continues", func(t *testing.T) {
		t.Parallel()
		res := run(t, demoOptions(demoServer(t, "/weather")), "demo")
		require.Equal(t, apperrors.ExitSuccess, res.code, res.errOut)
		assert.Contains(t, res.out, "Error in async operation: ")
		assert.Contains(t, res.out, "failed to fetch weather data: remote returned status 500")
		assert.Contains(t, res.out, "5. EXCEPTION HANDLING DEMONSTRATION")
		assert.NotContains(t, res.out, "Async operation completed")
	})

	t.Run("Unsupported city is a validation failure", func(t *testing.T) {
		t.Parallel()
		res := run(t, demoOptions(demoServer(t, "")), "demo", "--city", "Atlantis")
		require.Equal(t, apperrors.ExitSuccess, res.code, res.errOut)
		assert.Contains(t, res.out, `unsupported city "Atlantis"`)
	})
}

func TestSafeParseJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  any
	}{
		{"Object", `{"a":1}`, map[string]any{"a": float64(1)}},
		{"Array", `[1,"x"]`, []any{float64(1), "x"}},
		{"Malformed", `{"a":`, nil},
		{"Empty", ``, nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, SafeParseJSON(tt.input, logging.NewNop()))
		})
	}
}
