package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/agbru/sampler/internal/fetch"
	"github.com/agbru/sampler/internal/logging"
	"github.com/agbru/sampler/internal/metrics"
	"github.com/agbru/sampler/internal/orchestration"
	"github.com/agbru/sampler/internal/sysmon"
)

// Default server timeouts.
const (
	DefaultReadHeaderTimeout = 5 * time.Second
	DefaultShutdownTimeout   = 5 * time.Second
	// SystemSampleMaxAge bounds how stale the reported CPU and memory
	// usage may be.
	SystemSampleMaxAge = 2 * time.Second
)

// WeatherSource builds weather operations. *fetch.Client implements it.
type WeatherSource interface {
	Weather(city string) (orchestration.Operation[fetch.WeatherReport], error)
}

// Config holds the settings the server needs from the application config.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string
	// MaxN is the largest accepted sequence index.
	MaxN int
}

// Server is the HTTP front end.
type Server struct {
	cfg      Config
	logger   logging.Logger
	metrics  *Metrics
	security SecurityConfig
	weather  WeatherSource
	orch     *orchestration.Orchestrator
	system   *sysmon.Sampler
	router   chi.Router
}

// Option configures a Server during construction.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithSecurityConfig replaces DefaultSecurityConfig.
func WithSecurityConfig(c SecurityConfig) Option {
	return func(s *Server) { s.security = c }
}

// WithWeatherSource sets the source used by /api/weather. Without it the
// route answers 503.
func WithWeatherSource(w WeatherSource) Option {
	return func(s *Server) { s.weather = w }
}

// New builds a Server and its routes. Orchestration metrics are registered
// on the server's own registry so they appear on /metrics.
func New(cfg Config, opts ...Option) (*Server, error) {
	s := &Server{
		cfg:      cfg,
		metrics:  NewMetrics(),
		security: DefaultSecurityConfig(),
		system:   sysmon.NewSampler(SystemSampleMaxAge),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}

	collector, err := metrics.NewCollector(s.metrics.Registry())
	if err != nil {
		return nil, err
	}
	for _, c := range s.system.Collectors(metrics.Namespace) {
		if err := s.metrics.Registry().Register(c); err != nil {
			return nil, err
		}
	}
	s.orch = orchestration.New(
		orchestration.WithLogger(s.logger),
		orchestration.WithObserver(collector),
	)
	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(func(next http.Handler) http.Handler {
		return SecurityMiddleware(s.security, s.metricsMiddleware(next.ServeHTTP))
	})

	r.Get("/", s.handleForm)
	r.Post("/", s.handleSubmit)
	r.Get("/api/sequence", s.handleSequence)
	r.Get("/api/weather", s.handleWeather)
	r.Get("/api/health", s.handleHealth)
	r.HandleFunc("/metrics", s.handleMetrics)
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe listens on the configured address and serves until ctx is
// done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully, giving in-flight requests DefaultShutdownTimeout to finish.
//
// Returns:
//   - error: nil after a clean shutdown, or the listener/shutdown failure.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: DefaultReadHeaderTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", logging.String("addr", ln.Addr().String()))
		serverErrors <- srv.Serve(ln)
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			_ = srv.Close()
			return err
		}
		return nil
	}
}

// metricsMiddleware tracks active requests and records each completed
// request under its route pattern.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()

		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next(ww, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		code := ww.Status()
		if code == 0 {
			code = http.StatusOK
		}
		s.metrics.ObserveRequest(r.Method, route, code, time.Since(start))
	}
}
