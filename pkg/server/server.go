// Package server runs the HTTP server behind the navmenu demo site.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/mchmarny/navmenu/pkg/logger"
	"github.com/mchmarny/navmenu/pkg/metric"
)

const (
	// DefaultPort is the default HTTP server port.
	DefaultPort = 9876

	// DefaultShutdownTimeout bounds graceful shutdown once the context is done.
	DefaultShutdownTimeout = 5 * time.Second

	// DefaultRequestTimeout bounds the handling of a single request.
	DefaultRequestTimeout = 30 * time.Second

	readTimeout    = 10 * time.Second
	writeTimeout   = 10 * time.Second
	idleTimeout    = 60 * time.Second
	maxHeaderBytes = 1 << 20
)

// Server is an HTTP server with graceful shutdown.
type Server interface {
	// Serve listens on the configured port and blocks until ctx is canceled.
	// It returns nil after a clean shutdown.
	Serve(ctx context.Context) error

	// Handler returns the router with all middleware and routes mounted.
	Handler() http.Handler

	// IsRunning reports whether the listener is bound and serving.
	IsRunning() bool
}

// HealthChecker backs the /healthz liveness endpoint.
type HealthChecker interface {
	Healthy(ctx context.Context) error
}

// ReadinessChecker backs the /readyz readiness endpoint.
type ReadinessChecker interface {
	Ready(ctx context.Context) error
}

type server struct {
	router          chi.Router
	routes          []route
	port            int
	shutdownTimeout time.Duration
	requestTimeout  time.Duration
	errLog          *log.Logger
	cors            *cors.Options
	health          HealthChecker
	readiness       ReadinessChecker
	metrics         bool
	registry        *prometheus.Registry

	mu      sync.RWMutex
	running bool
}

// route is a handler registration deferred until the router is built.
type route struct {
	method  string // empty matches any method
	pattern string
	handler http.Handler
}

// Option configures the server.
type Option func(*server)

// WithPort sets the listen port. Defaults to DefaultPort.
func WithPort(port int) Option {
	return func(s *server) { s.port = port }
}

// WithShutdownTimeout sets the graceful shutdown grace period.
// Non-positive values keep the default.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *server) {
		if d > 0 {
			s.shutdownTimeout = d
		}
	}
}

// WithRequestTimeout sets the per-request timeout.
// Non-positive values keep the default.
func WithRequestTimeout(d time.Duration) Option {
	return func(s *server) {
		if d > 0 {
			s.requestTimeout = d
		}
	}
}

// WithHandler registers handler on a chi pattern for any method.
// Patterns may carry URL parameters, e.g. "/product/{id}".
func WithHandler(pattern string, handler http.Handler) Option {
	return func(s *server) {
		s.routes = append(s.routes, route{pattern: pattern, handler: handler})
	}
}

// WithGet registers handler for GET and HEAD on a chi pattern.
func WithGet(pattern string, handler http.Handler) Option {
	return func(s *server) {
		s.routes = append(s.routes,
			route{method: http.MethodGet, pattern: pattern, handler: handler},
			route{method: http.MethodHead, pattern: pattern, handler: handler},
		)
	}
}

// WithSimpleHealth serves /healthz always answering "ok".
func WithSimpleHealth() Option {
	return WithHealthCheck(nil)
}

// WithHealthCheck serves /healthz backed by checker. A nil checker is
// always healthy. Failures answer 503 with the error text.
func WithHealthCheck(checker HealthChecker) Option {
	return func(s *server) {
		s.health = checker
		s.routes = append(s.routes, route{
			method:  http.MethodGet,
			pattern: "/healthz",
			handler: probeHandler(func(ctx context.Context) error {
				if s.health == nil {
					return nil
				}
				return s.health.Healthy(ctx)
			}),
		})
	}
}

// WithReadinessCheck serves /readyz backed by checker.
func WithReadinessCheck(checker ReadinessChecker) Option {
	return func(s *server) {
		s.readiness = checker
		s.routes = append(s.routes, route{
			method:  http.MethodGet,
			pattern: "/readyz",
			handler: probeHandler(func(ctx context.Context) error {
				if s.readiness == nil {
					return nil
				}
				return s.readiness.Ready(ctx)
			}),
		})
	}
}

// WithRegistry sets the registry served by WithPrometheusMetrics.
// By default each server owns a fresh registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *server) { s.registry = reg }
}

// WithPrometheusMetrics exposes the server registry at /metrics.
func WithPrometheusMetrics() Option {
	return func(s *server) { s.metrics = true }
}

// WithCORS enables CORS. When allowAll is false only localhost origins are allowed.
func WithCORS(allowAll bool) Option {
	return func(s *server) {
		opts := cors.Options{
			AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
			AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}
		if allowAll {
			opts.AllowedOrigins = []string{"*"}
		}
		s.cors = &opts
	}
}

func probeHandler(check func(ctx context.Context) error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")

		if err := check(r.Context()); err != nil {
			slog.Warn("probe failed", "path", r.URL.Path, "error", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(err.Error()))
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}

// New creates a server from opts.
//
// Example:
//
//	srv := server.New(
//	    server.WithPort(9876),
//	    server.WithPrometheusMetrics(),
//	    server.WithSimpleHealth(),
//	)
func New(opts ...Option) Server {
	s := &server{
		port:            DefaultPort,
		shutdownTimeout: DefaultShutdownTimeout,
		requestTimeout:  DefaultRequestTimeout,
		registry:        prometheus.NewRegistry(),
		errLog:          logger.NewLogLogger(slog.LevelError, false),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.router = s.buildRouter()

	slog.Info("server initialized",
		"port", s.port,
		"routes", len(s.routes),
		"request_timeout", s.requestTimeout)

	return s
}

// buildRouter creates the chi router. Middleware has to be in place before
// any route is added, so routes collected from options are mounted last.
func (s *server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.requestTimeout))

	if s.cors != nil {
		r.Use(cors.Handler(*s.cors))
	}

	if s.metrics {
		r.Method(http.MethodGet, "/metrics", metric.GetHandlerForRegistry(s.registry))
	}

	for _, rt := range s.routes {
		if rt.method == "" {
			r.Handle(rt.pattern, rt.handler)
			continue
		}
		r.Method(rt.method, rt.pattern, rt.handler)
	}

	return r
}

func (s *server) Handler() http.Handler {
	return s.router
}

func (s *server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

func (s *server) setRunning(v bool) {
	s.mu.Lock()
	s.running = v
	s.mu.Unlock()
}

// Serve binds the listener first so IsRunning only turns true once the port
// is taken, then serves until ctx is done and shuts down within
// shutdownTimeout.
func (s *server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:           fmt.Sprintf(":%d", s.port),
		Handler:        s.router,
		ReadTimeout:    readTimeout,
		WriteTimeout:   writeTimeout,
		IdleTimeout:    idleTimeout,
		MaxHeaderBytes: maxHeaderBytes,
		ErrorLog:       s.errLog,
	}

	listener, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("failed to create listener: %w", err)
	}

	slog.Info("starting server", "addr", srv.Addr)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.setRunning(true)
		defer s.setRunning(false)

		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		slog.Info("shutting down server", "grace_period", s.shutdownTimeout)
		start := time.Now()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown error", "error", err)
		}

		slog.Info("server shutdown complete", "duration", time.Since(start))
		return nil
	})

	return g.Wait()
}
