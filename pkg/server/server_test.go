package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkFunc func(ctx context.Context) error

func (f checkFunc) Healthy(ctx context.Context) error { return f(ctx) }
func (f checkFunc) Ready(ctx context.Context) error   { return f(ctx) }

func serve(t *testing.T, srv Server, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestSimpleHealth(t *testing.T) {
	srv := New(WithSimpleHealth())

	w := serve(t, srv, http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestHealthAndReadinessChecks(t *testing.T) {
	srv := New(
		WithHealthCheck(checkFunc(func(context.Context) error { return nil })),
		WithReadinessCheck(checkFunc(func(context.Context) error { return errors.New("no menu items") })),
	)

	assert.Equal(t, http.StatusOK, serve(t, srv, http.MethodGet, "/healthz").Code)

	w := serve(t, srv, http.MethodGet, "/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "no menu items", w.Body.String())
}

func TestHandlersWithURLParams(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chi.URLParam(r, "id")))
	})

	srv := New(WithGet("/product/{id}", h), WithHandler("/any", h))

	w := serve(t, srv, http.MethodGet, "/product/42")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "42", w.Body.String())

	assert.Equal(t, http.StatusOK, serve(t, srv, http.MethodHead, "/product/42").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, serve(t, srv, http.MethodPost, "/product/42").Code)
	assert.Equal(t, http.StatusOK, serve(t, srv, http.MethodPost, "/any").Code)
	assert.Equal(t, http.StatusNotFound, serve(t, srv, http.MethodGet, "/missing").Code)
}

func TestPrometheusMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := prometheus.NewCounter(prometheus.CounterOpts{Name: "navmenu_test_total", Help: "test"})
	reg.MustRegister(c)
	c.Inc()

	srv := New(WithRegistry(reg), WithPrometheusMetrics())

	w := serve(t, srv, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "navmenu_test_total 1")

	assert.Equal(t, http.StatusNotFound, serve(t, New(), http.MethodGet, "/metrics").Code)
}

func TestCORS(t *testing.T) {
	srv := New(WithCORS(true), WithSimpleHealth())

	req := httptest.NewRequest(http.MethodOptions, "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecoverer(t *testing.T) {
	srv := New(WithHandler("/panic", http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("render failed")
	})))

	assert.Equal(t, http.StatusInternalServerError, serve(t, srv, http.MethodGet, "/panic").Code)
}

func TestRequestTimeout(t *testing.T) {
	slow := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	srv := New(WithRequestTimeout(20*time.Millisecond), WithGet("/slow", slow))
	assert.Equal(t, http.StatusGatewayTimeout, serve(t, srv, http.MethodGet, "/slow").Code)

	// non-positive values keep the default
	srv = New(WithRequestTimeout(0), WithShutdownTimeout(-time.Second), WithSimpleHealth())
	s := srv.(*server)
	assert.Equal(t, DefaultRequestTimeout, s.requestTimeout)
	assert.Equal(t, DefaultShutdownTimeout, s.shutdownTimeout)
}

func TestServeAndShutdown(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())

	srv := New(WithPort(port), WithSimpleHealth(), WithShutdownTimeout(time.Second))
	assert.False(t, srv.IsRunning())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx) }()

	require.Eventually(t, srv.IsRunning, 2*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
	assert.False(t, srv.IsRunning())
}
