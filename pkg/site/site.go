// Package site serves a demo web site for a menu: one page per menu route,
// each rendering the menu against that page's request.
package site

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mchmarny/navmenu/pkg/menu"
	"github.com/mchmarny/navmenu/pkg/metric"
	"github.com/mchmarny/navmenu/pkg/route"
	"github.com/mchmarny/navmenu/pkg/server"
)

const (
	// APIPath serves the normalized menu as JSON.
	APIPath = "/api/menu"

	// RouteQueryParam selects the route for APIPath.
	RouteQueryParam = "route"

	defaultTitle = "navmenu"
)

// ErrNoRoutes is returned by Ready when the menu has no RouteSpec items.
var ErrNoRoutes = errors.New("menu has no routes")

// Site serves pages for the routes of a menu.
type Site struct {
	menu     menu.Menu
	title    string
	aliases  route.Aliases
	module   *route.Module
	registry *prometheus.Registry
	renders  metric.RenderRecorder
	api      metric.IncrementalCounter
	page     *template.Template
}

// Option configures a Site.
type Option func(*Site)

// WithTitle sets the page title.
func WithTitle(title string) Option {
	return func(s *Site) { s.title = title }
}

// WithAliases sets the aliases used to resolve item routes.
func WithAliases(aliases route.Aliases) Option {
	return func(s *Site) { s.aliases = aliases }
}

// WithModule sets the module owning the current controller.
func WithModule(module *route.Module) Option {
	return func(s *Site) { s.module = module }
}

// New creates a site for m. Metrics are registered with a registry owned by
// the site.
func New(m menu.Menu, opts ...Option) (*Site, error) {
	page, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	reg := prometheus.NewRegistry()

	s := &Site{
		menu:     m,
		title:    defaultTitle,
		registry: reg,
		renders:  metric.NewRenders(reg),
		api:      metric.NewCounterWithRegistry(reg, "api_requests_total", "Menu API requests by status.", "status"),
		page:     page,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Paths returns the request path of every menu route, sorted.
func (s *Site) Paths() []string {
	ctx := &route.Snapshot{Aliases: s.aliases, Module: s.module}

	seen := make(map[string]bool)
	paths := make([]string, 0)
	for _, r := range s.menu.Routes() {
		p := menu.URLFor(menu.To(r, nil), ctx)
		if p == "/" || seen[p] {
			continue
		}
		seen[p] = true
		paths = append(paths, p)
	}
	sort.Strings(paths)

	return paths
}

// ServerOptions returns the server options registering the site handlers,
// probes and metrics.
func (s *Site) ServerOptions() []server.Option {
	opts := []server.Option{
		server.WithRegistry(s.registry),
		server.WithPrometheusMetrics(),
		server.WithHealthCheck(s),
		server.WithReadinessCheck(s),
		server.WithGet(APIPath, s.apiHandler()),
		server.WithGet("/", s.rootHandler()),
	}

	for _, p := range s.Paths() {
		opts = append(opts, server.WithGet(p, s.pageHandler()))
	}

	return opts
}

// Healthy implements server.HealthChecker.
func (s *Site) Healthy(_ context.Context) error {
	return nil
}

// Ready implements server.ReadinessChecker.
func (s *Site) Ready(_ context.Context) error {
	if len(s.menu.Routes()) == 0 {
		return ErrNoRoutes
	}
	return nil
}

// render normalizes and renders the menu for ctx, recording metrics.
func (s *Site) render(ctx route.Context) (string, []menu.Node) {
	start := time.Now()
	nodes := s.menu.Normalize(ctx)
	out := s.menu.Markup(nodes)
	s.renders.ObserveRender(ctx.Route(), len(nodes), time.Since(start))
	return out, nodes
}

type pageData struct {
	Title  string
	Route  string
	Params []param
	Menu   template.HTML
}

type param struct {
	Name  string
	Value any
}

// pageHandler renders a page for the matched route.
func (s *Site) pageHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := route.FromRequest(r, s.aliases, s.module)

		slog.Info("handling page",
			"method", r.Method,
			"url", r.URL.Path,
			"route", ctx.Route())

		nav, _ := s.render(ctx)

		data := pageData{
			Title:  s.title,
			Route:  ctx.Route(),
			Params: sortedParams(ctx.Params()),
			// the menu escapes labels and URLs itself
			Menu: template.HTML(nav),
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := s.page.Execute(w, data); err != nil {
			slog.Error("failed to render page", "route", ctx.Route(), "error", err)
			return
		}

		slog.Info("completed",
			"method", r.Method,
			"url", r.URL.Path,
			"status", http.StatusOK)
	})
}

// rootHandler redirects to the first menu page.
func (s *Site) rootHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		target := s.firstPath()
		if target == "" {
			paths := s.Paths()
			if len(paths) == 0 {
				http.NotFound(w, r)
				return
			}
			target = paths[0]
		}

		http.Redirect(w, r, target, http.StatusFound)
	})
}

// firstPath returns the path of the first route in menu order.
func (s *Site) firstPath() string {
	routes := s.menu.Routes()
	if len(routes) == 0 {
		return ""
	}

	p := menu.URLFor(menu.To(routes[0], nil), &route.Snapshot{Aliases: s.aliases, Module: s.module})
	if p == "/" {
		return ""
	}
	return p
}

// apiResponse is the JSON body served at APIPath.
type apiResponse struct {
	Route  string         `json:"route"`
	Params map[string]any `json:"params,omitempty"`
	Items  []menu.Node    `json:"items"`
}

// apiHandler serves the normalized menu for the route named by the "route"
// query parameter. The remaining query parameters are the request params.
func (s *Site) apiHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slog.Info("handling menu request",
			"method", r.Method,
			"url", r.URL.Path,
		)

		current := r.URL.Query().Get(RouteQueryParam)
		if current == "" {
			writeError(w, http.StatusBadRequest, "missing route query parameter")
			s.api.Increment(fmt.Sprint(http.StatusBadRequest))
			return
		}

		ctx := route.FromRequest(r, s.aliases, s.module)
		ctx.Path = strings.Trim(current, "/")
		delete(ctx.Values, RouteQueryParam)

		_, nodes := s.render(ctx)

		resp := apiResponse{
			Route:  ctx.Path,
			Params: ctx.Values,
			Items:  nodes,
		}

		writeJSON(w, http.StatusOK, resp)
		s.api.Increment(fmt.Sprint(http.StatusOK))
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	slog.Error("handling error response",
		"status", status,
		"message", message,
	)
	writeJSON(w, status, map[string]string{"error": message})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		slog.Error("failed to marshal JSON response", "error", err)
		http.Error(w, "error, see logs for details", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		slog.Error("failed to write JSON response", "error", err)
		return
	}
	slog.Info("json response sent successfully", "status", status)
}

func sortedParams(values map[string]any) []param {
	out := make([]param, 0, len(values))
	for k, v := range values {
		out = append(out, param{Name: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
