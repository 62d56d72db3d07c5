// Package route describes the request routing context menus are resolved against.
package route

import (
	"maps"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Context exposes the current request's route to the menu.
// Implementations must be safe for concurrent reads.
type Context interface {
	// Route returns the current route without leading or trailing slashes
	// (e.g. "product/view").
	Route() string

	// Params returns the current request parameters.
	Params() map[string]any

	// ResolveAlias expands an "@alias" token. Tokens that are not aliases are
	// returned unchanged.
	ResolveAlias(token string) string

	// ModulePath returns the unique path of the module owning the current
	// controller and whether a controller context exists at all.
	ModulePath() (string, bool)
}

// Module describes the module owning the current controller.
// The application module has an empty UniqueID.
type Module struct {
	UniqueID string `json:"unique_id" yaml:"unique_id"`
}

// Snapshot is a fixed Context value.
type Snapshot struct {
	// Path is the current route.
	Path string

	// Values holds the current request parameters.
	Values map[string]any

	// Aliases used to resolve "@alias" tokens.
	Aliases Aliases

	// Module is nil when no controller context exists.
	Module *Module
}

var _ Context = (*Snapshot)(nil)

// Route implements Context.
func (s *Snapshot) Route() string { return s.Path }

// Params implements Context.
func (s *Snapshot) Params() map[string]any { return s.Values }

// ResolveAlias implements Context.
func (s *Snapshot) ResolveAlias(token string) string { return s.Aliases.Resolve(token) }

// ModulePath implements Context.
func (s *Snapshot) ModulePath() (string, bool) {
	if s.Module == nil {
		return "", false
	}
	return s.Module.UniqueID, true
}

// FromRequest captures the route context of r.
//
// When r was routed by chi, the route is the matched pattern without its
// placeholder segments ("/product/view/{id}" becomes "product/view") and the
// URL parameters overlay the query values. Otherwise the route is the request
// path. Only the first value of each query key is kept.
func FromRequest(r *http.Request, aliases Aliases, module *Module) *Snapshot {
	params := make(map[string]any)
	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}

	path := strings.Trim(r.URL.Path, "/")

	if rc := chi.RouteContext(r.Context()); rc != nil {
		for i, k := range rc.URLParams.Keys {
			if k == "" || k == "*" || i >= len(rc.URLParams.Values) {
				continue
			}
			params[k] = rc.URLParams.Values[i]
		}

		if pattern := rc.RoutePattern(); pattern != "" {
			path = patternRoute(pattern)
		}
	}

	return &Snapshot{
		Path:    path,
		Values:  params,
		Aliases: maps.Clone(aliases),
		Module:  module,
	}
}

// patternRoute drops placeholder and wildcard segments from a chi pattern.
func patternRoute(pattern string) string {
	segments := strings.Split(strings.Trim(pattern, "/"), "/")

	kept := segments[:0]
	for _, s := range segments {
		if s == "" || s == "*" || strings.HasPrefix(s, "{") {
			continue
		}
		kept = append(kept, s)
	}

	return strings.Join(kept, "/")
}
