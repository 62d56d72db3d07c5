package route

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAliasesResolve(t *testing.T) {
	a := Aliases{
		"@shop":       "/product",
		"@shop/admin": "/backend/product",
	}

	assert.Equal(t, "site/index", a.Resolve("site/index"))
	assert.Equal(t, "/product", a.Resolve("@shop"))
	assert.Equal(t, "/product/index", a.Resolve("@shop/index"))
	assert.Equal(t, "/backend/product/edit", a.Resolve("@shop/admin/edit"))
	assert.Equal(t, "@shopping/x", a.Resolve("@shopping/x"))
	assert.Equal(t, "@unknown", a.Resolve("@unknown"))
	assert.Equal(t, "@shop/x", Aliases(nil).Resolve("@shop/x"))
}

func TestSnapshot(t *testing.T) {
	s := &Snapshot{Path: "a/b", Values: map[string]any{"id": 1}, Aliases: Aliases{"@x": "/y"}}

	assert.Equal(t, "a/b", s.Route())
	assert.Equal(t, map[string]any{"id": 1}, s.Params())
	assert.Equal(t, "/y/z", s.ResolveAlias("@x/z"))

	_, ok := s.ModulePath()
	assert.False(t, ok)

	s.Module = &Module{UniqueID: "admin"}
	path, ok := s.ModulePath()
	assert.True(t, ok)
	assert.Equal(t, "admin", path)
}

func TestFromRequest(t *testing.T) {
	var got *Snapshot

	r := chi.NewRouter()
	r.Get("/product/view/{id}", func(w http.ResponseWriter, req *http.Request) {
		got = FromRequest(req, Aliases{"@shop": "/product"}, nil)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/product/view/42?id=1&tab=info&tab=more", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	require.NotNil(t, got)
	assert.Equal(t, "product/view", got.Route())
	assert.Equal(t, map[string]any{"id": "42", "tab": "info"}, got.Params())
	assert.Equal(t, "/product/x", got.ResolveAlias("@shop/x"))
}

func TestFromRequestWithoutRouter(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/site/index?page=2", nil)

	s := FromRequest(req, nil, &Module{UniqueID: "admin"})

	assert.Equal(t, "site/index", s.Route())
	assert.Equal(t, map[string]any{"page": "2"}, s.Params())
	path, ok := s.ModulePath()
	assert.True(t, ok)
	assert.Equal(t, "admin", path)
}

func TestPatternRoute(t *testing.T) {
	assert.Equal(t, "product/view", patternRoute("/product/view/{id}"))
	assert.Equal(t, "user/posts", patternRoute("/user/{uid:[0-9]+}/posts/{pid}"))
	assert.Equal(t, "docs", patternRoute("/docs/*"))
	assert.Equal(t, "", patternRoute("/"))
}
