package menu

import (
	"net/url"
	"reflect"
	"sort"
	"strings"

	"github.com/spf13/cast"

	"github.com/mchmarny/navmenu/pkg/route"
)

// IsItemActive reports whether item targets the current route of ctx.
//
// Only RouteSpec URLs with a non-empty route take part. The route must equal
// the current route after alias and module resolution, and every non-nil
// parameter must be present in the current request and loosely equal to it
// ("3" matches 3). The anchor parameter is ignored.
func IsItemActive(item Item, ctx route.Context) bool {
	if ctx == nil || item.URL == nil || item.URL.Route == nil || item.URL.Route.Route == "" {
		return false
	}

	spec := item.URL.Route
	if resolveRoute(spec.Route, ctx) != ctx.Route() {
		return false
	}

	current := ctx.Params()
	for name, want := range spec.Params {
		if name == AnchorParam || want == nil {
			continue
		}

		got, ok := current[name]
		if !ok || got == nil || !looseEqual(got, want) {
			return false
		}
	}

	return true
}

// resolveRoute expands aliases and prefixes relative routes with the current
// module path. The result has no leading slash.
func resolveRoute(token string, ctx route.Context) string {
	if ctx == nil {
		return strings.TrimLeft(token, "/")
	}

	r := ctx.ResolveAlias(token)
	if !strings.HasPrefix(r, "/") {
		if module, ok := ctx.ModulePath(); ok {
			r = module + "/" + r
		}
	}

	return strings.TrimLeft(r, "/")
}

// looseEqual compares values the way request parameters are compared:
// by their string form, falling back to numeric value.
func looseEqual(a, b any) bool {
	as, errA := cast.ToStringE(a)
	bs, errB := cast.ToStringE(b)
	if errA != nil || errB != nil {
		return reflect.DeepEqual(a, b)
	}

	if as == bs {
		return true
	}

	af, errA := cast.ToFloat64E(a)
	bf, errB := cast.ToFloat64E(b)

	return errA == nil && errB == nil && af == bf
}

// URLFor resolves u into an href. Plain URLs are returned verbatim. RouteSpec
// URLs become "/<route>?<params>#<anchor>" with nil params left out and the
// query sorted by key.
func URLFor(u *URL, ctx route.Context) string {
	if u == nil {
		return ""
	}

	if u.Route == nil {
		return u.Href
	}

	spec := u.Route
	if spec.Route == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString("/")
	b.WriteString(resolveRoute(spec.Route, ctx))

	anchor := spec.Anchor
	names := make([]string, 0, len(spec.Params))
	for name, v := range spec.Params {
		if name == AnchorParam {
			if anchor == "" {
				anchor = cast.ToString(v)
			}
			continue
		}
		if v != nil {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	q := url.Values{}
	for _, name := range names {
		q.Set(name, cast.ToString(spec.Params[name]))
	}

	if enc := q.Encode(); enc != "" {
		b.WriteString("?")
		b.WriteString(enc)
	}

	if anchor != "" {
		b.WriteString("#")
		b.WriteString(anchor)
	}

	return b.String()
}
