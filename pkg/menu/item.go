package menu

import (
	"github.com/mchmarny/navmenu/pkg/html"
)

// AnchorParam is the RouteSpec parameter name holding a URL fragment.
// It is ignored during route matching.
const AnchorParam = "#"

// Item represents an individual item in the menu, which may contain sub-items.
// Items are treated as immutable input; rendering never modifies them.
type Item struct {
	// Label is the item text. It is HTML-encoded unless Encode (or the menu's
	// EncodeLabels) says otherwise.
	Label string `json:"label,omitempty"`

	// URL is the item target. A nil URL renders the item with the label template.
	URL *URL `json:"url,omitempty"`

	// Visible hides the item and its whole subtree when set to false.
	Visible *bool `json:"visible,omitempty"`

	// Items are the sub-items of this menu item. A non-nil empty slice still
	// counts as a submenu.
	Items []Item `json:"items,omitempty"`

	// Active overrides route based activation. Nil means "compute it".
	Active ActiveSpec `json:"-"`

	// Encode overrides the menu's EncodeLabels for this item.
	Encode *bool `json:"encode,omitempty"`

	// Template overrides the menu's link or label template.
	Template string `json:"template,omitempty"`

	// SubmenuTemplate overrides the menu's submenu template.
	SubmenuTemplate string `json:"submenu_template,omitempty"`

	// Options are the item tag attributes. The reserved "tag" key names the
	// element (default "li"); false suppresses the element.
	Options html.Attributes `json:"options,omitempty"`
}

// URL is either a plain href or a RouteSpec.
type URL struct {
	// Href is used verbatim when Route is nil.
	Href string `json:"href,omitempty"`

	// Route takes precedence over Href.
	Route *RouteSpec `json:"route,omitempty"`
}

// RouteSpec targets an application route with named parameters.
type RouteSpec struct {
	// Route is the route token, e.g. "product/view", "/site/index" or "@alias/x".
	Route string `json:"route"`

	// Params are matched against the current request parameters.
	// Nil values match anything. The AnchorParam key is treated as the fragment.
	Params map[string]any `json:"params,omitempty"`

	// Anchor is the URL fragment without "#".
	Anchor string `json:"anchor,omitempty"`
}

// Link returns a URL for a plain href.
func Link(href string) *URL {
	return &URL{Href: href}
}

// To returns a URL targeting route with the given params.
func To(route string, params map[string]any) *URL {
	return &URL{Route: &RouteSpec{Route: route, Params: params}}
}

// Bool returns a pointer to v, for the optional flags of Item.
func Bool(v bool) *bool {
	return &v
}

// ActiveSpec decides an item's activity. It is either Fixed or a Predicate.
type ActiveSpec interface {
	activeSpec()
}

// Fixed forces the item's active flag.
type Fixed bool

func (Fixed) activeSpec() {}

// Predicate computes the item's active flag.
//
// It receives the raw item, whether any child resolved active, whether the
// item's RouteSpec matches the current route and the menu being rendered.
type Predicate func(item Item, hasActiveChild, routeMatch bool, m Menu) bool

func (Predicate) activeSpec() {}

// Node is a normalized menu item, created fresh for each render.
type Node struct {
	// Label is encoded already when encoding applies.
	Label string `json:"label"`

	// Href is the resolved URL, empty when the item has none.
	Href string `json:"href,omitempty"`

	// Active is the resolved activity flag.
	Active bool `json:"active"`

	// Items are the normalized children. Nil when the item has no submenu.
	Items []Node `json:"items,omitempty"`

	URL             *URL            `json:"-"`
	Template        string          `json:"-"`
	SubmenuTemplate string          `json:"-"`
	Options         html.Attributes `json:"-"`
}

// HasSubmenu reports whether the node renders a submenu.
func (n Node) HasSubmenu() bool {
	return n.Items != nil
}
