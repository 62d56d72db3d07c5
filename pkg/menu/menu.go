package menu

import (
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/mchmarny/navmenu/pkg/html"
	"github.com/mchmarny/navmenu/pkg/route"
)

const (
	// DefaultLinkTemplate renders items that have a URL.
	DefaultLinkTemplate = `<a href="{url}">{label}</a>`

	// DefaultLabelTemplate renders items without a URL.
	DefaultLabelTemplate = "{label}"

	// DefaultSubmenuTemplate wraps rendered sub-items.
	DefaultSubmenuTemplate = "\n<ul>\n{items}\n</ul>\n"

	// DefaultActiveCSSClass is added to active items.
	DefaultActiveCSSClass = "active"

	defaultItemTag      = "li"
	defaultContainerTag = "ul"
)

// Config holds the menu defaults. It is read-only during a render.
type Config struct {
	// Items is the menu tree.
	Items []Item

	// ItemOptions are attributes shared by all item tags. Item options win.
	ItemOptions html.Attributes

	// LinkTemplate renders items with a URL. Supports {url} and {label}.
	LinkTemplate string

	// LabelTemplate renders items without a URL. Supports {label}.
	LabelTemplate string

	// SubmenuTemplate wraps sub-items. Supports {items}.
	SubmenuTemplate string

	// EncodeLabels HTML-encodes labels unless an item overrides it.
	EncodeLabels bool

	// ActiveCSSClass is added to the class of active items.
	ActiveCSSClass string

	// ActivateItems marks items active when their route matches.
	ActivateItems bool

	// ActivateParents marks items active when any child is active.
	ActivateParents bool

	// HideEmptyItems drops items without a URL whose submenu ended up empty.
	HideEmptyItems bool

	// Options are the container tag attributes. "tag" names the element
	// (default "ul").
	Options html.Attributes

	// FirstItemCSSClass is added to the first item of each list when set.
	FirstItemCSSClass string

	// LastItemCSSClass is added to the last item of each list when set.
	LastItemCSSClass string
}

// DefaultConfig returns the default menu configuration with no items.
func DefaultConfig() Config {
	return Config{
		LinkTemplate:    DefaultLinkTemplate,
		LabelTemplate:   DefaultLabelTemplate,
		SubmenuTemplate: DefaultSubmenuTemplate,
		EncodeLabels:    true,
		ActiveCSSClass:  DefaultActiveCSSClass,
		ActivateItems:   true,
		HideEmptyItems:  true,
	}
}

// Menu renders a navigation menu as nested HTML lists.
//
// Menu is a value: every With* setter returns an updated copy and leaves the
// receiver untouched, so one Menu can be shared by concurrent renders.
//
// Example:
//
//	out := menu.New().
//	    WithItems(menu.Item{Label: "Home", URL: menu.To("site/index", nil)}).
//	    WithActivateParents(true).
//	    Show(ctx)
type Menu struct {
	cfg Config
}

// New returns a menu with the default configuration.
func New() Menu {
	return FromConfig(DefaultConfig())
}

// FromConfig returns a menu using cfg.
func FromConfig(cfg Config) Menu {
	m := Menu{cfg: cfg}
	m.cfg.Items = slices.Clone(cfg.Items)
	m.cfg.ItemOptions = cfg.ItemOptions.Clone()
	m.cfg.Options = cfg.Options.Clone()
	return m
}

// Config returns a copy of the menu configuration.
func (m Menu) Config() Config {
	return FromConfig(m.cfg).cfg
}

// WithItems sets the menu items.
func (m Menu) WithItems(items ...Item) Menu {
	m.cfg.Items = slices.Clone(items)
	return m
}

// WithItemOptions sets the attributes shared by all item tags.
func (m Menu) WithItemOptions(attrs html.Attributes) Menu {
	m.cfg.ItemOptions = attrs.Clone()
	return m
}

// WithLinkTemplate sets the template for items with a URL.
func (m Menu) WithLinkTemplate(tpl string) Menu {
	m.cfg.LinkTemplate = tpl
	return m
}

// WithLabelTemplate sets the template for items without a URL.
func (m Menu) WithLabelTemplate(tpl string) Menu {
	m.cfg.LabelTemplate = tpl
	return m
}

// WithSubmenuTemplate sets the submenu wrapper template.
func (m Menu) WithSubmenuTemplate(tpl string) Menu {
	m.cfg.SubmenuTemplate = tpl
	return m
}

// WithEncodeLabels sets the default label encoding.
func (m Menu) WithEncodeLabels(v bool) Menu {
	m.cfg.EncodeLabels = v
	return m
}

// WithActiveCSSClass sets the class added to active items.
func (m Menu) WithActiveCSSClass(class string) Menu {
	m.cfg.ActiveCSSClass = class
	return m
}

// WithActivateItems toggles route based item activation.
func (m Menu) WithActivateItems(v bool) Menu {
	m.cfg.ActivateItems = v
	return m
}

// WithActivateParents toggles parent activation from active children.
func (m Menu) WithActivateParents(v bool) Menu {
	m.cfg.ActivateParents = v
	return m
}

// WithHideEmptyItems toggles dropping of empty URL-less branches.
func (m Menu) WithHideEmptyItems(v bool) Menu {
	m.cfg.HideEmptyItems = v
	return m
}

// WithOptions sets the container tag attributes.
func (m Menu) WithOptions(attrs html.Attributes) Menu {
	m.cfg.Options = attrs.Clone()
	return m
}

// WithFirstItemCSSClass sets the class of the first item in each list.
func (m Menu) WithFirstItemCSSClass(class string) Menu {
	m.cfg.FirstItemCSSClass = class
	return m
}

// WithLastItemCSSClass sets the class of the last item in each list.
func (m Menu) WithLastItemCSSClass(class string) Menu {
	m.cfg.LastItemCSSClass = class
	return m
}

// Normalize filters the item tree and resolves labels, URLs and activity
// against ctx. ctx may be nil, in which case no item is route-active.
func (m Menu) Normalize(ctx route.Context) []Node {
	nodes, _ := m.normalize(m.cfg.Items, ctx)
	return nodes
}

// Show renders the menu for ctx. It returns an empty string when no item
// survives normalization.
func (m Menu) Show(ctx route.Context) string {
	return m.Markup(m.Normalize(ctx))
}

// Markup renders already normalized nodes inside the container tag.
// It returns an empty string for an empty list.
func (m Menu) Markup(nodes []Node) string {
	if len(nodes) == 0 {
		slog.Debug("menu empty, nothing rendered")
		return ""
	}

	opts := html.Merge(nil, m.cfg.Options)
	tag := tagName(opts.Remove("tag", defaultContainerTag), defaultContainerTag)
	out := html.Tag(tag, m.renderItems(nodes), opts)

	slog.Debug("menu rendered",
		"items", len(nodes),
		"bytes", len(out))

	return out
}

// Render writes the output of Show to w.
func (m Menu) Render(w io.Writer, ctx route.Context) error {
	_, err := io.WriteString(w, m.Show(ctx))
	return err
}

// Routes returns the route tokens of all RouteSpec items in the tree,
// depth first, without duplicates. Visibility is not considered.
func (m Menu) Routes() []string {
	var routes []string
	for i := range m.cfg.Items {
		routes = collectRoutes(&m.cfg.Items[i], routes)
	}
	return routes
}

// collectRoutes recursively collects a menu item's route and all its sub-items' routes.
func collectRoutes(item *Item, routes []string) []string {
	if item.URL != nil && item.URL.Route != nil {
		r := strings.TrimSpace(item.URL.Route.Route)
		if r != "" && !slices.Contains(routes, r) {
			routes = append(routes, r)
		}
	}

	for i := range item.Items {
		routes = collectRoutes(&item.Items[i], routes)
	}

	return routes
}
