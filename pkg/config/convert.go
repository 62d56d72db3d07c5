package config

import (
	"maps"

	"github.com/mchmarny/navmenu/pkg/html"
	"github.com/mchmarny/navmenu/pkg/menu"
	"github.com/mchmarny/navmenu/pkg/route"
)

// ToMenu converts the menu section into a menu configuration.
func (c *Config) ToMenu() menu.Config {
	m := c.Menu
	return menu.Config{
		Items:             toItems(m.Items),
		ItemOptions:       attributes(m.ItemOptions),
		LinkTemplate:      m.LinkTemplate,
		LabelTemplate:     m.LabelTemplate,
		SubmenuTemplate:   m.SubmenuTemplate,
		EncodeLabels:      m.EncodeLabels,
		ActiveCSSClass:    m.ActiveCSSClass,
		ActivateItems:     m.ActivateItems,
		ActivateParents:   m.ActivateParents,
		HideEmptyItems:    m.HideEmptyItems,
		Options:           attributes(m.Options),
		FirstItemCSSClass: m.FirstItemCSSClass,
		LastItemCSSClass:  m.LastItemCSSClass,
	}
}

// Aliases returns the configured route aliases.
func (c *Config) Aliases() route.Aliases {
	return route.Aliases(maps.Clone(c.Route.Aliases))
}

// Module returns the configured controller module, or nil when none is set.
func (c *Config) Module() *route.Module {
	if c.Route.Module == nil {
		return nil
	}
	return &route.Module{UniqueID: *c.Route.Module}
}

func toItems(items []ItemConfig) []menu.Item {
	if items == nil {
		return nil
	}

	out := make([]menu.Item, 0, len(items))
	for _, ic := range items {
		item := menu.Item{
			Label:           ic.Label,
			Visible:         ic.Visible,
			Encode:          ic.Encode,
			Template:        ic.Template,
			SubmenuTemplate: ic.SubmenuTemplate,
			Options:         attributes(ic.Options),
			Items:           toItems(ic.Items),
		}

		switch {
		case ic.Route != "":
			item.URL = &menu.URL{Route: &menu.RouteSpec{
				Route:  ic.Route,
				Params: maps.Clone(ic.Params),
				Anchor: ic.Anchor,
			}}
		case ic.URL != "":
			item.URL = menu.Link(ic.URL)
		}

		if ic.Active != nil {
			item.Active = menu.Fixed(*ic.Active)
		}

		out = append(out, item)
	}

	return out
}

func attributes(m map[string]any) html.Attributes {
	if m == nil {
		return nil
	}
	return html.Attributes(maps.Clone(m))
}
