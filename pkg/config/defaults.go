package config

import (
	"github.com/mchmarny/navmenu/pkg/menu"
	"github.com/mchmarny/navmenu/pkg/server"
)

// DefaultConfig returns a Config populated with sensible defaults and no items.
func DefaultConfig() *Config {
	d := menu.DefaultConfig()

	return &Config{
		LogLevel: "info",
		Server: ServerConfig{
			Port:            server.DefaultPort,
			Title:           "navmenu",
			RequestTimeout:  server.DefaultRequestTimeout,
			ShutdownTimeout: server.DefaultShutdownTimeout,
		},
		Menu: MenuConfig{
			LinkTemplate:    d.LinkTemplate,
			LabelTemplate:   d.LabelTemplate,
			SubmenuTemplate: d.SubmenuTemplate,
			EncodeLabels:    d.EncodeLabels,
			ActiveCSSClass:  d.ActiveCSSClass,
			ActivateItems:   d.ActivateItems,
			ActivateParents: d.ActivateParents,
			HideEmptyItems:  d.HideEmptyItems,
		},
	}
}

// SampleConfig returns the default configuration with an example menu tree.
func SampleConfig() *Config {
	cfg := DefaultConfig()
	cfg.Route.Aliases = map[string]string{
		"@shop": "/product",
	}
	cfg.Menu.ActivateParents = true
	cfg.Menu.Options = map[string]any{"class": "nav"}
	cfg.Menu.Items = []ItemConfig{
		{Label: "Home", Route: "site/index"},
		{Label: "Products", Route: "@shop/index", Items: []ItemConfig{
			{Label: "New Arrivals", Route: "@shop/index", Params: map[string]any{"tag": "new"}},
			{Label: "Product 1", Route: "product/view", Params: map[string]any{"id": 1}},
			{Label: "Product 2", Route: "product/view", Params: map[string]any{"id": 2}},
		}},
		{Label: "About", Route: "site/about", Anchor: "team"},
		{Label: "Source", URL: "https://github.com/mchmarny/navmenu"},
	}
	return cfg
}
