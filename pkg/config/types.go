package config

import "time"

// Config is the top-level navmenu configuration, corresponding to navmenu.yml.
type Config struct {
	LogLevel string       `yaml:"log_level" koanf:"log_level"`
	Server   ServerConfig `yaml:"server" koanf:"server"`
	Route    RouteConfig  `yaml:"route" koanf:"route"`
	Menu     MenuConfig   `yaml:"menu" koanf:"menu"`
}

// ServerConfig holds the demo site server settings.
type ServerConfig struct {
	Port            int           `yaml:"port" koanf:"port"`
	Title           string        `yaml:"title" koanf:"title"`
	CORSAllowAll    bool          `yaml:"cors_allow_all" koanf:"cors_allow_all"`
	RequestTimeout  time.Duration `yaml:"request_timeout" koanf:"request_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" koanf:"shutdown_timeout"`
}

// RouteConfig holds the route context settings.
type RouteConfig struct {
	// Aliases maps "@name" tokens to their expansion.
	Aliases map[string]string `yaml:"aliases,omitempty" koanf:"aliases"`

	// Module, when set, is the unique path of the module owning the current
	// controller. Relative item routes are resolved inside it.
	Module *string `yaml:"module,omitempty" koanf:"module"`
}

// MenuConfig holds the menu widget defaults and the item tree.
type MenuConfig struct {
	Items             []ItemConfig   `yaml:"items" koanf:"items"`
	ItemOptions       map[string]any `yaml:"item_options,omitempty" koanf:"item_options"`
	LinkTemplate      string         `yaml:"link_template" koanf:"link_template"`
	LabelTemplate     string         `yaml:"label_template" koanf:"label_template"`
	SubmenuTemplate   string         `yaml:"submenu_template" koanf:"submenu_template"`
	EncodeLabels      bool           `yaml:"encode_labels" koanf:"encode_labels"`
	ActiveCSSClass    string         `yaml:"active_css_class" koanf:"active_css_class"`
	ActivateItems     bool           `yaml:"activate_items" koanf:"activate_items"`
	ActivateParents   bool           `yaml:"activate_parents" koanf:"activate_parents"`
	HideEmptyItems    bool           `yaml:"hide_empty_items" koanf:"hide_empty_items"`
	Options           map[string]any `yaml:"options,omitempty" koanf:"options"`
	FirstItemCSSClass string         `yaml:"first_item_css_class,omitempty" koanf:"first_item_css_class"`
	LastItemCSSClass  string         `yaml:"last_item_css_class,omitempty" koanf:"last_item_css_class"`
}

// ItemConfig is a single menu item. Set either URL (plain href) or Route
// (with optional Params and Anchor).
type ItemConfig struct {
	Label           string         `yaml:"label,omitempty" koanf:"label"`
	URL             string         `yaml:"url,omitempty" koanf:"url"`
	Route           string         `yaml:"route,omitempty" koanf:"route"`
	Params          map[string]any `yaml:"params,omitempty" koanf:"params"`
	Anchor          string         `yaml:"anchor,omitempty" koanf:"anchor"`
	Visible         *bool          `yaml:"visible,omitempty" koanf:"visible"`
	Active          *bool          `yaml:"active,omitempty" koanf:"active"`
	Encode          *bool          `yaml:"encode,omitempty" koanf:"encode"`
	Template        string         `yaml:"template,omitempty" koanf:"template"`
	SubmenuTemplate string         `yaml:"submenu_template,omitempty" koanf:"submenu_template"`
	Options         map[string]any `yaml:"options,omitempty" koanf:"options"`
	Items           []ItemConfig   `yaml:"items,omitempty" koanf:"items"`
}
