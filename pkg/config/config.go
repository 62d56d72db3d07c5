// Package config loads the navmenu configuration: widget defaults, the menu
// item tree, route context settings and the demo server settings.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

const (
	// EnvPrefix prefixes environment variable overrides.
	EnvPrefix = "NAVMENU_"

	// envNestingDelim separates nesting levels in environment variable names.
	envNestingDelim = "__"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (NAVMENU_*). A double underscore descends
// one level: NAVMENU_MENU__ACTIVE_CSS_CLASS sets menu.active_css_class.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, envNestingDelim, ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
// Menu items are checked recursively; the error names the item path.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d: must be between 0 and 65535", c.Server.Port)
	}

	if c.Server.RequestTimeout < 0 || c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("invalid server timeouts: must not be negative")
	}

	for alias := range c.Route.Aliases {
		if !strings.HasPrefix(alias, "@") {
			return fmt.Errorf("invalid route alias %q: must start with @", alias)
		}
	}

	return validateItems(c.Menu.Items, "menu.items")
}

func validateItems(items []ItemConfig, path string) error {
	for i, item := range items {
		at := fmt.Sprintf("%s[%d]", path, i)

		if item.URL != "" && item.Route != "" {
			return fmt.Errorf("%s: url and route are mutually exclusive", at)
		}

		if item.Route == "" && (len(item.Params) > 0 || item.Anchor != "") {
			return fmt.Errorf("%s: params and anchor require a route", at)
		}

		if err := validateItems(item.Items, at+".items"); err != nil {
			return err
		}
	}

	return nil
}
