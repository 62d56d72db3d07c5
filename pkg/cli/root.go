// Package cli implements the navmenu command line.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mchmarny/navmenu/pkg/config"
	"github.com/mchmarny/navmenu/pkg/logger"
)

const (
	appName = "navmenu"

	// DefaultConfigFile is the config path used when --config is not set.
	DefaultConfigFile = "navmenu.yml"
)

var (
	version = "dev"     // Set at build time via -ldflags "-X github.com/mchmarny/navmenu/pkg/cli.version=version"
	commit  = "none"    // Set at build time via -ldflags "-X github.com/mchmarny/navmenu/pkg/cli.commit=commit"
	date    = "unknown" // Set at build time via -ldflags "-X github.com/mchmarny/navmenu/pkg/cli.date=date"
)

// rootOptions are the persistent flags shared by all commands.
type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string
}

// NewRootCommand builds the navmenu command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Render navigation menus as nested HTML lists",
		Long: `navmenu renders a hierarchical navigation menu as nested HTML lists.
Items are filtered by visibility, marked active against the current route
and rendered through configurable templates. The menu tree and widget
defaults are read from a YAML config file.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger.SetDefault(cmd.ErrOrStderr(), logger.Options{
				Module:  appName,
				Version: version,
				Level:   opts.logLevel,
				Format:  opts.logFormat,
			})
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", DefaultConfigFile, "config file path")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (default $"+logger.EnvVarLogLevel+" or config log_level)")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "log format: json or text (default $"+logger.EnvVarLogFormat+")")

	cmd.AddCommand(
		newRenderCmd(opts),
		newServeCmd(opts),
		newInitCmd(opts),
		newVersionCmd(),
	)

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().ExecuteContext(context.Background())
}

// loadConfig loads and validates the config file. The config log level
// applies unless --log-level or LOG_LEVEL is set.
func (o *rootOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", o.configPath, err)
	}

	if o.logLevel == "" && os.Getenv(logger.EnvVarLogLevel) == "" && cfg.LogLevel != "" {
		logger.SetDefault(cmd.ErrOrStderr(), logger.Options{
			Module:  appName,
			Version: version,
			Level:   cfg.LogLevel,
			Format:  o.logFormat,
		})
	}

	return cfg, nil
}
