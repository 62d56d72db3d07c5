package cli

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mchmarny/navmenu/pkg/menu"
	"github.com/mchmarny/navmenu/pkg/server"
	"github.com/mchmarny/navmenu/pkg/site"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a demo site rendering the menu on every page",
		Long: `Starts an HTTP server with one page per menu route. Each page renders
the menu against its own request, so active items follow navigation.
The normalized menu is also served as JSON at ` + site.APIPath + `.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}

			s, err := site.New(menu.FromConfig(cfg.ToMenu()),
				site.WithTitle(cfg.Server.Title),
				site.WithAliases(cfg.Aliases()),
				site.WithModule(cfg.Module()),
			)
			if err != nil {
				return fmt.Errorf("creating site: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			slog.Info("starting navmenu", "commit", commit, "date", date, "config", opts.configPath)

			return s.Run(ctx,
				server.WithPort(cfg.Server.Port),
				server.WithCORS(cfg.Server.CORSAllowAll),
				server.WithRequestTimeout(cfg.Server.RequestTimeout),
				server.WithShutdownTimeout(cfg.Server.ShutdownTimeout),
			)
		},
	}

	cmd.Flags().IntVar(&port, "port", server.DefaultPort, "port to listen on (overrides server.port)")

	return cmd
}
