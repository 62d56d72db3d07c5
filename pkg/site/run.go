package site

import (
	"context"
	"log/slog"

	"github.com/mchmarny/navmenu/pkg/server"
)

// Run starts the site server and blocks until the context is canceled or an error occurs.
// It registers a page handler for every menu route plus the API, probe and metrics endpoints.
// Options in opt are applied before the site's own options.
func (s *Site) Run(ctx context.Context, opt ...server.Option) error {
	opts := make([]server.Option, 0, len(opt))
	opts = append(opts, opt...)
	opts = append(opts, s.ServerOptions()...)

	slog.Info("starting site",
		"title", s.title,
		"pages", len(s.Paths()))

	return server.New(opts...).Serve(ctx)
}
