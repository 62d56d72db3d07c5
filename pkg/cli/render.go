package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mchmarny/navmenu/pkg/menu"
	"github.com/mchmarny/navmenu/pkg/route"
)

func newRenderCmd(opts *rootOptions) *cobra.Command {
	var (
		current string
		params  []string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the configured menu for a route",
		Long: `Renders the configured menu as HTML, marking items active against the
given route and request parameters.`,
		Example: `  navmenu render --route product/view --param id=2
  navmenu render --route site/index --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}

			values, err := parseParams(params)
			if err != nil {
				return err
			}

			ctx := &route.Snapshot{
				Path:    strings.Trim(current, "/"),
				Values:  values,
				Aliases: cfg.Aliases(),
				Module:  cfg.Module(),
			}

			m := menu.FromConfig(cfg.ToMenu())
			out := cmd.OutOrStdout()

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(m.Normalize(ctx))
			}

			if err := m.Render(out, ctx); err != nil {
				return fmt.Errorf("rendering menu: %w", err)
			}
			_, err = fmt.Fprintln(out)
			return err
		},
	}

	cmd.Flags().StringVarP(&current, "route", "r", "", "current route, e.g. product/view")
	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "request parameter as key=value, repeatable")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the normalized items as JSON instead of HTML")

	return cmd
}

// parseParams turns key=value pairs into request params. Later keys win.
func parseParams(pairs []string) (map[string]any, error) {
	values := make(map[string]any, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid param %q: expected key=value", p)
		}
		values[k] = v
	}
	return values, nil
}
