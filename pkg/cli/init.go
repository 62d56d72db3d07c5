package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mchmarny/navmenu/pkg/config"
)

func newInitCmd(opts *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a sample navmenu configuration",
		Long:  `Writes a sample menu tree and the widget defaults to the --config path.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := os.Stat(opts.configPath); err == nil && !force {
				return fmt.Errorf("config %s already exists, use --force to overwrite", opts.configPath)
			}

			if err := config.SampleConfig().Save(opts.configPath); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", opts.configPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	return cmd
}
