package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/migraterc/cmd/migraterc/opts"
	"github.com/walteh/migraterc/pkg/source"
)

// NewListCmd creates a new list command
func NewListCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <path>...",
		Short: "Migrate an explicit list of files",
		Long: `List migrates each path in the order given. Missing paths are reported as
not found and the run continues.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := o.Config(ctx)
			if err != nil {
				return err
			}
			cfg.Sources = []source.Args{{Kind: source.KindList, Paths: args}}

			_, err = o.Execute(ctx, cfg)
			return err
		},
	}

	return cmd
}
