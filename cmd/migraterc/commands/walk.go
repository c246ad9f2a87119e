package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/migraterc/cmd/migraterc/opts"
	"github.com/walteh/migraterc/pkg/config"
	"github.com/walteh/migraterc/pkg/source"
)

// NewWalkCmd creates a new walk command
func NewWalkCmd(o *opts.RootOpts) *cobra.Command {
	var (
		extensions []string
		ignore     []string
	)

	cmd := &cobra.Command{
		Use:   "walk [root]",
		Short: "Migrate every matching file under a directory",
		Long: `Walk visits every regular file below root (default "lib") whose name ends
with one of the given extensions and migrates it. Files are visited in
lexical order. A missing root migrates nothing.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			root := config.DefaultWalkRoot
			if len(args) == 1 {
				root = args[0]
			}

			cfg, err := o.Config(ctx)
			if err != nil {
				return err
			}
			cfg.Sources = []source.Args{{
				Kind:       source.KindWalk,
				Root:       root,
				Extensions: extensions,
				Ignore:     ignore,
			}}

			_, err = o.Execute(ctx, cfg)
			return err
		},
	}

	cmd.Flags().StringSliceVarP(&extensions, "ext", "e", source.DefaultExtensions, "file extensions to migrate")
	cmd.Flags().StringSliceVar(&ignore, "ignore", nil, "glob patterns to skip (relative to root)")

	return cmd
}
