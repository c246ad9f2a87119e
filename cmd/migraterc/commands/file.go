package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/migraterc/cmd/migraterc/opts"
	"github.com/walteh/migraterc/pkg/source"
)

// NewFileCmd creates a new file command
func NewFileCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "file <path>",
		Short: "Migrate a single file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := o.Config(ctx)
			if err != nil {
				return err
			}
			cfg.Sources = []source.Args{{Kind: source.KindFile, Path: args[0]}}

			_, err = o.Execute(ctx, cfg)
			return err
		},
	}

	return cmd
}
