package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/migraterc/cmd/migraterc/opts"
)

// NewRunCmd creates a new run command
func NewRunCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Migrate the sources described by a config file",
		Long: `Run loads the config file named by --config (default .migraterc.hcl) and
migrates every source it declares, using its rules and options. Flags given
on the command line are applied on top of the file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if o.ConfigFile == "" {
				o.ConfigFile = opts.DefaultConfigFile
			}

			cfg, err := o.Config(ctx)
			if err != nil {
				return err
			}

			_, err = o.Execute(ctx, cfg)
			return err
		},
	}

	return cmd
}
