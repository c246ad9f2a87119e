package main

import (
	"context"
	"io"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/migraterc/cmd/migraterc/commands"
	"github.com/walteh/migraterc/cmd/migraterc/opts"
	"github.com/walteh/migraterc/pkg/log"
)

// newRootCmd creates the root command with every subcommand attached
func newRootCmd(stdout, stderr io.Writer) (*cobra.Command, *opts.RootOpts) {
	o := &opts.RootOpts{
		Stdout: stdout,
		Stderr: stderr,
		Logger: log.New(stdout, stderr, zerolog.WarnLevel),
	}

	cmd := &cobra.Command{
		Use:   "migraterc",
		Short: "Rewrite deprecated call sites in source files",
		Long: `migraterc replaces every ".withOpacity(" with ".withValues(alpha: " in the
selected files, writing a file back only when its content changed.

With no arguments it walks ./lib for .dart files.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cmd, o)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := o.Config(ctx)
			if err != nil {
				return err
			}
			_, err = o.Execute(ctx, cfg)
			return err
		},
	}

	addRootFlags(cmd, o)

	cmd.AddCommand(
		commands.NewWalkCmd(o),
		commands.NewListCmd(o),
		commands.NewFileCmd(o),
		commands.NewRunCmd(o),
		newVersionCmd(stdout),
	)

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	return cmd, o
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&o.ConfigFile, "config", "c", "", "config file path (.hcl, .yaml, .yml or .json)")
	flags.BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
	flags.BoolVar(&o.DryRun, "dry-run", false, "report and diff changes without writing")
	flags.BoolVar(&o.Backup, "backup", false, "write <file>.bak before overwriting")
	flags.IntVarP(&o.Jobs, "jobs", "j", 0, "number of files migrated at once (default 1)")
	flags.StringSliceVar(&o.Probe, "probe", nil, "print diagnostics for unchanged files whose path contains this text")
	flags.StringVarP(&o.Output, "output", "o", "", "file line style: plain or table")
	flags.BoolVar(&o.NoColor, "no-color", false, "disable colored output")
	flags.BoolVar(&o.Strict, "strict", false, "exit non-zero when any file failed")
}

// setupLogging configures zerolog and the console logger based on flags
func setupLogging(cmd *cobra.Command, o *opts.RootOpts) {
	// per-file lines go to stdout; stderr gets warnings unless --debug
	level := zerolog.WarnLevel
	if o.Debug {
		level = zerolog.DebugLevel
	}

	if o.NoColor {
		color.NoColor = true
		pterm.DisableColor()
	}

	// rebuilt now that --debug and --no-color are known
	logger := log.New(o.Stdout, o.Stderr, level)
	o.Logger = logger

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logger.Zerolog().WithContext(ctx)
	ctx = log.NewContext(ctx, logger)
	cmd.SetContext(ctx)
}
