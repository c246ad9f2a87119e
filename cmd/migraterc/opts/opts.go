package opts

import (
	"context"
	"io"

	"github.com/walteh/migraterc/pkg/config"
	"github.com/walteh/migraterc/pkg/log"
	"github.com/walteh/migraterc/pkg/migrate"
	"github.com/walteh/migraterc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// DefaultConfigFile is read by the run command when --config is not given
const DefaultConfigFile = ".migraterc.hcl"

// ErrFilesFailed is returned in strict mode when at least one file errored
var ErrFilesFailed = errors.New("one or more files failed to migrate")

// RootOpts contains shared options used by all commands
type RootOpts struct {
	ConfigFile string
	Debug      bool
	DryRun     bool
	Backup     bool
	Jobs       int
	Probe      []string
	Output     string
	NoColor    bool
	Strict     bool

	Stdout io.Writer
	Stderr io.Writer
	Logger *log.Logger
}

// Config returns the configuration file named by --config, or the built-in
// default when none is given
func (o *RootOpts) Config(ctx context.Context) (*config.Config, error) {
	if o.ConfigFile == "" {
		return config.Default(), nil
	}
	cfg, err := config.LoadConfig(ctx, o.ConfigFile)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// Apply overlays command line flags onto cfg. Flags only ever turn
// features on; they never clear what the file enables.
func (o *RootOpts) Apply(cfg *config.Config) {
	cfg.DryRun = cfg.DryRun || o.DryRun
	cfg.Backup = cfg.Backup || o.Backup
	cfg.Strict = cfg.Strict || o.Strict
	if o.Jobs > 0 {
		cfg.Jobs = o.Jobs
	}
	if len(o.Probe) > 0 {
		cfg.Probe = append(cfg.Probe, o.Probe...)
	}
	if o.Output != "" {
		cfg.Output = o.Output
	}
}

// Execute runs a migration for cfg. Per-file lines go to Stdout; the header,
// summary table and closing message go to Stderr.
func (o *RootOpts) Execute(ctx context.Context, cfg *config.Config) (*status.Summary, error) {
	o.Apply(cfg)

	if err := config.Validate(ctx, cfg); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	style, err := log.ParseStyle(cfg.Output)
	if err != nil {
		return nil, err
	}
	logger := o.Logger.WithStyle(style)

	src, err := cfg.Source(ctx)
	if err != nil {
		return nil, errors.Errorf("creating source: %w", err)
	}

	m, err := migrate.New(migrate.Options{
		Rules:    cfg.Rules,
		Reporter: logger,
		DryRun:   cfg.DryRun,
		Backup:   cfg.Backup,
		Jobs:     cfg.Jobs,
		Probe:    cfg.Probe,
	})
	if err != nil {
		return nil, errors.Errorf("creating migrator: %w", err)
	}

	header := src.String()
	if cfg.DryRun {
		header += " (dry run)"
	}
	logger.Header(header)

	summary, err := m.Run(ctx, src)
	if err != nil {
		return summary, errors.Errorf("running migration: %w", err)
	}

	logger.Summary(summary)

	if failed := summary.Count(status.StatusError); failed > 0 {
		logger.Warningf("%d of %d files failed", failed, summary.Total())
	} else {
		logger.Successf("%d files checked, %d updated", summary.Total(), summary.Count(status.StatusUpdated))
	}

	if cfg.Strict && summary.HasErrors() {
		return summary, ErrFilesFailed
	}
	return summary, nil
}
