// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package migrate

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"strings"
	"syscall"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/walteh/migraterc/pkg/source"
	"github.com/walteh/migraterc/pkg/status"
	"github.com/walteh/migraterc/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 📣 Reporter receives one result per migrated path, in enumeration order
type Reporter interface {
	ReportFile(ctx context.Context, r status.FileResult)
}

// 🔧 Options contains configuration for the migrator
type Options struct {
	// Rules to apply; defaults to text.DefaultRules()
	Rules []text.ReplacementRule
	// Replacer applies the rules; defaults to text.NewSimpleTextReplacer()
	Replacer text.TextReplacer
	// Reporter is told about every file; may be nil
	Reporter Reporter
	// DryRun computes results and diffs without writing
	DryRun bool
	// Backup writes <path>.bak with the original content before overwriting
	Backup bool
	// Jobs is the number of files migrated at once; 0 and 1 mean sequential
	Jobs int
	// Probe lists path substrings for which unchanged files get diagnostic lines
	Probe []string
}

// 🎮 Migrator rewrites files according to a fixed set of rules
type Migrator struct {
	rules     []text.ReplacementRule
	replacer  text.TextReplacer
	reporter  Reporter
	formatter status.FileFormatter
	runner    *Runner
	dryRun    bool
	backup    bool
	probe     []string
}

// 🏭 New creates a migrator, validating its rules
func New(opts Options) (*Migrator, error) {
	if opts.Replacer == nil {
		opts.Replacer = text.NewSimpleTextReplacer()
	}
	if len(opts.Rules) == 0 {
		opts.Rules = text.DefaultRules()
	}
	if opts.Jobs < 0 {
		return nil, errors.Errorf("jobs must not be negative, got %d", opts.Jobs)
	}
	if err := opts.Replacer.ValidateRules(opts.Rules); err != nil {
		return nil, errors.Errorf("validating rules: %w", err)
	}

	return &Migrator{
		rules:     opts.Rules,
		replacer:  opts.Replacer,
		reporter:  opts.Reporter,
		formatter: status.NewDefaultFileFormatter(),
		runner:    NewRunner(opts.Jobs),
		dryRun:    opts.DryRun,
		backup:    opts.Backup,
		probe:     opts.Probe,
	}, nil
}

// 🏃 Run migrates every path the source yields and returns the tallies.
// Per-file failures are part of the summary, not the returned error.
func (m *Migrator) Run(ctx context.Context, src source.Source) (*status.Summary, error) {
	logger := zerolog.Ctx(ctx)
	summary := status.NewSummary()

	paths, err := src.Paths(ctx)
	if err != nil {
		return summary, errors.Errorf("enumerating %s: %w", src, err)
	}

	logger.Debug().Str("source", src.String()).Int("files", len(paths)).Bool("dry_run", m.dryRun).Msg("starting migration")

	err = m.runner.Run(ctx, paths, m.MigrateFile, func(r status.FileResult) {
		summary.Add(r)
		if m.reporter != nil {
			m.reporter.ReportFile(ctx, r)
		}
	})
	if err != nil {
		return summary, err
	}

	logger.Debug().
		Int("total", summary.Total()).
		Int("updated", summary.Count(status.StatusUpdated)).
		Int("errors", summary.Count(status.StatusError)).
		Msg("migration complete")

	return summary, nil
}

// 📄 MigrateFile migrates a single path. It never returns an error: every
// failure is folded into the result.
func (m *Migrator) MigrateFile(ctx context.Context, path string) status.FileResult {
	logger := zerolog.Ctx(ctx).With().Str("path", path).Logger()
	res := status.FileResult{Path: path}

	fail := func(err error) status.FileResult {
		logger.Debug().Err(err).Msg("migration failed")
		res.Status = status.StatusError
		res.Err = err
		return res
	}

	info, err := os.Stat(path)
	if err != nil {
		// a parent that is a regular file means the path cannot exist
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			res.Status = status.StatusNotFound
			return res
		}
		return fail(errors.Errorf("checking file: %w", err))
	}
	if !info.Mode().IsRegular() {
		return fail(errors.Errorf("not a regular file (%s)", info.Mode().Type()))
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fail(errors.Errorf("reading file: %w", err))
	}
	if !utf8.Valid(content) {
		return fail(errors.Errorf("decoding file: invalid utf-8"))
	}

	result, err := m.replacer.ReplaceText(ctx, path, bytes.NewReader(content), m.rules)
	if err != nil {
		return fail(errors.Errorf("replacing text: %w", err))
	}

	if !result.WasModified {
		res.Status = status.StatusUnchanged
		res.Probe = m.probeLines(path, content)
		return res
	}

	res.Replacements = result.ReplacementCount

	if m.dryRun {
		res.Status = status.StatusUpdated
		res.Diff = lineDiff(path, string(result.OriginalContent), string(result.ModifiedContent))
		return res
	}

	if m.backup {
		if err := os.WriteFile(path+".bak", content, info.Mode().Perm()); err != nil {
			return fail(errors.Errorf("writing backup: %w", err))
		}
	}

	if err := os.WriteFile(path, result.ModifiedContent, info.Mode().Perm()); err != nil {
		return fail(errors.Errorf("writing file: %w", err))
	}

	logger.Debug().Int("replacements", res.Replacements).Msg("file updated")
	res.Status = status.StatusUpdated
	return res
}

// 🔍 probeLines re-checks an unchanged file whose path matches a probe
func (m *Migrator) probeLines(path string, content []byte) []string {
	if !m.probed(path) {
		return nil
	}

	var lines []string
	for _, rule := range m.rules {
		stillPresent := rule.AppliesTo(path) && bytes.Contains(content, []byte(rule.FromText))
		lines = append(lines, m.formatter.FormatProbe(path, ruleName(rule), rule.FromText, stillPresent)...)
	}
	return lines
}

func (m *Migrator) probed(path string) bool {
	for _, p := range m.probe {
		if p != "" && strings.Contains(path, p) {
			return true
		}
	}
	return false
}

// ruleName turns ".withOpacity(" into "withOpacity"
func ruleName(rule text.ReplacementRule) string {
	name := strings.Trim(rule.FromText, ".( \t")
	if name == "" {
		return rule.FromText
	}
	return name
}
