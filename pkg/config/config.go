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

package config

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/migraterc/pkg/source"
	"github.com/walteh/migraterc/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// DefaultWalkRoot is the directory walked when no source is configured
const DefaultWalkRoot = "lib"

// 📚 Config represents the complete configuration
type Config struct {
	Sources []source.Args          `json:"sources" yaml:"sources" hcl:"source,block"`
	Rules   []text.ReplacementRule `json:"rules,omitempty" yaml:"rules,omitempty" hcl:"rule,block"`
	DryRun  bool                   `json:"dry_run,omitempty" yaml:"dry_run,omitempty" hcl:"dry_run,optional"`
	Backup  bool                   `json:"backup,omitempty" yaml:"backup,omitempty" hcl:"backup,optional"`
	Jobs    int                    `json:"jobs,omitempty" yaml:"jobs,omitempty" hcl:"jobs,optional"`
	Probe   []string               `json:"probe,omitempty" yaml:"probe,omitempty" hcl:"probe,optional"`
	Output  string                 `json:"output,omitempty" yaml:"output,omitempty" hcl:"output,optional"`
	Strict  bool                   `json:"strict,omitempty" yaml:"strict,omitempty" hcl:"strict,optional"`

	location string
}

// 🎯 Default returns the configuration used when no file is given:
// walk lib/ for .dart files and apply the built-in rule
func Default() *Config {
	return &Config{
		Sources: []source.Args{
			{
				Kind:       source.KindWalk,
				Root:       DefaultWalkRoot,
				Extensions: append([]string(nil), source.DefaultExtensions...),
			},
		},
		Rules: text.DefaultRules(),
		Jobs:  1,
	}
}

// Location returns the file the config was loaded from, if any
func (cfg *Config) Location() string {
	return cfg.location
}

// 🔍 Validate checks the configuration and fills in defaults
func Validate(ctx context.Context, cfg *Config) error {
	if len(cfg.Sources) == 0 {
		return errors.Errorf("at least one source is required")
	}
	for i, src := range cfg.Sources {
		if err := src.Validate(); err != nil {
			return errors.Errorf("source %d: %w", i, err)
		}
	}

	if len(cfg.Rules) == 0 {
		cfg.Rules = text.DefaultRules()
	}
	if err := text.NewSimpleTextReplacer().ValidateRules(cfg.Rules); err != nil {
		return errors.Errorf("rules: %w", err)
	}

	if cfg.Jobs < 0 {
		return errors.Errorf("jobs must not be negative, got %d", cfg.Jobs)
	}
	if cfg.Jobs == 0 {
		cfg.Jobs = 1
	}

	switch strings.ToLower(cfg.Output) {
	case "", "plain", "table":
	default:
		return errors.Errorf("output must be plain or table, got %q", cfg.Output)
	}

	zerolog.Ctx(ctx).Debug().Int("sources", len(cfg.Sources)).Int("rules", len(cfg.Rules)).Msg("config validated")
	return nil
}

// 📂 Source builds the combined source for every configured entry
func (cfg *Config) Source(ctx context.Context) (source.Source, error) {
	var srcs source.Multi
	for i, args := range cfg.Sources {
		src, err := source.New(ctx, args)
		if err != nil {
			return nil, errors.Errorf("source %d: %w", i, err)
		}
		srcs = append(srcs, src)
	}
	if len(srcs) == 1 {
		return srcs[0], nil
	}
	return srcs, nil
}

// resolve makes relative source paths relative to dir
func (cfg *Config) resolve(dir string) {
	if dir == "" || dir == "." {
		return
	}
	join := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}
	for i := range cfg.Sources {
		s := &cfg.Sources[i]
		s.Root = join(s.Root)
		s.Path = join(s.Path)
		for j := range s.Paths {
			s.Paths[j] = join(s.Paths[j])
		}
	}
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	parts := make([]string, 0, len(cfg.Sources))
	for _, s := range cfg.Sources {
		parts = append(parts, s.String())
	}
	return fmt.Sprintf("%s (%d rules)", strings.Join(parts, " + "), len(cfg.Rules))
}
