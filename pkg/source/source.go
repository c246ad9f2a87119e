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

package source

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// Source kinds
const (
	KindWalk = "walk"
	KindList = "list"
	KindFile = "file"
)

// DefaultExtensions is the extension filter used when a walk does not name one
var DefaultExtensions = []string{".dart"}

// 🔌 Source yields candidate paths in the order they should be processed
type Source interface {
	// 📂 Paths returns the paths to migrate
	Paths(ctx context.Context) ([]string, error)

	// 📝 String describes the source for logs
	String() string
}

// 📦 Args describes a source as it appears in configuration
type Args struct {
	Kind       string   `json:"kind" yaml:"kind" hcl:"kind,label"`
	Root       string   `json:"root,omitempty" yaml:"root,omitempty" hcl:"root,optional"`
	Extensions []string `json:"extensions,omitempty" yaml:"extensions,omitempty" hcl:"extensions,optional"`
	Ignore     []string `json:"ignore,omitempty" yaml:"ignore,omitempty" hcl:"ignore,optional"`
	Paths      []string `json:"paths,omitempty" yaml:"paths,omitempty" hcl:"paths,optional"`
	Path       string   `json:"path,omitempty" yaml:"path,omitempty" hcl:"path,optional"`
}

// 🏭 Factory creates a source from its arguments
type Factory func(ctx context.Context, args Args) (Source, error)

var (
	// 🗺️ factories is a map of source kinds to factories
	factories = make(map[string]Factory)
)

// 📝 Register registers a source factory
func Register(kind string, factory Factory) {
	factories[kind] = factory
}

// Kinds returns the registered source kinds, sorted
func Kinds() []string {
	kinds := make([]string, 0, len(factories))
	for k := range factories {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// 🎯 New creates a source by kind
func New(ctx context.Context, args Args) (Source, error) {
	factory, ok := factories[args.Kind]
	if !ok {
		return nil, errors.Errorf("unknown source kind %q (want one of %s)", args.Kind, strings.Join(Kinds(), ", "))
	}
	return factory(ctx, args)
}

// 🔍 Validate checks that the arguments are complete for their kind
func (a Args) Validate() error {
	switch a.Kind {
	case KindWalk:
		if a.Root == "" {
			return errors.Errorf("walk source: root is required")
		}
	case KindList:
		if len(a.Paths) == 0 {
			return errors.Errorf("list source: paths is required")
		}
	case KindFile:
		if a.Path == "" {
			return errors.Errorf("file source: path is required")
		}
	case "":
		return errors.Errorf("source kind is required")
	default:
		return errors.Errorf("unknown source kind %q", a.Kind)
	}
	return nil
}

// 📝 String returns a string representation of the args
func (a Args) String() string {
	switch a.Kind {
	case KindWalk:
		return fmt.Sprintf("walk %s [%s]", a.Root, strings.Join(a.Extensions, ","))
	case KindList:
		return fmt.Sprintf("list (%d paths)", len(a.Paths))
	case KindFile:
		return fmt.Sprintf("file %s", a.Path)
	default:
		return a.Kind
	}
}

// Multi concatenates sources, keeping each source's order
type Multi []Source

// Paths implements Source.Paths
func (m Multi) Paths(ctx context.Context) ([]string, error) {
	var all []string
	for _, s := range m {
		paths, err := s.Paths(ctx)
		if err != nil {
			return nil, errors.Errorf("enumerating %s: %w", s, err)
		}
		all = append(all, paths...)
	}
	return all, nil
}

func (m Multi) String() string {
	parts := make([]string, 0, len(m))
	for _, s := range m {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, " + ")
}
