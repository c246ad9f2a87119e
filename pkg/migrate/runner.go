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
	"context"

	"github.com/walteh/migraterc/pkg/status"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 🏃 Runner applies a per-file function to a list of paths
type Runner struct {
	jobs int
}

// 🏗️ NewRunner creates a runner; jobs <= 1 runs sequentially
func NewRunner(jobs int) *Runner {
	if jobs < 1 {
		jobs = 1
	}
	return &Runner{jobs: jobs}
}

// FileFunc migrates a single path
type FileFunc func(ctx context.Context, path string) status.FileResult

// 🏃 Run calls fn for every path and emit for every result, in path order
func (r *Runner) Run(ctx context.Context, paths []string, fn FileFunc, emit func(status.FileResult)) error {
	if r.jobs == 1 {
		return r.runSync(ctx, paths, fn, emit)
	}
	return r.runAsync(ctx, paths, fn, emit)
}

// 🔄 runSync processes one file at a time
func (r *Runner) runSync(ctx context.Context, paths []string, fn FileFunc, emit func(status.FileResult)) error {
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return errors.Errorf("migration cancelled: %w", err)
		}
		emit(fn(ctx, p))
	}
	return nil
}

// ⚡ runAsync processes up to r.jobs files at once and emits in order as results arrive.
// On cancellation no new files are started, and every file that did finish is still emitted.
func (r *Runner) runAsync(ctx context.Context, paths []string, fn FileFunc, emit func(status.FileResult)) error {
	results := make([]status.FileResult, len(paths))
	done := make([]chan struct{}, len(paths))
	for i := range done {
		done[i] = make(chan struct{})
	}

	var g errgroup.Group
	g.SetLimit(r.jobs)

	spawned := make(chan struct{})
	go func() {
		defer close(spawned)
		for i, p := range paths {
			if ctx.Err() != nil {
				return
			}
			i, p := i, p
			g.Go(func() error {
				defer close(done[i])
				results[i] = fn(ctx, p)
				return nil
			})
		}
	}()

	stopped := len(paths)
	var cancelled error
	for i := range paths {
		select {
		case <-done[i]:
			emit(results[i])
			continue
		case <-ctx.Done():
			cancelled = ctx.Err()
			stopped = i
		}
		break
	}

	<-spawned
	_ = g.Wait()

	// files already in flight when the run was cancelled may have been written
	for i := stopped; i < len(paths); i++ {
		select {
		case <-done[i]:
			emit(results[i])
		default:
		}
	}

	if cancelled != nil {
		return errors.Errorf("migration cancelled: %w", cancelled)
	}
	return nil
}
