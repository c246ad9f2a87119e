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

package status

import (
	"sync"
)

// 📊 FileStatus represents the outcome of migrating a single file
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusUpdated              // File content changed and was written back
	StatusUnchanged            // No rule matched, file untouched
	StatusNotFound             // Path does not exist
	StatusError                // Stat, open, read, decode or write failed
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusUpdated:
		return "updated"
	case StatusUnchanged:
		return "no-change"
	case StatusNotFound:
		return "not-found"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// 📄 FileResult is the outcome of migrating one path
type FileResult struct {
	Path         string     // Path as enumerated by the source
	Status       FileStatus // Final outcome
	Replacements int        // Number of occurrences replaced
	Err          error      // Underlying error for StatusError
	Diff         string     // Preview of the change, set on dry runs

	// Probe holds diagnostic lines emitted after the outcome line
	Probe []string
}

// 📈 Summary tallies outcomes across a run
type Summary struct {
	mu     sync.Mutex
	counts map[FileStatus]int
	total  int

	Replacements int
}

// 🏭 NewSummary creates an empty summary
func NewSummary() *Summary {
	return &Summary{
		counts: make(map[FileStatus]int),
	}
}

// Add records a file result
func (s *Summary) Add(r FileResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counts[r.Status]++
	s.total++
	s.Replacements += r.Replacements
}

// Count returns the number of files that ended in st
func (s *Summary) Count(st FileStatus) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[st]
}

// Total returns the number of files recorded
func (s *Summary) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// HasErrors reports whether any file ended in StatusError
func (s *Summary) HasErrors() bool {
	return s.Count(StatusError) > 0
}
