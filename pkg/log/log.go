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

package log

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/migraterc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🎨 Style selects how file results are printed
type Style string

const (
	// StylePlain prints one sentence per file, e.g. "Updated lib/main.dart"
	StylePlain Style = "plain"
	// StyleTable prints aligned, colored rows
	StyleTable Style = "table"
)

// ParseStyle converts a flag value to a Style
func ParseStyle(s string) (Style, error) {
	switch Style(strings.ToLower(s)) {
	case StylePlain, "":
		return StylePlain, nil
	case StyleTable:
		return StyleTable, nil
	default:
		return "", errors.Errorf("unknown output style %q (want plain or table)", s)
	}
}

// 🎯 Logger writes per-file lines to a console and everything else (headers,
// summaries, messages and structured zerolog events) to a diagnostic writer
type Logger struct {
	zlog      zerolog.Logger
	console   io.Writer
	diag      io.Writer
	style     Style
	formatter status.FileFormatter
	mu        sync.Mutex
}

// 🏭 New creates a new logger; structured events go to diag at the given level
func New(console, diag io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = diag
		w.NoColor = color.NoColor
	})).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:      zlog,
		console:   console,
		diag:      diag,
		style:     StylePlain,
		formatter: status.NewDefaultFileFormatter(),
	}
}

// WithStyle sets the file line style
func (l *Logger) WithStyle(s Style) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.style = s
	return l
}

// Zerolog returns the structured logger
func (l *Logger) Zerolog() *zerolog.Logger {
	return &l.zlog
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 ReportFile prints the outcome of one file, then any probe lines and diff
func (l *Logger) ReportFile(ctx context.Context, r status.FileResult) {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch l.style {
	case StyleTable:
		fmt.Fprintln(l.console, status.FormatFileLine(r))
	default:
		fmt.Fprintln(l.console, l.formatter.FormatResult(r))
	}

	for _, line := range r.Probe {
		if strings.HasPrefix(line, "WARNING:") {
			fmt.Fprintln(l.console, color.YellowString("%s", line))
			l.zlog.Warn().Str("file", r.Path).Msg(line)
			continue
		}
		fmt.Fprintln(l.console, line)
	}

	if r.Diff != "" {
		for _, line := range strings.Split(strings.TrimSuffix(r.Diff, "\n"), "\n") {
			switch {
			case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
				fmt.Fprintln(l.console, color.New(color.Bold).Sprint(line))
			case strings.HasPrefix(line, "+"):
				fmt.Fprintln(l.console, color.GreenString("%s", line))
			case strings.HasPrefix(line, "-"):
				fmt.Fprintln(l.console, color.RedString("%s", line))
			default:
				fmt.Fprintln(l.console, line)
			}
		}
	}

	event := l.zlog.Debug()
	if r.Status == status.StatusError {
		event = l.zlog.Error().Err(r.Err)
	}
	event.
		Str("file", r.Path).
		Str("status", r.Status.String()).
		Int("replacements", r.Replacements).
		Msg("file migrated")
}

// 📊 Summary prints a table of outcome tallies
func (l *Logger) Summary(s *status.Summary) {
	l.mu.Lock()
	defer l.mu.Unlock()

	data := pterm.TableData{
		{"status", "files"},
		{status.StatusUpdated.String(), fmt.Sprint(s.Count(status.StatusUpdated))},
		{status.StatusUnchanged.String(), fmt.Sprint(s.Count(status.StatusUnchanged))},
		{status.StatusNotFound.String(), fmt.Sprint(s.Count(status.StatusNotFound))},
		{status.StatusError.String(), fmt.Sprint(s.Count(status.StatusError))},
		{"total", fmt.Sprint(s.Total())},
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		l.zlog.Warn().Err(err).Msg("rendering summary table")
		return
	}
	fmt.Fprintln(l.diag, table)

	l.zlog.Info().
		Int("total", s.Total()).
		Int("updated", s.Count(status.StatusUpdated)).
		Int("unchanged", s.Count(status.StatusUnchanged)).
		Int("not_found", s.Count(status.StatusNotFound)).
		Int("errors", s.Count(status.StatusError)).
		Int("replacements", s.Replacements).
		Msg("summary")
}

// 📝 Header logs a header.
// Header and the message helpers already print to diag; their zerolog copy is debug only.
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("migraterc")
	fmt.Fprintf(l.diag, "%s %s\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Debug().Str("kind", "info").Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.diag, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Debug().Str("kind", "info").Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.diag, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Debug().Str("kind", "warn").Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.diag, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Debug().Str("kind", "error").Msg(msg)
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
