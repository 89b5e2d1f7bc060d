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
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/renamerc/pkg/rename"
	"github.com/walteh/renamerc/pkg/status"
)

// 🎯 Logger handles user-facing console output mirrored into zerolog
type Logger struct {
	zlog      zerolog.Logger
	console   io.Writer
	formatter status.Formatter
	color     bool
	mu        sync.Mutex
}

// 🏭 New creates a new logger writing user output to console. The color
// setting is explicit, matching the formatter's config, so that --no-color
// reaches every line the logger prints rather than depending on fatih/color's
// process-global state.
func New(console io.Writer, level zerolog.Level, formatter status.Formatter, colorEnabled bool) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:      zlog,
		console:   console,
		formatter: formatter,
		color:     colorEnabled,
	}
}

// paint colorizes s when color is enabled
func (l *Logger) paint(attrs []color.Attribute, s string) string {
	c := color.New(attrs...)
	if l.color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}

// 📝 LogPair logs one proposed rename for the preview listing
func (l *Logger) LogPair(ctx context.Context, pair rename.Pair) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, l.formatter.FormatPair(pair))

	l.zlog.Debug().
		Str("source", pair.Source).
		Str("target", pair.Target).
		Int("replacements", pair.Replacements).
		Msg("proposed rename")
}

// 📝 LogConflicts logs the full conflict report
func (l *Logger) LogConflicts(ctx context.Context, report rename.ConflictReport) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, l.formatter.FormatConflicts(report))

	l.zlog.Warn().
		Int("existing_targets", len(report.ExistingTargets)).
		Int("duplicate_targets", len(report.DuplicateGroups)).
		Msg("conflicts detected")
}

// 📝 LogResult logs the outcome of one attempted rename
func (l *Logger) LogResult(ctx context.Context, result rename.Result) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, l.formatter.FormatResult(result))

	event := l.zlog.Info()
	if !result.Success() {
		event = l.zlog.Error().Err(result.Err).Str("reason", result.Reason.String())
	}
	event.
		Str("source", result.Pair.Source).
		Str("target", result.Pair.Target).
		Msg("rename attempted")
}

// 📝 LogSummary logs the final counts for the batch
func (l *Logger) LogSummary(ctx context.Context, summary rename.Summary) {
	if summary.Failed > 0 {
		l.Warning(l.formatter.FormatSummary(summary))
		return
	}
	l.Success(l.formatter.FormatSummary(summary))
}

// 📝 LogProgress logs apply progress
func (l *Logger) LogProgress(current, total int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console, l.formatter.FormatProgress(current, total))
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	nameText := l.paint([]color.Attribute{color.Bold, color.FgCyan}, "renamerc")
	fmt.Fprintf(l.console, "\n%s %s\n\n", nameText, l.paint([]color.Attribute{color.Faint}, "• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", l.paint([]color.Attribute{color.FgGreen}, msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", l.paint([]color.Attribute{color.FgYellow}, msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", l.paint([]color.Attribute{color.FgRed}, msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", l.paint([]color.Attribute{color.FgCyan}, msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// 📝 Successf logs a formatted success message
func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
