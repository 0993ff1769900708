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
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"github.com/walteh/permpatch/pkg/campaign"
	"github.com/walteh/permpatch/pkg/status"
)

// 🎯 Logger prints one line per file to the console and mirrors every
// event to zerolog
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
	diffs   bool
}

var _ campaign.Reporter = (*Logger)(nil)

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
	}
}

// ShowDiffs makes LogResult print the diff attached to each result.
func (l *Logger) ShowDiffs(show bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.diffs = show
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

// 📝 LogResult prints a file's result line
func (l *Logger) LogResult(ctx context.Context, r status.Result) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, status.FormatResult(r))
	if l.diffs && r.Diff != "" {
		l.writeDiff(r.Diff)
	}

	l.zlog.Debug().
		Err(r.Err).
		Str("file", r.Path).
		Str("params", r.Params.String()).
		Str("outcome", r.Outcome.String()).
		Strs("steps", r.Steps).
		Msg("file processed")
}

// writeDiff colors a unified diff. Callers hold the lock.
func (l *Logger) writeDiff(diff string) {
	for _, line := range strings.Split(strings.TrimRight(diff, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			line = color.New(color.Bold).Sprint(line)
		case strings.HasPrefix(line, "@@"):
			line = color.CyanString(line)
		case strings.HasPrefix(line, "+"):
			line = color.GreenString(line)
		case strings.HasPrefix(line, "-"):
			line = color.RedString(line)
		}
		fmt.Fprintf(l.console, "        %s\n", line)
	}
}

// 📊 Summary prints the run counts as a table
func (l *Logger) Summary(s campaign.Summary) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Outcome", "Files"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	table.Append([]string{"Applied", fmt.Sprintf("%d", s.Applied)})
	table.Append([]string{"Skipped", fmt.Sprintf("%d", s.Skipped)})
	table.Append([]string{"Failed", fmt.Sprintf("%d", s.Failed)})
	table.SetFooter([]string{"Total", fmt.Sprintf("%d", s.Total())})
	table.Render()

	fmt.Fprintf(l.console, "\n%s", buf.String())

	l.zlog.Info().
		Int("applied", s.Applied).
		Int("skipped", s.Skipped).
		Int("failed", s.Failed).
		Int("total", s.Total()).
		Msg("summary")
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header prints the banner of a run
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("permpatch")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.print("✅", color.FgGreen, msg)
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.print("⚠️ ", color.FgYellow, msg)
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.print("❌", color.FgRed, msg)
	l.zlog.Error().Msg(msg)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.print("ℹ️ ", color.FgCyan, msg)
	l.zlog.Info().Msg(msg)
}

func (l *Logger) print(prefix string, attr color.Attribute, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "%s %s\n", prefix, color.New(attr).Sprint(msg))
}
