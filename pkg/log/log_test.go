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
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/permpatch/pkg/campaign"
	"github.com/walteh/permpatch/pkg/config"
	"github.com/walteh/permpatch/pkg/status"
	"gitlab.com/tozd/go/errors"
)

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "log_applied_result",
			op: func(t *testing.T, logger *Logger) {
				logger.LogResult(context.Background(), status.Result{
					Path:    "jabatan/page.tsx",
					Params:  config.Params{Resource: "jabatan"},
					Outcome: status.Applied,
				})
			},
			wantLogs: []string{
				"✓ jabatan/page.tsx                    jabatan              applied",
			},
		},
		{
			name: "log_failed_result",
			op: func(t *testing.T, logger *Logger) {
				logger.LogResult(context.Background(), status.Result{
					Path:    "cuti/page.tsx",
					Params:  config.Params{Resource: "cuti"},
					Outcome: status.Failed,
					Err:     errors.New("writing file: disk full"),
				})
			},
			wantLogs: []string{
				"✗ cuti/page.tsx                       cuti                 failed writing file: disk full",
			},
		},
		{
			name: "log_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Infof("info %s", "message")
				logger.Warning("warning message")
				logger.Error("error message")
				logger.Success("success message")
			},
			wantLogs: []string{
				"ℹ️  info message",
				"⚠️  warning message",
				"❌ error message",
				"✅ success message",
			},
		},
		{
			name: "log_header",
			op: func(t *testing.T, logger *Logger) {
				logger.Header("applying permissions")
			},
			wantLogs: []string{
				"permpatch • applying permissions",
			},
		},
		{
			name: "log_newline",
			op: func(t *testing.T, logger *Logger) {
				logger.Infof("first")
				logger.LogNewline()
				logger.Infof("second")
			},
			wantLogs: []string{
				"ℹ️  first",
				"",
				"ℹ️  second",
			},
		},
		{
			name: "diff_hidden_by_default",
			op: func(t *testing.T, logger *Logger) {
				logger.LogResult(context.Background(), status.Result{
					Path:    "a.tsx",
					Params:  config.Params{Resource: "a"},
					Outcome: status.Applied,
					Diff:    "--- a/a.tsx\n+++ b/a.tsx\n@@ -1 +1,2 @@\n+x\n",
				})
			},
			wantLogs: []string{
				"✓ a.tsx                               a                    applied",
			},
		},
		{
			name: "diff_shown",
			op: func(t *testing.T, logger *Logger) {
				logger.ShowDiffs(true)
				logger.LogResult(context.Background(), status.Result{
					Path:    "a.tsx",
					Params:  config.Params{Resource: "a"},
					Outcome: status.Applied,
					Diff:    "--- a/a.tsx\n+++ b/a.tsx\n@@ -1 +1,2 @@\n one\n+two\n",
				})
			},
			wantLogs: []string{
				"✓ a.tsx                               a                    applied",
				"--- a/a.tsx",
				"+++ b/a.tsx",
				"@@ -1 +1,2 @@",
				"one",
				"+two",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create buffer for console output
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.Disabled)

			// Perform operation
			tt.op(t, logger)

			// Check output
			output := strings.TrimSpace(buf.String())
			lines := strings.Split(output, "\n")

			require.Equal(t, len(tt.wantLogs), len(lines), "number of log lines should match")
			for i, want := range tt.wantLogs {
				assert.Equal(t, want, strings.TrimSpace(lines[i]), "log line %d should match", i)
			}
		})
	}
}

func TestLogResultMirrorsAtDebug(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	zbuf := &bytes.Buffer{}
	logger := New(io.Discard, zerolog.InfoLevel)
	logger.zlog = zerolog.New(zbuf).Level(zerolog.InfoLevel)

	failed := status.Result{
		Path:    "cuti/page.tsx",
		Params:  config.Params{Resource: "cuti"},
		Outcome: status.Failed,
		Err:     errors.New("disk full"),
	}

	logger.LogResult(context.Background(), failed)
	assert.Empty(t, zbuf.String(), "the console line is the only report outside debug mode")

	logger.zlog = zerolog.New(zbuf).Level(zerolog.DebugLevel)
	logger.LogResult(context.Background(), failed)
	assert.Contains(t, zbuf.String(), `"error":"disk full"`)
	assert.Contains(t, zbuf.String(), `"outcome":"failed"`)
}

func TestSummaryTable(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	buf := &bytes.Buffer{}
	logger := New(buf, zerolog.Disabled)
	logger.Summary(campaign.Summary{Applied: 2, Skipped: 5, Failed: 1})

	rows := map[string]string{}
	for _, line := range strings.Split(buf.String(), "\n") {
		fields := strings.Fields(strings.ReplaceAll(line, "|", " "))
		if len(fields) == 2 {
			rows[fields[0]] = fields[1]
		}
	}

	assert.Equal(t, "2", rows["Applied"])
	assert.Equal(t, "5", rows["Skipped"])
	assert.Equal(t, "1", rows["Failed"])
	assert.Equal(t, "8", rows["TOTAL"])
}

func TestLoggerContext(t *testing.T) {
	// Create logger
	logger := New(io.Discard, zerolog.InfoLevel)

	// Add to context
	ctx := context.Background()
	ctx = NewContext(ctx, logger)

	// Get from context
	got := FromContext(ctx)
	assert.Same(t, logger, got, "logger from context should be the same instance")

	// Check panic on missing logger
	assert.Panics(t, func() {
		FromContext(context.Background())
	}, "FromContext should panic when logger is missing")
}
