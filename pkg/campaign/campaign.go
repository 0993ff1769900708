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

// Package campaign runs the patch driver over every entry of a manifest
package campaign

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/permpatch/pkg/config"
	"github.com/walteh/permpatch/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Patcher processes one manifest entry
type Patcher interface {
	// Patch writes the entry's changes
	Patch(ctx context.Context, entry config.Entry) status.Result
	// Preview reports what Patch would do without writing
	Preview(ctx context.Context, entry config.Entry) status.Result
}

// 📢 Reporter receives one result per processed file, in manifest order
type Reporter interface {
	LogResult(ctx context.Context, r status.Result)
}

// 📊 Summary holds the counts of a run
type Summary struct {
	Applied int
	Skipped int
	Failed  int

	// Results holds every result in manifest order
	Results []status.Result
}

// Total returns the number of processed files.
func (s Summary) Total() int {
	return s.Applied + s.Skipped + s.Failed
}

func (s *Summary) add(r status.Result) {
	s.Results = append(s.Results, r)
	switch r.Outcome.Bucket() {
	case status.BucketApplied:
		s.Applied++
	case status.BucketSkipped:
		s.Skipped++
	default:
		s.Failed++
	}
}

// 🔧 Options contains configuration for the runner
type Options struct {
	// Patcher handles single files
	Patcher Patcher
	// Reporter is optional
	Reporter Reporter
}

// 🏃 Runner walks a manifest sequentially and never stops on a bad file
type Runner struct {
	patcher  Patcher
	reporter Reporter
}

// 🏭 New creates a new runner with the given options
func New(opts Options) (*Runner, error) {
	if opts.Patcher == nil {
		return nil, errors.Errorf("patcher is required")
	}
	return &Runner{
		patcher:  opts.Patcher,
		reporter: opts.Reporter,
	}, nil
}

// 🏃 Run patches every entry and returns the counts
func (r *Runner) Run(ctx context.Context, m *config.Manifest) Summary {
	return r.run(ctx, m, r.patcher.Patch)
}

// 👀 Preview reports every entry's pending outcome without writing
func (r *Runner) Preview(ctx context.Context, m *config.Manifest) Summary {
	return r.run(ctx, m, r.patcher.Preview)
}

func (r *Runner) run(ctx context.Context, m *config.Manifest, process func(context.Context, config.Entry) status.Result) Summary {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("manifest", m.String()).Msg("starting run")

	summary := Summary{Results: make([]status.Result, 0, len(m.Entries))}
	for _, entry := range m.Entries {
		res := process(ctx, entry)
		summary.add(res)
		if r.reporter != nil {
			r.reporter.LogResult(ctx, res)
		}
	}

	logger.Debug().
		Int("applied", summary.Applied).
		Int("skipped", summary.Skipped).
		Int("failed", summary.Failed).
		Msg("run complete")
	return summary
}
