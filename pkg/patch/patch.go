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
package patch

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/rs/zerolog"
	"github.com/walteh/permpatch/pkg/anchor"
	"github.com/walteh/permpatch/pkg/config"
	"github.com/walteh/permpatch/pkg/guard"
	"github.com/walteh/permpatch/pkg/mutate"
	"github.com/walteh/permpatch/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options contains configuration for the driver
type Options struct {
	// Files is where documents are read from and written to
	Files status.FileManager
	// Symbols are the identifiers patches insert; zero means the defaults
	Symbols config.Symbols
	// Locator finds anchors; defaults to the regexp locator
	Locator anchor.Locator
	// Diff records a unified diff on every result that changes text
	Diff bool
}

// 🚗 Driver patches one file at a time
type Driver struct {
	files     status.FileManager
	symbols   config.Symbols
	diff      bool
	pipelines map[config.ParamsKind]*mutate.Pipeline
}

// 🏭 New creates a new driver with the given options
func New(opts Options) (*Driver, error) {
	if opts.Files == nil {
		return nil, errors.Errorf("file manager is required")
	}
	if opts.Symbols == (config.Symbols{}) {
		opts.Symbols = config.DefaultSymbols()
	}
	locator := opts.Locator
	if locator == nil {
		locator = anchor.New(anchor.Options{
			AnchorImport: config.ImportStatement(opts.Symbols.Decorator, opts.Symbols.DecoratorImport),
		})
	}

	pipelines := map[config.ParamsKind]*mutate.Pipeline{}
	for _, kind := range []config.ParamsKind{config.ParamsResource, config.ParamsCapabilities} {
		pipelines[kind] = mutate.NewPipeline(locator, mutate.PlanFor(kind, opts.Symbols)...)
	}

	return &Driver{
		files:     opts.Files,
		symbols:   opts.Symbols,
		diff:      opts.Diff,
		pipelines: pipelines,
	}, nil
}

// 🏃 Patch runs the full sequence for one entry and writes the file back
// when its text changed. Faults never escape; they become a Failed result.
func (d *Driver) Patch(ctx context.Context, entry config.Entry) status.Result {
	return d.run(ctx, entry, true)
}

// 👀 Preview runs the same sequence without writing. A result of Applied
// means the file would change.
func (d *Driver) Preview(ctx context.Context, entry config.Entry) status.Result {
	return d.run(ctx, entry, false)
}

func (d *Driver) run(ctx context.Context, entry config.Entry, write bool) (res status.Result) {
	logger := zerolog.Ctx(ctx).With().Str("file", entry.Path).Str("params", entry.Params.String()).Logger()

	res = status.Result{
		Path:   entry.Path,
		Params: entry.Params,
	}

	defer func() {
		if r := recover(); r != nil {
			res.Outcome = status.Failed
			res.Err = errors.Errorf("panic while patching: %v", r)
		}
		logger.Debug().
			Err(res.Err).
			Str("outcome", res.Outcome.String()).
			Strs("steps", res.Steps).
			Bool("write", write).
			Msg("file processed")
	}()

	exists, err := d.files.FileExists(ctx, entry.Path)
	if err != nil {
		return fail(res, errors.Errorf("checking file: %w", err))
	}
	if !exists {
		res.Outcome = status.SkippedMissing
		return res
	}

	content, err := d.files.ReadFile(ctx, entry.Path)
	if err != nil {
		return fail(res, err)
	}
	if !utf8.Valid(content) {
		return fail(res, errors.Errorf("decoding file: not valid UTF-8"))
	}
	original := string(content)

	if guard.IsAlreadyPatched(original, guard.MarkersFor(entry.Params, d.symbols)) {
		res.Outcome = status.SkippedAlreadyPatched
		return res
	}

	pipeline, ok := d.pipelines[entry.Kind()]
	if !ok {
		return fail(res, errors.Errorf("no patch plan for %s params", entry.Kind()))
	}

	logger.Debug().Strs("plan", pipeline.Names()).Msg("running plan")

	result := pipeline.Run(original, entry.Params)
	res.Steps = result.Steps
	if result.Incomplete != "" {
		logger.Warn().Str("step", result.Incomplete).Msg("required step found no anchor, file left unchanged")
	}
	if !result.WasModified {
		res.Outcome = status.SkippedNoChange
		return res
	}

	if d.diff {
		diff, err := unifiedDiff(entry.Path, original, result.Modified)
		if err != nil {
			return fail(res, err)
		}
		res.Diff = diff
	}

	if write {
		if err := d.files.WriteFileAtomic(ctx, entry.Path, []byte(result.Modified)); err != nil {
			return fail(res, errors.Errorf("writing file: %w", err))
		}
	}

	res.Outcome = status.Applied
	return res
}

func fail(res status.Result, err error) status.Result {
	res.Outcome = status.Failed
	res.Err = err
	return res
}

// unifiedDiff renders a/ and b/ views of one file.
func unifiedDiff(path, before, after string) (string, error) {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: fmt.Sprintf("a/%s", path),
		ToFile:   fmt.Sprintf("b/%s", path),
		Context:  3,
	})
	if err != nil {
		return "", errors.Errorf("rendering diff: %w", err)
	}
	return diff, nil
}
