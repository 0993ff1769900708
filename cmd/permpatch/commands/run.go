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

package commands

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/permpatch/cmd/permpatch/opts"
	"github.com/walteh/permpatch/pkg/campaign"
	"github.com/walteh/permpatch/pkg/patch"
	"github.com/walteh/permpatch/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// newRunner wires the file store, driver and console reporter for a manifest
func newRunner(ctx context.Context, o *opts.RootOpts) (*campaign.Runner, error) {
	files := status.NewManager(o.Manifest.BaseDir)
	zerolog.Ctx(ctx).Debug().Str("base_dir", files.BaseDir()).Msg("patching files")

	driver, err := patch.New(patch.Options{
		Files:   files,
		Symbols: o.Manifest.Symbols,
		Diff:    o.Diff,
	})
	if err != nil {
		return nil, errors.Errorf("creating driver: %w", err)
	}

	runner, err := campaign.New(campaign.Options{
		Patcher:  driver,
		Reporter: o.Logger,
	})
	if err != nil {
		return nil, errors.Errorf("creating runner: %w", err)
	}
	return runner, nil
}
