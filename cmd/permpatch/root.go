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

package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/permpatch/cmd/permpatch/opts"
	"github.com/walteh/permpatch/pkg/config"
	"github.com/walteh/permpatch/pkg/log"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile string
	builtin    string
	baseDir    string
	debugFlag  bool
	diff       bool
)

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "permpatch.yaml", "manifest file path (.yaml, .hcl or .json)")
	cmd.PersistentFlags().StringVar(&builtin, "builtin", "", "use a compiled-in manifest instead of --config")
	cmd.PersistentFlags().StringVar(&baseDir, "base-dir", "", "override the manifest's base_dir")
	cmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&diff, "diff", false, "print a unified diff for every changed file")
}

// setupLogging configures zerolog based on flags and returns a context carrying it
func setupLogging(ctx context.Context) context.Context {
	level := zerolog.WarnLevel
	if debugFlag {
		level = zerolog.DebugLevel
	}
	zlog := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	ctx = zlog.WithContext(ctx)

	return log.NewContext(ctx, log.New(os.Stdout, level))
}

// loadRootOpts loads the manifest selected by the flags
func loadRootOpts(ctx context.Context, o *opts.RootOpts) error {
	m, err := loadManifest(ctx)
	if err != nil {
		return err
	}

	logger := log.FromContext(ctx)
	logger.ShowDiffs(diff)

	zerolog.Ctx(ctx).Debug().Str("manifest", m.Location()).Int("entries", len(m.Entries)).Msg("manifest ready")

	o.Manifest = m
	o.Logger = logger
	o.Diff = diff
	return nil
}

func loadManifest(ctx context.Context) (*config.Manifest, error) {
	if builtin != "" {
		m, err := config.LoadBuiltin(ctx, builtin, baseDir)
		if err != nil {
			return nil, errors.Errorf("loading builtin manifest: %w", err)
		}
		return m, nil
	}

	m, err := config.Load(ctx, configFile)
	if err != nil {
		return nil, errors.Errorf("loading manifest: %w", err)
	}
	if baseDir != "" {
		m.BaseDir = baseDir
	}
	return m, nil
}
