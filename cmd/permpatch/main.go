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

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/walteh/permpatch/cmd/permpatch/commands"
	"github.com/walteh/permpatch/cmd/permpatch/opts"
	"github.com/walteh/permpatch/pkg/status"
)

func main() {
	rootOpts := &opts.RootOpts{}

	rootCmd := &cobra.Command{
		Use:   "permpatch",
		Short: "Inject permission checks into frontend pages",
		Long: `permpatch rewrites the pages listed in a manifest so that their action
buttons are guarded by permission checks, or so that the whole page is
wrapped with the permission decorator. Re-running it on patched files
changes nothing.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			ctx := setupLogging(cmd.Context())
			cmd.SetContext(ctx)
			return loadRootOpts(ctx, rootOpts)
		},
	}

	addRootFlags(rootCmd)

	rootCmd.AddCommand(
		commands.NewApplyCmd(rootOpts),
		commands.NewStatusCmd(rootOpts),
		newVersionCmd(),
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		pterm.Error.WithPrefix(pterm.Prefix{Text: "permpatch", Style: pterm.Error.Prefix.Style}).Println(status.FormatError(err))
		os.Exit(1)
	}
}
