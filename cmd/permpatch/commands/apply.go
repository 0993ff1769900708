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
	"github.com/spf13/cobra"
	"github.com/walteh/permpatch/cmd/permpatch/opts"
)

// NewApplyCmd creates a new apply command
func NewApplyCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Patch every file in the manifest",
		Long: `Apply processes each manifest entry in order:
1. Skip files that do not exist
2. Skip files that already carry the permission markers
3. Insert imports, hooks and guards, or wrap the default export
4. Write the file back only when its text changed

A failure on one file never stops the others. The command exits 0 once the
manifest has loaded; check the summary for failed files.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			runner, err := newRunner(ctx, o)
			if err != nil {
				return err
			}

			o.Logger.Header("applying " + o.Manifest.String())
			summary := runner.Run(ctx, o.Manifest)
			o.Logger.Summary(summary)
			o.Logger.LogNewline()

			if summary.Failed > 0 {
				o.Logger.Error(plural(summary.Failed, "file") + " could not be patched")
			} else {
				o.Logger.Success("done")
			}
			return nil
		},
	}

	return cmd
}
