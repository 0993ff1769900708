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
	"fmt"

	"github.com/spf13/cobra"
	"github.com/walteh/permpatch/cmd/permpatch/opts"
)

// NewStatusCmd creates a new status command
func NewStatusCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show which files would change",
		Long: `Status runs the same steps as apply without writing anything.
Files reported as "applied" are pending; use --diff to see the changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			runner, err := newRunner(ctx, o)
			if err != nil {
				return err
			}

			o.Logger.Header("checking " + o.Manifest.String())
			summary := runner.Preview(ctx, o.Manifest)
			o.Logger.Summary(summary)
			o.Logger.LogNewline()

			switch {
			case summary.Failed > 0:
				o.Logger.Warning(plural(summary.Failed, "file") + " could not be checked")
			case summary.Applied > 0:
				o.Logger.Infof("%s pending", plural(summary.Applied, "file"))
			default:
				o.Logger.Success("all files up to date")
			}
			return nil
		},
	}

	return cmd
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
