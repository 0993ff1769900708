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
package status

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// 🎨 Display configuration
const (
	fileIndent   = 4  // spaces to indent file entries
	nameWidth    = 35 // Base width for filename
	paramsWidth  = 20 // Width for resource or capability list
	outcomeWidth = 15 // Width for outcome text
)

// 🎯 FormatResult formats one file's result for the console:
// symbol, path, params and outcome, plus the cause for failures.
func FormatResult(r Result) string {
	var prefix string
	switch r.Outcome {
	case Applied:
		prefix = color.GreenString("✓")
	case SkippedAlreadyPatched:
		prefix = color.CyanString("•")
	case SkippedNoChange:
		prefix = color.HiBlackString("-")
	case SkippedMissing:
		prefix = color.YellowString("⚠")
	default:
		prefix = color.RedString("✗")
	}

	line := fmt.Sprintf("%s%s %-*s %-*s %-*s",
		strings.Repeat(" ", fileIndent),
		prefix,
		nameWidth, r.Path,
		paramsWidth, r.Params.String(),
		outcomeWidth, r.Outcome.String(),
	)

	if r.Outcome == Failed && r.Err != nil {
		line = strings.TrimRight(line, " ") + " " + color.RedString(r.Err.Error())
	}
	return line
}

// FormatError formats an error message with emoji
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("❌ Error: %v", err)
}
