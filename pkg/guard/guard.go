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
// Package guard decides whether a file already carries a patch.
//
// The check is a plain substring test: a marker that appears anywhere, even in
// a comment or an unrelated string, counts as proof of an earlier run. Files
// that mention a marker for another reason are reported as already patched.
package guard

import (
	"strings"

	"github.com/walteh/permpatch/pkg/config"
)

// IsAlreadyPatched reports whether every marker occurs in doc.
// An empty marker set never counts as patched.
func IsAlreadyPatched(doc string, markers []string) bool {
	if len(markers) == 0 {
		return false
	}
	for _, m := range markers {
		if !strings.Contains(doc, m) {
			return false
		}
	}
	return true
}

// MarkersFor returns the markers an earlier run leaves behind for params.
func MarkersFor(params config.Params, sym config.Symbols) []string {
	switch params.Kind() {
	case config.ParamsResource:
		return []string{sym.Hook, sym.CreateCheck}
	case config.ParamsCapabilities:
		return []string{sym.Decorator}
	default:
		return nil
	}
}
