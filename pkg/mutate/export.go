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
package mutate

import (
	"fmt"
	"strings"

	"github.com/walteh/permpatch/pkg/anchor"
	"github.com/walteh/permpatch/pkg/config"
)

// 🔒 ExportRewriter turns "export default function Name()" into a plain
// declaration and appends a default export wrapped with the decorator.
// It never checks for an earlier run; the driver's guard markers do that.
type ExportRewriter struct {
	decorator string
}

var (
	_ Mutator  = (*ExportRewriter)(nil)
	_ Requirer = (*ExportRewriter)(nil)
)

// NewExportRewriter creates a step wrapping the default export with decorator.
func NewExportRewriter(decorator string) *ExportRewriter {
	return &ExportRewriter{decorator: decorator}
}

func (e *ExportRewriter) Name() string      { return "wrap default export" }
func (e *ExportRewriter) Kind() anchor.Kind { return anchor.DefaultExportAnchor }

// Required reports true; a plan whose export was not rewritten is discarded.
func (e *ExportRewriter) Required() bool { return true }

// Apply implements Mutator.Apply
func (e *ExportRewriter) Apply(doc string, m anchor.Match, params config.Params) string {
	if m.Name == "" || len(params.Capabilities) == 0 {
		return doc
	}

	doc = doc[:m.Start] + "function " + m.Name + "()" + doc[m.End:]

	quoted := make([]string, 0, len(params.Capabilities))
	for _, c := range params.Capabilities {
		quoted = append(quoted, quote(c))
	}

	var sb strings.Builder
	sb.WriteString(strings.TrimRight(doc, " \t\r\n"))
	sb.WriteString("\n\n// Protect page with permission\n")
	fmt.Fprintf(&sb, "export default %s(%s, {\n", e.decorator, m.Name)
	fmt.Fprintf(&sb, "    permissions: [%s]\n", strings.Join(quoted, ", "))
	sb.WriteString("});\n")
	return sb.String()
}
