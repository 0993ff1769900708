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

	"github.com/walteh/permpatch/pkg/anchor"
	"github.com/walteh/permpatch/pkg/config"
)

// 🪝 HookInjector destructures the check functions from the permission hook
// at the top of the component body
type HookInjector struct {
	statement string
}

var _ Mutator = (*HookInjector)(nil)

// NewHookInjector creates a step rendering
// "const { canCreate, canUpdate, canDelete } = usePermissions();".
func NewHookInjector(sym config.Symbols) *HookInjector {
	return &HookInjector{
		statement: fmt.Sprintf("const { %s, %s, %s } = %s();", sym.CreateCheck, sym.UpdateCheck, sym.DeleteCheck, sym.Hook),
	}
}

func (h *HookInjector) Name() string      { return "inject hook" }
func (h *HookInjector) Kind() anchor.Kind { return anchor.FunctionBodyStartAnchor }

// Apply implements Mutator.Apply. The statement is indented one level deeper
// than the function declaration.
func (h *HookInjector) Apply(doc string, m anchor.Match, _ config.Params) string {
	indent := anchor.LineIndent(doc, m.Start) + "    "
	return doc[:m.End] + "\n" + indent + h.statement + doc[m.End:]
}
