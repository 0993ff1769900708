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
	"regexp"

	"github.com/walteh/permpatch/pkg/anchor"
	"github.com/walteh/permpatch/pkg/config"
)

// 📥 ImportInjector adds an import statement on the line after its anchor
type ImportInjector struct {
	symbol    string
	statement string
	kind      anchor.Kind
	imported  *regexp.Regexp
}

var _ Mutator = (*ImportInjector)(nil)

// NewImportInjector creates a step importing symbol from path after the
// anchor of the given kind.
func NewImportInjector(symbol, path string, kind anchor.Kind) *ImportInjector {
	sym := regexp.QuoteMeta(symbol)
	return &ImportInjector{
		symbol:    symbol,
		statement: config.ImportStatement(symbol, path),
		kind:      kind,
		imported:  regexp.MustCompile(`(?s)import\s+(?:type\s+)?(?:\w+\s*,\s*)?\{[^}]*\b` + sym + `\b[^}]*\}\s*from|import\s+` + sym + `\s+from`),
	}
}

func (i *ImportInjector) Name() string      { return "import " + i.symbol }
func (i *ImportInjector) Kind() anchor.Kind { return i.kind }

// Apply implements Mutator.Apply
func (i *ImportInjector) Apply(doc string, m anchor.Match, _ config.Params) string {
	if i.imported.MatchString(doc) {
		return doc
	}
	return doc[:m.End] + "\n" + i.statement + doc[m.End:]
}
