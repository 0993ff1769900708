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
	"regexp"

	"github.com/walteh/permpatch/pkg/anchor"
	"github.com/walteh/permpatch/pkg/config"
)

// 🎁 ElementWrapper renders a matched UI element only when a check passes:
//
//	{canCreate('jabatan') && (
//	    <Link href="/master/jabatan/create">...</Link>
//	)}
type ElementWrapper struct {
	kind    anchor.Kind
	check   string
	guarded *regexp.Regexp
}

var _ Mutator = (*ElementWrapper)(nil)

// NewElementWrapper creates a step wrapping the first element of kind with check.
func NewElementWrapper(kind anchor.Kind, check string) *ElementWrapper {
	return &ElementWrapper{
		kind:    kind,
		check:   check,
		guarded: regexp.MustCompile(`\{\s*` + regexp.QuoteMeta(check) + `\('(?:[^'\\]|\\.)*'\)\s*&&\s*\(\s*$`),
	}
}

func (w *ElementWrapper) Name() string      { return "wrap " + w.kind.String() }
func (w *ElementWrapper) Kind() anchor.Kind { return w.kind }

// Apply implements Mutator.Apply. An element that already sits directly
// inside the same guard is left alone.
func (w *ElementWrapper) Apply(doc string, m anchor.Match, params config.Params) string {
	if params.Resource == "" {
		return doc
	}
	if w.guarded.MatchString(doc[:m.Start]) {
		return doc
	}

	indent := anchor.LineIndent(doc, m.Start)
	wrapped := fmt.Sprintf("{%s(%s) && (\n%s    %s\n%s)}", w.check, quote(params.Resource), indent, m.Fragment, indent)
	return doc[:m.Start] + wrapped + doc[m.End:]
}
