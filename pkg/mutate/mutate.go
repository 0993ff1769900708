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
	"strings"

	"github.com/walteh/permpatch/pkg/anchor"
	"github.com/walteh/permpatch/pkg/config"
)

// 🔧 Mutator is one pure patching step keyed to one anchor kind.
// Apply must return doc unchanged when it has nothing to do.
type Mutator interface {
	Name() string
	Kind() anchor.Kind
	Apply(doc string, m anchor.Match, params config.Params) string
}

// 📊 Result is the outcome of running a pipeline over one document
type Result struct {
	// Original is the document before any step ran
	Original string

	// Modified is the document after the last step
	Modified string

	// WasModified is true when Modified differs from Original
	WasModified bool

	// Steps names the steps that changed the document, in order
	Steps []string

	// Incomplete names the first required step that found nothing to do.
	// When set, Modified equals Original and Steps is empty.
	Incomplete string
}

// 🔒 Requirer is implemented by steps a plan cannot do without
type Requirer interface {
	Required() bool
}

func required(m Mutator) bool {
	r, ok := m.(Requirer)
	return ok && r.Required()
}

// 🔗 Pipeline threads a document through an ordered list of mutators.
// Later steps see the text produced by earlier ones, so order is part of the
// contract: the hook must exist before elements are wrapped with its checks.
type Pipeline struct {
	locator anchor.Locator
	steps   []Mutator
}

// 🏭 NewPipeline creates a pipeline that locates anchors with locator
func NewPipeline(locator anchor.Locator, steps ...Mutator) *Pipeline {
	return &Pipeline{
		locator: locator,
		steps:   steps,
	}
}

// Names returns the step names in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, 0, len(p.steps))
	for _, s := range p.steps {
		names = append(names, s.Name())
	}
	return names
}

// Run applies every step in order. A step whose anchor is absent is skipped,
// unless it is required, in which case the whole run is discarded.
func (p *Pipeline) Run(doc string, params config.Params) *Result {
	result := &Result{
		Original: doc,
		Modified: doc,
	}

	current := doc
	for _, step := range p.steps {
		changed := false
		if m, ok := p.locator.Find(current, step.Kind()); ok {
			next := step.Apply(current, m, params)
			changed = next != current
			current = next
		}

		if changed {
			result.Steps = append(result.Steps, step.Name())
		} else if required(step) && result.Incomplete == "" {
			result.Incomplete = step.Name()
		}
	}

	if result.Incomplete != "" {
		result.Steps = nil
		return result
	}

	result.Modified = current
	result.WasModified = current != doc
	return result
}

// PlanFor returns the fixed step order for a params kind.
//
// resource:     import hook -> inject hook -> wrap create -> wrap update -> wrap delete
// capabilities: import decorator -> rewrite default export
func PlanFor(kind config.ParamsKind, sym config.Symbols) []Mutator {
	switch kind {
	case config.ParamsResource:
		return []Mutator{
			NewImportInjector(sym.Hook, sym.HookImport, anchor.ImportBlockAnchor),
			NewHookInjector(sym),
			NewElementWrapper(anchor.CreateActionElementAnchor, sym.CreateCheck),
			NewElementWrapper(anchor.EditActionElementAnchor, sym.UpdateCheck),
			NewElementWrapper(anchor.DeleteActionElementAnchor, sym.DeleteCheck),
		}
	case config.ParamsCapabilities:
		return []Mutator{
			NewImportInjector(sym.Decorator, sym.DecoratorImport, anchor.LastImportAnchor),
			NewExportRewriter(sym.Decorator),
		}
	default:
		return nil
	}
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// quote renders s as a single-quoted string literal.
func quote(s string) string {
	return "'" + quoteEscaper.Replace(s) + "'"
}
