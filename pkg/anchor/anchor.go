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
package anchor

import (
	"regexp"
	"strings"
)

// 🏷️ Kind names one structural shape the locator can find
type Kind int

const (
	KindUnknown               Kind = iota
	ImportBlockAnchor              // a specific import line already in the file
	LastImportAnchor               // the last single-line import statement
	FunctionBodyStartAnchor        // the opening brace of a zero-argument named function
	CreateActionElementAnchor      // a link to ".../create" or a button calling a create handler
	EditActionElementAnchor        // a link to ".../edit/..." or a button calling handleOpenEdit
	DeleteActionElementAnchor      // a button calling handleDelete
	DefaultExportAnchor            // "export default function Name()"
)

// String returns a string representation of Kind
func (k Kind) String() string {
	switch k {
	case ImportBlockAnchor:
		return "import-block"
	case LastImportAnchor:
		return "last-import"
	case FunctionBodyStartAnchor:
		return "function-body-start"
	case CreateActionElementAnchor:
		return "create-action-element"
	case EditActionElementAnchor:
		return "edit-action-element"
	case DeleteActionElementAnchor:
		return "delete-action-element"
	case DefaultExportAnchor:
		return "default-export"
	default:
		return "unknown"
	}
}

// 📍 Match is one located anchor. Fragment is doc[Start:End].
type Match struct {
	Kind     Kind
	Start    int
	End      int
	Fragment string
	Name     string // captured identifier, set for DefaultExportAnchor
}

// LineIndent returns the leading whitespace of the line containing offset.
func LineIndent(doc string, offset int) string {
	lineStart := strings.LastIndexByte(doc[:offset], '\n') + 1
	line := doc[lineStart:]
	trimmed := strings.TrimLeft(line, " \t")
	return line[:len(line)-len(trimmed)]
}

// 🔍 Locator finds anchors in a document.
// Find returns at most one match, the first occurrence, and false when the
// shape is absent.
type Locator interface {
	Find(doc string, kind Kind) (Match, bool)
}

// 🔧 Options configures the regexp locator
type Options struct {
	// AnchorImport is the exact import line ImportBlockAnchor looks for.
	AnchorImport string
}

// 🔎 Regexp locates anchors with regular expressions over raw text.
// It does not parse; shapes that are formatted unusually simply do not match.
type Regexp struct {
	shapes map[Kind][]*regexp.Regexp
}

var _ Locator = (*Regexp)(nil)

var (
	lastImportRe    = regexp.MustCompile(`(?m)^import .+ from .+;[ \t\r]*$`)
	functionStartRe = regexp.MustCompile(`function\s+\w+\s*\(\s*\)\s*\{`)
	defaultExportRe = regexp.MustCompile(`export\s+default\s+function\s+(\w+)\s*\(\s*\)`)

	// element shapes: enclosing tag with an attribute signature, an inner
	// self-closing icon, then anything up to the closing tag, lazily and
	// across line breaks
	createLinkRe   = regexp.MustCompile(`(?s)<Link\s+href="[^"]*/create"[^>]*>\s*<\w+[^>]*/>.*?</Link>`)
	createButtonRe = regexp.MustCompile(`(?s)<button\s+onClick=\{[^}]*Create(?:\(\))?\}[^>]*>\s*<Plus[^>]*/>.*?</button>`)
	editLinkRe     = regexp.MustCompile("(?s)<Link\\s+href=\\{`[^`]*/edit/[^`]*`\\}[^>]*>\\s*<Edit[^>]*/>.*?</Link>")
	editButtonRe   = regexp.MustCompile(`(?s)<button\s+onClick=\{\(\)\s*=>\s*handleOpenEdit\([^)]*\)\}[^>]*>\s*<Edit[^>]*/>.*?</button>`)
	deleteButtonRe = regexp.MustCompile(`(?s)<button\s+onClick=\{\(\)\s*=>\s*handleDelete\([^)]*\)\}[^>]*>\s*<Trash[^>]*/>.*?</button>`)
)

// 🏭 New creates a regexp locator
func New(opts Options) *Regexp {
	shapes := map[Kind][]*regexp.Regexp{
		LastImportAnchor:          {lastImportRe},
		FunctionBodyStartAnchor:   {functionStartRe},
		CreateActionElementAnchor: {createLinkRe, createButtonRe},
		EditActionElementAnchor:   {editLinkRe, editButtonRe},
		DeleteActionElementAnchor: {deleteButtonRe},
		DefaultExportAnchor:       {defaultExportRe},
	}
	if opts.AnchorImport != "" {
		shapes[ImportBlockAnchor] = []*regexp.Regexp{regexp.MustCompile(regexp.QuoteMeta(opts.AnchorImport))}
	}
	return &Regexp{shapes: shapes}
}

// Find implements Locator.Find. For kinds with alternative shapes the first
// shape that matches anywhere wins.
func (r *Regexp) Find(doc string, kind Kind) (Match, bool) {
	for _, re := range r.shapes[kind] {
		loc := re.FindStringSubmatchIndex(doc)
		if loc == nil {
			continue
		}
		if kind == LastImportAnchor {
			all := re.FindAllStringIndex(doc, -1)
			last := all[len(all)-1]
			loc = []int{last[0], last[1]}
		}
		m := Match{
			Kind:     kind,
			Start:    loc[0],
			End:      loc[1],
			Fragment: doc[loc[0]:loc[1]],
		}
		if len(loc) >= 4 && loc[2] >= 0 {
			m.Name = doc[loc[2]:loc[3]]
		}
		return m, true
	}
	return Match{}, false
}
