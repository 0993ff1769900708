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

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for manifest parsers
type Parser interface {
	// 📝 Parse parses the manifest from bytes
	Parse(ctx context.Context, data []byte) (*Manifest, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🏷️ ParamsKind tells which patch plan an entry uses
type ParamsKind int

const (
	ParamsInvalid      ParamsKind = iota
	ParamsResource                // guard UI actions with per-resource checks
	ParamsCapabilities            // wrap the default export with the decorator
)

// String returns a string representation of ParamsKind
func (k ParamsKind) String() string {
	switch k {
	case ParamsResource:
		return "resource"
	case ParamsCapabilities:
		return "capabilities"
	default:
		return "invalid"
	}
}

// 📦 Params are the transformation parameters of one file.
// Exactly one of Resource or Capabilities is set.
type Params struct {
	Resource     string   `json:"resource,omitempty" yaml:"resource,omitempty"`
	Capabilities []string `json:"capabilities,omitempty" yaml:"capabilities,omitempty"`
}

// Kind reports which plan the params select.
func (p Params) Kind() ParamsKind {
	hasResource := p.Resource != ""
	hasCaps := len(p.Capabilities) > 0
	switch {
	case hasResource && !hasCaps:
		return ParamsResource
	case hasCaps && !hasResource:
		return ParamsCapabilities
	default:
		return ParamsInvalid
	}
}

// 📝 String returns the resource name or the capability list
func (p Params) String() string {
	if p.Kind() == ParamsCapabilities {
		return strings.Join(p.Capabilities, ", ")
	}
	return p.Resource
}

// 📄 Entry maps one file, relative to the manifest base dir, to its params
type Entry struct {
	Path   string `json:"path" yaml:"path"`
	Params `yaml:",inline"`
}

// 🔤 Symbols names the identifiers and module paths that patches refer to
type Symbols struct {
	Hook            string `json:"hook,omitempty" yaml:"hook,omitempty"`
	HookImport      string `json:"hook_import,omitempty" yaml:"hook_import,omitempty"`
	Decorator       string `json:"decorator,omitempty" yaml:"decorator,omitempty"`
	DecoratorImport string `json:"decorator_import,omitempty" yaml:"decorator_import,omitempty"`
	CreateCheck     string `json:"create_check,omitempty" yaml:"create_check,omitempty"`
	UpdateCheck     string `json:"update_check,omitempty" yaml:"update_check,omitempty"`
	DeleteCheck     string `json:"delete_check,omitempty" yaml:"delete_check,omitempty"`
}

// DefaultSymbols returns the symbols used by the admin frontend.
func DefaultSymbols() Symbols {
	return Symbols{
		Hook:            "usePermissions",
		HookImport:      "@/contexts/PermissionContext",
		Decorator:       "withPermission",
		DecoratorImport: "@/hoc/withPermission",
		CreateCheck:     "canCreate",
		UpdateCheck:     "canUpdate",
		DeleteCheck:     "canDelete",
	}
}

// ImportStatement renders `import { symbol } from 'path';`.
func ImportStatement(symbol, path string) string {
	return fmt.Sprintf("import { %s } from '%s';", symbol, path)
}

// 📚 Manifest is the ordered list of files to patch
type Manifest struct {
	BaseDir string   `json:"base_dir,omitempty" yaml:"base_dir,omitempty"`
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`
	Symbols Symbols  `json:"symbols,omitempty" yaml:"symbols,omitempty"`
	Entries []Entry  `json:"entries" yaml:"entries"`

	location string
}

// 🎯 Load loads the manifest from a file
func Load(ctx context.Context, path string) (*Manifest, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading manifest")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading manifest file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	m, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing manifest: %w", err)
	}

	// base_dir is resolved against the manifest's own directory
	if !filepath.IsAbs(m.BaseDir) {
		m.BaseDir = filepath.Join(filepath.Dir(path), m.BaseDir)
	}
	m.location = path

	if err := m.Validate(); err != nil {
		return nil, errors.Errorf("validating manifest: %w", err)
	}

	logger.Debug().Str("path", path).Int("entries", len(m.Entries)).Msg("manifest loaded")
	return m, nil
}

// 🔍 Validate checks the manifest, fills defaults and applies exclude patterns
func (m *Manifest) Validate() error {
	if len(m.Entries) == 0 {
		return errors.Errorf("entries is required")
	}

	for _, pattern := range m.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("invalid exclude pattern %q", pattern)
		}
	}

	m.Symbols = m.Symbols.withDefaults()
	if m.BaseDir == "" {
		m.BaseDir = "."
	}
	m.BaseDir = filepath.Clean(m.BaseDir)

	kept := make([]Entry, 0, len(m.Entries))
	for i, e := range m.Entries {
		if strings.TrimSpace(e.Path) == "" {
			return errors.Errorf("entry %d: path is required", i)
		}
		e.Path = filepath.ToSlash(filepath.Clean(e.Path))
		if filepath.IsAbs(e.Path) || e.Path == ".." || strings.HasPrefix(e.Path, "../") {
			return errors.Errorf("entry %d (%s): path must stay inside base_dir", i, e.Path)
		}
		switch e.Kind() {
		case ParamsInvalid:
			return errors.Errorf("entry %d (%s): exactly one of resource or capabilities is required", i, e.Path)
		case ParamsCapabilities:
			for _, c := range e.Capabilities {
				if strings.TrimSpace(c) == "" {
					return errors.Errorf("entry %d (%s): empty capability name", i, e.Path)
				}
			}
		}
		if m.excluded(e.Path) {
			continue
		}
		kept = append(kept, e)
	}
	m.Entries = kept

	return nil
}

func (m *Manifest) excluded(path string) bool {
	for _, pattern := range m.Exclude {
		if ok, _ := doublestar.Match(pattern, path); ok {
			return true
		}
	}
	return false
}

// 📍 Location returns the file the manifest was loaded from, if any
func (m *Manifest) Location() string {
	return m.location
}

// 📝 String returns a string representation of the manifest
func (m *Manifest) String() string {
	src := m.location
	if src == "" {
		src = "<inline>"
	}
	return fmt.Sprintf("%s: %d entries -> %s", src, len(m.Entries), m.BaseDir)
}

func (s Symbols) withDefaults() Symbols {
	d := DefaultSymbols()
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&s.Hook, d.Hook)
	fill(&s.HookImport, d.HookImport)
	fill(&s.Decorator, d.Decorator)
	fill(&s.DecoratorImport, d.DecoratorImport)
	fill(&s.CreateCheck, d.CreateCheck)
	fill(&s.UpdateCheck, d.UpdateCheck)
	fill(&s.DeleteCheck, d.DeleteCheck)
	return s
}
