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
	"embed"
	"sort"
	"strings"

	"gitlab.com/tozd/go/errors"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// 📚 Builtins lists the names of the manifests compiled into the binary
func Builtins() []string {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// 🎯 LoadBuiltin loads one of the compiled-in manifests by name.
// baseDir overrides the manifest's base_dir when non-empty.
func LoadBuiltin(ctx context.Context, name, baseDir string) (*Manifest, error) {
	data, err := builtinFS.ReadFile("builtin/" + name + ".yaml")
	if err != nil {
		return nil, errors.Errorf("unknown builtin manifest %q (have %s)", name, strings.Join(Builtins(), ", "))
	}

	m, err := (&YAMLParser{}).Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing builtin manifest %s: %w", name, err)
	}
	if baseDir != "" {
		m.BaseDir = baseDir
	}
	m.location = "builtin:" + name

	if err := m.Validate(); err != nil {
		return nil, errors.Errorf("validating builtin manifest %s: %w", name, err)
	}
	return m, nil
}
