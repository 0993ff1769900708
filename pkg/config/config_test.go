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
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		content     string
		wantErr     bool
		errContains string
		check       func(t *testing.T, dir string, m *Manifest)
	}{
		{
			name:     "valid_yaml",
			filename: "manifest.yaml",
			content: `
base_dir: src/app
entries:
  - path: master/jabatan/page.tsx
    resource: jabatan
  - path: izin/page.tsx
    capabilities: [izinabsen.index, izincuti.index]
`,
			check: func(t *testing.T, dir string, m *Manifest) {
				assert.Equal(t, filepath.Join(dir, "src/app"), m.BaseDir, "base dir should resolve against manifest dir")
				require.Len(t, m.Entries, 2, "should have 2 entries")
				assert.Equal(t, "master/jabatan/page.tsx", m.Entries[0].Path)
				assert.Equal(t, ParamsResource, m.Entries[0].Kind())
				assert.Equal(t, "jabatan", m.Entries[0].Resource)
				assert.Equal(t, ParamsCapabilities, m.Entries[1].Kind())
				assert.Equal(t, []string{"izinabsen.index", "izincuti.index"}, m.Entries[1].Capabilities, "capabilities keep declared order")
				assert.Equal(t, DefaultSymbols(), m.Symbols, "symbols should default")
			},
		},
		{
			name:     "valid_hcl",
			filename: "manifest.hcl",
			content: `
base_dir = "/srv/app"

symbols {
  hook = "useAcl"
}

entry "master/cabang/page.tsx" {
  resource = "cabang"
}

entry "utilities/role-permission/page.tsx" {
  capabilities = ["roles.index", "permissions.index"]
}
`,
			check: func(t *testing.T, dir string, m *Manifest) {
				assert.Equal(t, "/srv/app", m.BaseDir, "absolute base dir should be kept")
				require.Len(t, m.Entries, 2)
				assert.Equal(t, "cabang", m.Entries[0].Resource)
				assert.Equal(t, []string{"roles.index", "permissions.index"}, m.Entries[1].Capabilities)
				assert.Equal(t, "useAcl", m.Symbols.Hook, "explicit symbol should win")
				assert.Equal(t, "withPermission", m.Symbols.Decorator, "missing symbol should default")
			},
		},
		{
			name:     "valid_json",
			filename: "manifest.json",
			content: `{
  "entries": [
    {"path": "lembur/page.tsx", "resource": "lembur"}
  ]
}`,
			check: func(t *testing.T, dir string, m *Manifest) {
				assert.Equal(t, dir, m.BaseDir, "empty base dir should mean the manifest dir")
				require.Len(t, m.Entries, 1)
				assert.Equal(t, "lembur", m.Entries[0].Resource)
			},
		},
		{
			name:     "exclude_patterns",
			filename: "manifest.yaml",
			content: `
exclude:
  - "payroll/**"
entries:
  - { path: payroll/gaji-pokok/page.tsx, resource: gajipokok }
  - { path: lembur/page.tsx, resource: lembur }
  - { path: payroll/tunjangan/page.tsx, resource: tunjangan }
`,
			check: func(t *testing.T, dir string, m *Manifest) {
				require.Len(t, m.Entries, 1, "excluded entries should be dropped")
				assert.Equal(t, "lembur/page.tsx", m.Entries[0].Path)
			},
		},
		{
			name:        "both_params",
			filename:    "manifest.yaml",
			content:     "entries:\n  - { path: a.tsx, resource: a, capabilities: [a.index] }\n",
			wantErr:     true,
			errContains: "exactly one of resource or capabilities",
		},
		{
			name:        "no_params",
			filename:    "manifest.yaml",
			content:     "entries:\n  - { path: a.tsx }\n",
			wantErr:     true,
			errContains: "exactly one of resource or capabilities",
		},
		{
			name:        "escaping_path",
			filename:    "manifest.yaml",
			content:     "entries:\n  - { path: ../outside.tsx, resource: a }\n",
			wantErr:     true,
			errContains: "must stay inside base_dir",
		},
		{
			name:        "empty_entries",
			filename:    "manifest.yaml",
			content:     "base_dir: src\n",
			wantErr:     true,
			errContains: "entries is required",
		},
		{
			name:        "unknown_field",
			filename:    "manifest.yaml",
			content:     "entries:\n  - { path: a.tsx, resource: a, color: red }\n",
			wantErr:     true,
			errContains: "parsing YAML",
		},
		{
			name:        "invalid_exclude",
			filename:    "manifest.yaml",
			content:     "exclude: [\"[\"]\nentries:\n  - { path: a.tsx, resource: a }\n",
			wantErr:     true,
			errContains: "invalid exclude pattern",
		},
		{
			name:        "unsupported_extension",
			filename:    "manifest.toml",
			content:     "entries = []",
			wantErr:     true,
			errContains: "no parser found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, tt.filename)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
			m, err := Load(ctx, path)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, path, m.Location())
			if tt.check != nil {
				tt.check(t, dir, m)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading manifest file")
}

func TestParamsKind(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		want   ParamsKind
		str    string
	}{
		{name: "resource", params: Params{Resource: "jabatan"}, want: ParamsResource, str: "jabatan"},
		{name: "capabilities", params: Params{Capabilities: []string{"a.index", "b.index"}}, want: ParamsCapabilities, str: "a.index, b.index"},
		{name: "neither", params: Params{}, want: ParamsInvalid, str: ""},
		{name: "both", params: Params{Resource: "x", Capabilities: []string{"x.index"}}, want: ParamsInvalid, str: "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.params.Kind())
			assert.Equal(t, tt.str, tt.params.String())
		})
	}
}

func TestBuiltins(t *testing.T) {
	assert.Equal(t, []string{"buttons", "protect"}, Builtins())

	ctx := context.Background()

	buttons, err := LoadBuiltin(ctx, "buttons", "")
	require.NoError(t, err)
	assert.Equal(t, "src/app", buttons.BaseDir)
	assert.Equal(t, "builtin:buttons", buttons.Location())
	require.NotEmpty(t, buttons.Entries)
	assert.Equal(t, "master/jabatan/page.tsx", buttons.Entries[0].Path)
	for _, e := range buttons.Entries {
		assert.Equal(t, ParamsResource, e.Kind(), "buttons entry %s should be resource based", e.Path)
	}

	protect, err := LoadBuiltin(ctx, "protect", "/var/www/admin/src/app")
	require.NoError(t, err)
	assert.Equal(t, "/var/www/admin/src/app", protect.BaseDir, "override should replace base dir")
	last := protect.Entries[len(protect.Entries)-1]
	assert.Equal(t, "utilities/role-permission/page.tsx", last.Path)
	assert.Equal(t, []string{"roles.index", "permissions.index"}, last.Capabilities)

	_, err = LoadBuiltin(ctx, "nope", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown builtin manifest")
}

func TestImportStatement(t *testing.T) {
	assert.Equal(t, "import { withPermission } from '@/hoc/withPermission';", ImportStatement("withPermission", "@/hoc/withPermission"))
}
