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
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

// 📝 Parse parses the manifest from HCL
//
//	base_dir = "src/app"
//
//	entry "master/jabatan/page.tsx" {
//	  resource = "jabatan"
//	}
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Manifest, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "manifest.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	type hclSymbols struct {
		Hook            string `hcl:"hook,optional"`
		HookImport      string `hcl:"hook_import,optional"`
		Decorator       string `hcl:"decorator,optional"`
		DecoratorImport string `hcl:"decorator_import,optional"`
		CreateCheck     string `hcl:"create_check,optional"`
		UpdateCheck     string `hcl:"update_check,optional"`
		DeleteCheck     string `hcl:"delete_check,optional"`
	}

	type hclEntry struct {
		Path         string   `hcl:"path,label"`
		Resource     string   `hcl:"resource,optional"`
		Capabilities []string `hcl:"capabilities,optional"`
	}

	type hclManifest struct {
		BaseDir string      `hcl:"base_dir,optional"`
		Exclude []string    `hcl:"exclude,optional"`
		Symbols *hclSymbols `hcl:"symbols,block"`
		Entries []hclEntry  `hcl:"entry,block"`
	}

	var hm hclManifest
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hm)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	m := &Manifest{
		BaseDir: hm.BaseDir,
		Exclude: hm.Exclude,
	}
	if hm.Symbols != nil {
		m.Symbols = Symbols(*hm.Symbols)
	}
	for _, e := range hm.Entries {
		m.Entries = append(m.Entries, Entry{
			Path: e.Path,
			Params: Params{
				Resource:     e.Resource,
				Capabilities: e.Capabilities,
			},
		})
	}

	return m, nil
}
