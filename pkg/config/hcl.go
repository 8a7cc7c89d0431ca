// Copyright 2025 the winsw authors
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
	return strings.HasSuffix(strings.ToLower(filename), ".hcl")
}

// 📝 Parse parses the config from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Create evaluation context
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	// Define HCL schema
	type hclConfig struct {
		BasePath string `hcl:"base_path"`
		WorkDir  string `hcl:"work_dir,optional"`
		Log      *struct {
			File       string `hcl:"file"`
			MaxSizeMB  int    `hcl:"max_size_mb,optional"`
			MaxBackups int    `hcl:"max_backups,optional"`
		} `hcl:"log,block"`
		Execute *struct {
			Enabled bool `hcl:"enabled"`
		} `hcl:"execute,block"`
	}

	// Decode HCL
	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	// Convert to model
	cfg := &Config{
		BasePath: hclCfg.BasePath,
		WorkDir:  hclCfg.WorkDir,
	}
	if hclCfg.Log != nil {
		cfg.Log = &LogArgs{
			File:       hclCfg.Log.File,
			MaxSizeMB:  hclCfg.Log.MaxSizeMB,
			MaxBackups: hclCfg.Log.MaxBackups,
		}
	}
	if hclCfg.Execute != nil {
		cfg.Execute = &ExecuteArgs{Enabled: hclCfg.Execute.Enabled}
	}

	return cfg, nil
}
