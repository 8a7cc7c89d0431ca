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
	"os"
	"path/filepath"

	"gitlab.com/tozd/go/errors"
)

// 🔧 Config is the host configuration for an interpretation pass.
type Config struct {
	// BasePath is the supervised service's base configuration path. The
	// instruction file is located at BasePath + ".copies".
	BasePath string `yaml:"base_path"`

	// WorkDir is the directory relative operands resolve against. Defaults
	// to BasePath's directory.
	WorkDir string `yaml:"work_dir,omitempty"`

	// Log configures the rolling wrapper-log sink. Nil means console only.
	Log *LogArgs `yaml:"log,omitempty"`

	// Execute configures execute-instruction handling. Running arbitrary
	// commands from an instruction file is opt-in.
	Execute *ExecuteArgs `yaml:"execute,omitempty"`
}

// 🗄️ LogArgs configures the rolling wrapper-log file.
type LogArgs struct {
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb,omitempty"`
	MaxBackups int    `yaml:"max_backups,omitempty"`
}

// 🚀 ExecuteArgs configures execute-instruction handling.
type ExecuteArgs struct {
	Enabled bool `yaml:"enabled"`
}

// ✅ Validate checks required fields and applies defaults.
func (c *Config) Validate() error {
	if c.BasePath == "" {
		return errors.New("base_path is required")
	}
	if c.WorkDir == "" {
		c.WorkDir = filepath.Dir(c.BasePath)
	}
	if c.Log != nil && c.Log.File == "" {
		return errors.New("log.file is required when a log block is present")
	}
	return nil
}

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

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

// 📂 Load reads and parses the config file at path, selecting a parser by
// file extension, and validates the result.
func Load(ctx context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	parser := GetParser(path)
	if parser == nil {
		return nil, errors.Errorf("no parser for config file %q", path)
	}

	cfg, err := parser.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}
	return cfg, nil
}
