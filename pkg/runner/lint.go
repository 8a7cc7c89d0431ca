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

package runner

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gitlab.com/tozd/go/errors"

	"github.com/brettwooldridge/winsw/pkg/instruction"
)

// 🔎 LintEntry is the classification of one instruction-file line from a
// parse-only pass.
type LintEntry struct {
	LineNum int
	Raw     string
	Kind    string // comment, delete, execute, move, or "unrecognized"
	Detail  string // human-readable operand summary
	Bad     bool
}

// 🔎 Lint parses the instruction file without executing anything and
// without consuming it. An absent file yields no entries and no error.
func (r *Runner) Lint() ([]LintEntry, error) {
	path := r.InstructionFile()

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Errorf("opening instruction file %s: %w", path, err)
	}
	defer f.Close()

	// Non-nil even for an empty file, so callers can tell "no file" apart
	// from "nothing in it".
	entries := []LintEntry{}
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.TrimLeft(line, " \t") == "" {
			continue
		}

		in, err := instruction.Parse(line, lineNum)
		if err != nil {
			entries = append(entries, LintEntry{
				LineNum: lineNum,
				Raw:     line,
				Kind:    "unrecognized",
				Detail:  "no instruction shape matches this line",
				Bad:     true,
			})
			continue
		}
		entries = append(entries, LintEntry{
			LineNum: lineNum,
			Raw:     line,
			Kind:    in.Kind(),
			Detail:  describe(in),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Errorf("reading instruction file %s: %w", path, err)
	}
	return entries, nil
}

func describe(in instruction.Instruction) string {
	switch v := in.(type) {
	case instruction.Comment:
		return strings.TrimSpace(v.Text)
	case instruction.Delete:
		return v.Pattern
	case instruction.Execute:
		return v.CommandLine
	case instruction.Move:
		return fmt.Sprintf("%s -> %s (%s)", v.Source, v.Destination, v.Policy)
	default:
		return ""
	}
}
