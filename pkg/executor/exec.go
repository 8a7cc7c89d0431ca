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

package executor

import (
	"context"
	"os/exec"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🚀 ProcessRunner is the host-side CommandRunner: it splits the command
// line on unquoted whitespace and runs the result as a child process,
// blocking until it exits.
type ProcessRunner struct {
	// Dir is the child's working directory. Empty means the caller's.
	Dir string
}

// Run implements CommandRunner.
func (r *ProcessRunner) Run(ctx context.Context, commandLine string) error {
	args := SplitCommandLine(commandLine)
	if len(args) == 0 {
		return errors.New("empty command line")
	}
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = r.Dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return errors.Errorf("running %s: %w (output: %s)", args[0], err, strings.TrimSpace(string(out)))
	}
	return nil
}

// SplitCommandLine splits on whitespace outside double-quoted regions and
// strips the quotes from each resulting argument.
func SplitCommandLine(commandLine string) []string {
	var args []string
	var cur strings.Builder
	quoted := false
	flush := func() {
		if cur.Len() > 0 {
			args = append(args, cur.String())
			cur.Reset()
		}
	}
	for i := 0; i < len(commandLine); i++ {
		c := commandLine[i]
		switch {
		case c == '"':
			quoted = !quoted
		case (c == ' ' || c == '\t') && !quoted:
			flush()
		default:
			cur.WriteByte(c)
		}
	}
	flush()
	return args
}
