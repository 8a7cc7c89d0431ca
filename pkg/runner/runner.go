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
	"context"
	"io/fs"
	"os"
	"strings"

	"gitlab.com/tozd/go/errors"

	"github.com/brettwooldridge/winsw/pkg/diag"
	"github.com/brettwooldridge/winsw/pkg/executor"
	"github.com/brettwooldridge/winsw/pkg/instruction"
)

// Suffix is appended to the host's base path to locate the instruction file.
const Suffix = ".copies"

// 🏃 Runner consumes an instruction file: one pass, line by line, then the
// file is deleted so it can never be applied twice.
type Runner struct {
	basePath string
	exec     *executor.Executor
	sink     diag.Sink
}

// 🛠️ Options configures a Runner.
type Options struct {
	// BasePath is the host's base configuration path; the instruction file
	// lives at BasePath + ".copies".
	BasePath string
	// WorkDir is the directory relative operands resolve against.
	WorkDir string
	// Sink receives all diagnostics. Required.
	Sink diag.Sink
	// CommandRunner handles execute instructions. Optional.
	CommandRunner executor.CommandRunner
}

// 🏭 New creates a Runner.
func New(opts Options) *Runner {
	return &Runner{
		basePath: opts.BasePath,
		exec: executor.New(executor.Options{
			WorkDir: opts.WorkDir,
			Sink:    opts.Sink,
			Runner:  opts.CommandRunner,
		}),
		sink: opts.Sink,
	}
}

// InstructionFile returns the path the runner reads instructions from.
func (r *Runner) InstructionFile() string {
	return r.basePath + Suffix
}

// 🏃 Run executes one interpretation pass. An absent instruction file is
// success with no diagnostics. Once the file has been opened it is removed
// on every exit path, normal or failing, so a later pass can never re-apply
// the same batch. Per-line failures are logged and skipped; only failures
// of the pass itself (unreadable file) are returned.
func (r *Runner) Run(ctx context.Context) error {
	path := r.InstructionFile()

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return errors.Errorf("opening instruction file %s: %w", path, err)
	}
	defer func() {
		f.Close()
		if rmErr := os.Remove(path); rmErr != nil {
			diag.Warnf(r.sink, "removing instruction file %s: %s", path, rmErr)
		}
	}()

	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.TrimLeft(line, " \t") == "" {
			continue
		}

		diag.Infof(r.sink, "handling line %d: %s", lineNum, line)

		in, err := instruction.Parse(line, lineNum)
		if err != nil {
			r.sink.Warn(err.Error())
			continue
		}
		r.exec.Apply(ctx, in)
	}
	if err := scanner.Err(); err != nil {
		return errors.Errorf("reading instruction file %s: %w", path, err)
	}
	return nil
}
