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
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"

	"github.com/brettwooldridge/winsw/pkg/diag"
	"github.com/brettwooldridge/winsw/pkg/instruction"
)

// 🚀 CommandRunner runs an execute-instruction command line. Spawning
// processes is the host's concern; the executor only dispatches to it.
type CommandRunner interface {
	Run(ctx context.Context, commandLine string) error
}

// ⚙️ Executor applies parsed instructions to the filesystem. File-system
// errors never propagate past Apply: each failure is reported through the
// diagnostic sink and the instruction becomes a no-op so the batch continues.
type Executor struct {
	workDir string
	sink    diag.Sink
	runner  CommandRunner
}

// 🛠️ Options configures an Executor.
type Options struct {
	// WorkDir is the directory relative operands resolve against.
	WorkDir string
	// Sink receives all operation diagnostics. Required.
	Sink diag.Sink
	// Runner handles execute instructions. Optional; when nil, execute
	// instructions are reported and skipped.
	Runner CommandRunner
}

// 🏭 New creates an Executor.
func New(opts Options) *Executor {
	return &Executor{
		workDir: opts.WorkDir,
		sink:    opts.Sink,
		runner:  opts.Runner,
	}
}

// 🏃 Apply performs the file-system effect of one instruction. It never
// returns an error; every failure is logged through the sink.
func (e *Executor) Apply(ctx context.Context, in instruction.Instruction) {
	switch v := in.(type) {
	case instruction.Comment:
		e.sink.Info(v.Text)
	case instruction.Delete:
		e.delete(v.Pattern)
	case instruction.Execute:
		e.execute(ctx, v.CommandLine)
	case instruction.Move:
		e.move(v.Source, v.Destination, v.Policy)
	default:
		diag.Warnf(e.sink, "line %d: no handler for %s instruction", in.Line(), in.Kind())
	}
}

// resolve anchors a relative operand at the working directory.
func (e *Executor) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) || e.workDir == "" {
		return p
	}
	return filepath.Join(e.workDir, p)
}

func hasWildcard(p string) bool {
	return strings.ContainsAny(p, "*?")
}

// 🗑️ delete removes the pattern's targets: every matching file in the
// pattern's parent directory for wildcards, a whole tree for a directory,
// a single file otherwise. An absent target is not an error.
func (e *Executor) delete(pattern string) {
	target := e.resolve(pattern)

	if hasWildcard(target) {
		matches, err := e.expandWildcard(target)
		if err != nil {
			diag.Warnf(e.sink, "deleting %s: %s", pattern, err)
			return
		}
		for _, m := range matches {
			if err := os.Remove(m); err != nil {
				diag.Warnf(e.sink, "deleting %s: %s", m, err)
			}
		}
		return
	}

	fi, err := os.Stat(target)
	if errors.Is(err, fs.ErrNotExist) {
		return
	}
	if err != nil {
		diag.Warnf(e.sink, "deleting %s: %s", target, err)
		return
	}
	if fi.IsDir() {
		err = os.RemoveAll(target)
	} else {
		err = os.Remove(target)
	}
	if err != nil {
		diag.Warnf(e.sink, "deleting %s: %s", target, err)
	}
}

// expandWildcard lists the files directly inside the pattern's parent
// directory whose base names match the pattern tail. Matching is
// non-recursive; subdirectories are not descended into and never match.
func (e *Executor) expandWildcard(pattern string) ([]string, error) {
	dir := filepath.Dir(pattern)
	expr := filepath.Base(pattern)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Errorf("listing %s: %w", dir, err)
	}

	var matches []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ok, err := doublestar.Match(expr, entry.Name())
		if err != nil {
			return nil, errors.Errorf("matching %q against %q: %w", expr, entry.Name(), err)
		}
		if ok {
			matches = append(matches, filepath.Join(dir, entry.Name()))
		}
	}
	return matches, nil
}

// 📦 move dispatches on the nature of the source: wildcard fan-out, whole
// directory, or single file.
func (e *Executor) move(source, destination string, policy instruction.OverwritePolicy) {
	src := e.resolve(source)
	dst := e.resolve(destination)

	if hasWildcard(src) {
		if err := os.MkdirAll(dst, 0o755); err != nil {
			diag.Warnf(e.sink, "moving %s to %s: %s", source, destination, err)
			return
		}
		matches, err := e.expandWildcard(src)
		if err != nil {
			diag.Warnf(e.sink, "moving %s to %s: %s", source, destination, err)
			return
		}
		for _, m := range matches {
			// Each matched file carries its own failure handling, so one
			// bad file does not stop its siblings.
			e.move(m, dst, policy)
		}
		return
	}

	fi, err := os.Stat(src)
	if err != nil {
		diag.Warnf(e.sink, "moving %s to %s: %s", source, destination, err)
		return
	}
	if fi.IsDir() {
		if err := e.moveDir(src, dst, policy); err != nil {
			diag.Warnf(e.sink, "moving directory %s to %s: %s", src, dst, err)
		}
		return
	}
	if err := e.moveFile(src, dst, policy); err != nil {
		diag.Warnf(e.sink, "moving %s to %s: %s", src, dst, err)
	}
}

// 📁 moveDir moves the directory src toward dst. A missing dst gets a plain
// rename. An existing dst directory nests src under it by base name:
// replaced under Overwrite (or when the nested target is absent), merged
// entry by entry under NoOverwriteMerge.
func (e *Executor) moveDir(src, dst string, policy instruction.OverwritePolicy) error {
	dfi, err := os.Stat(dst)
	if errors.Is(err, fs.ErrNotExist) {
		return os.Rename(src, dst)
	}
	if err != nil {
		return errors.Errorf("inspecting %s: %w", dst, err)
	}
	if !dfi.IsDir() {
		// dst is an existing file; rename surfaces the conflict.
		return os.Rename(src, dst)
	}

	target := filepath.Join(dst, filepath.Base(src))
	_, terr := os.Stat(target)
	targetExists := terr == nil

	if policy == instruction.Overwrite || !targetExists {
		if targetExists {
			if err := os.RemoveAll(target); err != nil {
				return errors.Errorf("removing %s: %w", target, err)
			}
		}
		return os.Rename(src, target)
	}

	// Merge: move each child into the nested target by its base name,
	// keeping non-conflicting target entries in place. The source directory
	// husk stays behind along with anything the merge skipped.
	entries, err := os.ReadDir(src)
	if err != nil {
		return errors.Errorf("listing %s: %w", src, err)
	}
	for _, entry := range entries {
		child := filepath.Join(src, entry.Name())
		if entry.IsDir() {
			if err := e.moveDir(child, target, policy); err != nil {
				diag.Warnf(e.sink, "merging directory %s into %s: %s", child, target, err)
			}
		} else {
			if err := e.moveFile(child, target, policy); err != nil {
				diag.Warnf(e.sink, "merging %s into %s: %s", child, target, err)
			}
		}
	}
	return nil
}

// 📄 moveFile moves a single file. A directory destination nests the file
// under it by base name. An existing target is replaced under Overwrite and
// kept under NoOverwriteMerge, in which case the source stays where it is.
func (e *Executor) moveFile(src, dst string, policy instruction.OverwritePolicy) error {
	target := dst
	if fi, err := os.Stat(dst); err == nil && fi.IsDir() {
		target = filepath.Join(dst, filepath.Base(src))
	}

	_, terr := os.Stat(target)
	targetExists := terr == nil

	if policy == instruction.NoOverwriteMerge && targetExists {
		diag.Infof(e.sink, "keeping %s: overwrite disabled, source %s left in place", target, src)
		return nil
	}

	if targetExists {
		if err := os.Remove(target); err != nil {
			return errors.Errorf("removing %s: %w", target, err)
		}
	}
	return os.Rename(src, target)
}

// 🚀 execute hands the command line to the configured runner.
func (e *Executor) execute(ctx context.Context, commandLine string) {
	if e.runner == nil {
		diag.Warnf(e.sink, "execute instruction ignored, no command runner configured: %s", commandLine)
		return
	}
	if err := e.runner.Run(ctx, commandLine); err != nil {
		diag.Warnf(e.sink, "executing %q: %s", commandLine, err)
	}
}
