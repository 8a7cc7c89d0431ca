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

package instruction

import "fmt"

// 📜 OverwritePolicy controls what happens when a move's destination
// already exists.
type OverwritePolicy int

const (
	// Overwrite replaces an existing destination file or directory.
	Overwrite OverwritePolicy = iota
	// NoOverwriteMerge preserves existing destination files; an existing
	// destination directory is merged into instead of replaced.
	NoOverwriteMerge
)

// String returns a string representation of OverwritePolicy
func (p OverwritePolicy) String() string {
	switch p {
	case Overwrite:
		return "overwrite"
	case NoOverwriteMerge:
		return "no-overwrite"
	default:
		return "unknown"
	}
}

// 🎯 Instruction is one parsed line of an instruction file. Instructions are
// immutable once parsed and carry their originating 1-based line number for
// diagnostics only.
type Instruction interface {
	// Line returns the 1-based line number the instruction came from.
	Line() int
	// Kind returns a short name for the instruction type.
	Kind() string
}

// 💬 Comment is a `#` line. It is surfaced to diagnostics verbatim and
// never executed.
type Comment struct {
	LineNum int
	Text    string
}

func (c Comment) Line() int    { return c.LineNum }
func (c Comment) Kind() string { return "comment" }

// 🗑️ Delete is a `<target` line. Pattern may contain `*`/`?` wildcards,
// in which case it names a set of files within its parent directory.
type Delete struct {
	LineNum int
	Pattern string
}

func (d Delete) Line() int    { return d.LineNum }
func (d Delete) Kind() string { return "delete" }

// 🚀 Execute is an `@command args...` line. The command line is kept
// verbatim; running it is the host's concern, not the interpreter's.
type Execute struct {
	LineNum     int
	CommandLine string
}

func (e Execute) Line() int    { return e.LineNum }
func (e Execute) Kind() string { return "execute" }

// 📦 Move is a `source > destination` or `source ) destination` line:
// a copy/move whose destination handling is governed by Policy.
type Move struct {
	LineNum     int
	Source      string
	Destination string
	Policy      OverwritePolicy
}

func (m Move) Line() int    { return m.LineNum }
func (m Move) Kind() string { return "move" }

// ⚠️ ParseError reports a line that matches no known instruction shape.
// It is a diagnostic, not a fatal condition: callers log it and move on.
type ParseError struct {
	LineNum int
	Text    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: unrecognized instruction: %s", e.LineNum, e.Text)
}
