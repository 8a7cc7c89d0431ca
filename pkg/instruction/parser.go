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

import (
	"strings"

	"github.com/brettwooldridge/winsw/pkg/pathnorm"
)

// 📝 Parse classifies one instruction-file line. The first non-whitespace
// character selects the instruction kind:
//
//	#  comment      (remainder surfaced verbatim)
//	<  delete       (operand normalized)
//	@  execute      (command line kept verbatim)
//
// Any other line is a move candidate: exactly one unquoted '>' makes a Move
// with Overwrite, otherwise exactly one unquoted ')' makes a Move with
// NoOverwriteMerge. Everything else is a *ParseError.
func Parse(line string, lineNum int) (Instruction, error) {
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		return nil, &ParseError{LineNum: lineNum, Text: line}
	}

	switch trimmed[0] {
	case '#':
		return Comment{LineNum: lineNum, Text: trimmed[1:]}, nil
	case '<':
		return Delete{LineNum: lineNum, Pattern: pathnorm.Normalize(trimmed[1:])}, nil
	case '@':
		return Execute{LineNum: lineNum, CommandLine: trimmed[1:]}, nil
	}

	sc := scanOperators(trimmed)
	switch {
	case sc.overwriteCount == 1:
		return splitMove(trimmed, lineNum, sc.overwritePos, Overwrite)
	case sc.mergeCount == 1:
		return splitMove(trimmed, lineNum, sc.mergePos, NoOverwriteMerge)
	default:
		return nil, &ParseError{LineNum: lineNum, Text: line}
	}
}

// splitMove splits a move line at the operator position. The character
// immediately before the operator is absorbed, so the idiomatic
// `source > destination` spacing drops the space rather than carrying it
// into the source operand; normalization trims whatever else remains.
func splitMove(line string, lineNum, pos int, policy OverwritePolicy) (Instruction, error) {
	if pos < 1 {
		return nil, &ParseError{LineNum: lineNum, Text: line}
	}
	return Move{
		LineNum:     lineNum,
		Source:      pathnorm.Normalize(line[:pos-1]),
		Destination: pathnorm.Normalize(line[pos+1:]),
		Policy:      policy,
	}, nil
}
