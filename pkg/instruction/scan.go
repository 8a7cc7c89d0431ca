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

// 🔍 operatorScan is the result of one pass over a line: how many move
// operators occur outside quoted regions, and where the last of each kind
// sits. Positions are byte offsets (the operators are ASCII).
type operatorScan struct {
	overwriteCount int // unquoted '>'
	overwritePos   int
	mergeCount     int // unquoted ')'
	mergePos       int
}

// scanOperators folds over the line's bytes tracking quote state. A double
// quote toggles the in-quotes flag; operators inside a quoted region are
// literal text and not counted. Counting every occurrence rather than taking
// the first lets the parser reject ambiguous lines (two unquoted '>' with no
// quoting) instead of guessing.
func scanOperators(line string) operatorScan {
	var res operatorScan
	quoted := false
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			quoted = !quoted
		case '>':
			if !quoted {
				res.overwriteCount++
				res.overwritePos = i
			}
		case ')':
			if !quoted {
				res.mergeCount++
				res.mergePos = i
			}
		}
	}
	return res
}
