package pathnorm

import (
	"os"
	"strings"
)

// Normalize cleans a raw path operand from an instruction line: it trims
// surrounding whitespace, strips one layer of surrounding double quotes,
// and expands environment-variable references. It never fails; input that
// needs no cleaning is returned unchanged.
//
// Interior quote characters are not un-escaped. An operand like `"a""b"`
// comes back as `a""b`.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return ExpandEnv(s)
}

// ExpandEnv expands environment-variable references in both %NAME% and
// $NAME/${NAME} form against the current environment. Instruction files are
// typically authored on the host the service runs on, so both conventions
// show up in practice. A %NAME% reference whose variable is unset is left
// literal; $NAME follows os.ExpandEnv semantics (unset expands to empty).
func ExpandEnv(s string) string {
	return os.ExpandEnv(expandPercent(s))
}

// expandPercent resolves %NAME% pairs left to right. When a candidate pair
// names an unset variable, only the opening percent is committed as literal
// text so a later pair can still match.
func expandPercent(s string) string {
	if !strings.ContainsRune(s, '%') {
		return s
	}
	var b strings.Builder
	for {
		i := strings.IndexByte(s, '%')
		if i < 0 || i == len(s)-1 {
			b.WriteString(s)
			return b.String()
		}
		j := strings.IndexByte(s[i+1:], '%')
		if j < 0 {
			b.WriteString(s)
			return b.String()
		}
		name := s[i+1 : i+1+j]
		if val, ok := os.LookupEnv(name); ok && name != "" {
			b.WriteString(s[:i])
			b.WriteString(val)
			s = s[i+1+j+1:]
		} else {
			b.WriteString(s[:i+1])
			s = s[i+1:]
		}
	}
}
