/*
Package instruction parses the line-oriented instruction-file grammar.

🎯 Purpose:
- Classifies each line as comment, delete, execute, or move
- Tracks quote state so operator characters can appear literally in operands
- Rejects ambiguous lines (multiple unquoted operators) instead of guessing

🤝 Interfaces:
- pathnorm: operand cleaning and environment expansion
- ParseError: the diagnostic callers log before skipping a line

The grammar, one instruction per line:

	# comment
	<target
	@command args...
	source > destination   (overwrite allowed)
	source ) destination   (no overwrite, directories merge)
*/
package instruction
