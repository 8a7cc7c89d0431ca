/*
Package executor applies parsed instructions to the filesystem.

	+-------------+
	|  Executor   |
	| (FS Effects)|
	+------+------+
	       |
	+------+------+
	|    Sink     |
	|(Diagnostics)|
	+-------------+

🎯 Purpose:
- Performs the delete and move/copy effect of each instruction
- Expands wildcard patterns over a single parent directory
- Merges directories entry by entry when overwriting is disabled
- Dispatches execute instructions to an injected command runner

🔄 Flow:
1. Apply receives one instruction from the batch runner
2. The instruction is dispatched by type
3. Every file-system failure is reported through the sink and absorbed
4. Control returns so the batch continues with the next line

⚡ Key Responsibilities:
- Overwrite-policy dispatch (replace vs preserve/merge)
- Non-recursive wildcard matching of directory-entry base names
- Resolving relative operands against the configured working directory

📝 Design Philosophy:
The executor owns file-system effects and nothing else. It never reads the
instruction file, never parses, and never terminates the batch: a failed
instruction is a logged no-op. Process execution is a capability injected by
the host, keeping this package free of exec concerns.
*/
package executor
