package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brettwooldridge/winsw/pkg/diag"
	"github.com/brettwooldridge/winsw/pkg/runner"
)

// 🧪 newTestRunner creates a runner rooted at a temp dir. The instruction
// file lives at <dir>/service.copies.
func newTestRunner(t *testing.T) (*runner.Runner, string, *diag.Recorder) {
	t.Helper()
	dir := t.TempDir()
	rec := diag.NewRecorder()
	r := runner.New(runner.Options{
		BasePath: filepath.Join(dir, "service"),
		WorkDir:  dir,
		Sink:     rec,
	})
	return r, dir, rec
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestRunFullBatch(t *testing.T) {
	r, dir, rec := newTestRunner(t)
	writeFile(t, filepath.Join(dir, "tmp", "old.txt"), "stale")
	writeFile(t, filepath.Join(dir, "tmp", "new.dll"), "fresh")
	writeFile(t, filepath.Join(dir, "bin", "app.dll"), "previous")
	writeFile(t, r.InstructionFile(),
		"# note\n"+
			"<tmp/old.txt\n"+
			"tmp/new.dll > bin/app.dll\n")

	require.NoError(t, r.Run(context.Background()))

	assert.NoFileExists(t, filepath.Join(dir, "tmp", "old.txt"))
	data, err := os.ReadFile(filepath.Join(dir, "bin", "app.dll"))
	require.NoError(t, err)
	assert.Equal(t, "fresh", string(data))
	assert.NoFileExists(t, filepath.Join(dir, "tmp", "new.dll"))
	// The instruction file is consumed.
	assert.NoFileExists(t, r.InstructionFile())
	assert.Empty(t, rec.Warnings())
}

func TestRunAbsentInstructionFile(t *testing.T) {
	r, _, rec := newTestRunner(t)

	require.NoError(t, r.Run(context.Background()))

	assert.Empty(t, rec.Events())
}

func TestRunBlankLinesSkippedAndNumberingPreserved(t *testing.T) {
	r, dir, rec := newTestRunner(t)
	writeFile(t, filepath.Join(dir, "a.txt"), "x")
	writeFile(t, r.InstructionFile(), "\n   \n<a.txt\n")

	require.NoError(t, r.Run(context.Background()))

	assert.NoFileExists(t, filepath.Join(dir, "a.txt"))
	infos := rec.Infos()
	require.Len(t, infos, 1)
	// The delete sits on line 3; blank lines still count.
	assert.Contains(t, infos[0], "line 3")
}

func TestRunUnrecognizedLineIsSkippedNotFatal(t *testing.T) {
	r, dir, rec := newTestRunner(t)
	writeFile(t, filepath.Join(dir, "b.txt"), "x")
	writeFile(t, r.InstructionFile(),
		"bogus line no operator\n"+
			"<b.txt\n")

	require.NoError(t, r.Run(context.Background()))

	require.Len(t, rec.Warnings(), 1)
	assert.Contains(t, rec.Warnings()[0], "unrecognized instruction")
	// The batch still completes: the next line ran and the file is gone.
	assert.NoFileExists(t, filepath.Join(dir, "b.txt"))
	assert.NoFileExists(t, r.InstructionFile())
}

func TestRunFailedOperationDoesNotStopBatch(t *testing.T) {
	r, dir, rec := newTestRunner(t)
	writeFile(t, filepath.Join(dir, "c.txt"), "x")
	writeFile(t, r.InstructionFile(),
		"ghost.txt > nowhere.txt\n"+
			"<c.txt\n")

	require.NoError(t, r.Run(context.Background()))

	require.Len(t, rec.Warnings(), 1)
	assert.NoFileExists(t, filepath.Join(dir, "c.txt"))
	assert.NoFileExists(t, r.InstructionFile())
}

func TestLintClassifiesWithoutMutating(t *testing.T) {
	r, dir, _ := newTestRunner(t)
	writeFile(t, filepath.Join(dir, "d.txt"), "x")
	writeFile(t, r.InstructionFile(),
		"# release\n"+
			"<d.txt\n"+
			"@restart worker\n"+
			"src.bin > dst.bin\n"+
			"cfg ) etc\n"+
			"bad > line > here\n")

	entries, err := r.Lint()
	require.NoError(t, err)
	require.Len(t, entries, 6)

	assert.Equal(t, "comment", entries[0].Kind)
	assert.Equal(t, "delete", entries[1].Kind)
	assert.Equal(t, "d.txt", entries[1].Detail)
	assert.Equal(t, "execute", entries[2].Kind)
	assert.Equal(t, "move", entries[3].Kind)
	assert.Equal(t, "src.bin -> dst.bin (overwrite)", entries[3].Detail)
	assert.Equal(t, "cfg -> etc (no-overwrite)", entries[4].Detail)
	assert.True(t, entries[5].Bad)
	assert.Equal(t, 6, entries[5].LineNum)

	// Lint touches nothing: target and instruction file both survive.
	assert.FileExists(t, filepath.Join(dir, "d.txt"))
	assert.FileExists(t, r.InstructionFile())
}

func TestLintAbsentFile(t *testing.T) {
	r, _, _ := newTestRunner(t)

	entries, err := r.Lint()
	require.NoError(t, err)
	assert.Nil(t, entries)
}
