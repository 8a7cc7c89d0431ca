package diag_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brettwooldridge/winsw/pkg/diag"
)

func TestConsoleSink(t *testing.T) {
	var console bytes.Buffer
	var structured bytes.Buffer
	zlog := zerolog.New(&structured)

	sink := diag.NewConsoleSink(&console, zlog)
	sink.Info("handling line 1")
	sink.Warn("something odd")

	assert.Contains(t, console.String(), "handling line 1")
	assert.Contains(t, console.String(), "something odd")
	assert.Contains(t, structured.String(), `"level":"info"`)
	assert.Contains(t, structured.String(), `"level":"warn"`)
}

func TestFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wrapper.log")

	sink := diag.NewFileSink(path, 1, 1)
	sink.Info("pass started")
	sink.Warn("line 2 skipped")
	require.NoError(t, sink.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "pass started")
	assert.Contains(t, string(data), "line 2 skipped")
}

func TestRecorderOrdering(t *testing.T) {
	rec := diag.NewRecorder()
	rec.Info("one")
	rec.Warn("two")
	rec.Info("three")

	events := rec.Events()
	require.Len(t, events, 3)
	assert.Equal(t, []string{"one", "three"}, rec.Infos())
	assert.Equal(t, []string{"two"}, rec.Warnings())
	assert.True(t, events[1].Warn)
}

func TestMultiSink(t *testing.T) {
	a := diag.NewRecorder()
	b := diag.NewRecorder()

	multi := diag.MultiSink{a, b}
	diag.Infof(multi, "line %d", 7)

	assert.Equal(t, []string{"line 7"}, a.Infos())
	assert.Equal(t, []string{"line 7"}, b.Infos())
}
