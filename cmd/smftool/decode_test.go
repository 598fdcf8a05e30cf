package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Garik-/smf/pkg/midi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	validFile = []byte{
		'M', 'T', 'h', 'd', 0, 0, 0, 6, 0, 0, 0, 1, 0, 0x60,
		'M', 'T', 'r', 'k', 0, 0, 0, 16,
		0x00, 0x90, 0x3C, 0x40,
		0x60, 0x80, 0x3C, 0x40,
		0x00, 0x90, 0x3E, 0x00,
		0x00, 0xFF, 0x2F, 0x00,
	}
	// 0xF1 at offset 23 is not a message
	invalidFile = []byte{
		'M', 'T', 'h', 'd', 0, 0, 0, 6, 0, 0, 0, 1, 0, 0x60,
		'M', 'T', 'r', 'k', 0, 0, 0, 3,
		0x00, 0xF1, 0x00,
	}
)

func writeFiles(t *testing.T, files map[string][]byte) string {
	t.Helper()
	dir := t.TempDir()
	for name, data := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, data, 0o644))
	}
	return dir
}

func TestWalkPaths(t *testing.T) {
	dir := writeFiles(t, map[string][]byte{
		"a.mid":     validFile,
		"b.midi":    validFile,
		"c.txt":     validFile,
		"sub/d.MID": invalidFile,
	})

	paths, err := walkPaths([]string{dir, filepath.Join(dir, "c.txt")})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "a.mid"),
		filepath.Join(dir, "b.midi"),
		filepath.Join(dir, "sub", "d.MID"),
		filepath.Join(dir, "c.txt"),
	}, paths)

	_, err = walkPaths([]string{filepath.Join(dir, "missing")})
	assert.Error(t, err)
}

func TestErrorKind(t *testing.T) {
	_, err := midi.Decode(invalidFile)
	kind, pos := errorKind(err)
	assert.Equal(t, "undefined_message_code", kind)
	require.NotNil(t, pos)
	assert.Equal(t, 23, *pos)

	_, err = midi.Decode(validFile[:16])
	kind, pos = errorKind(err)
	assert.Equal(t, "eof", kind)
	require.NotNil(t, pos)
	assert.Equal(t, 14, *pos)

	_, err = readFile(filepath.Join(t.TempDir(), "missing.mid"))
	kind, pos = errorKind(err)
	assert.Equal(t, "io", kind)
	assert.Nil(t, pos)
}

func TestDecodeWorker(t *testing.T) {
	dir := writeFiles(t, map[string][]byte{
		"a.mid": validFile,
		"b.mid": validFile,
		"c.mid": invalidFile,
	})
	paths, err := walkPaths([]string{dir})
	require.NoError(t, err)

	ctx := context.Background()
	results, done := decodeWorker(ctx, readList(ctx, paths, nil), 2)

	failed := map[string]bool{}
	for r := range results {
		failed[filepath.Base(r.name)] = r.err != nil
	}
	<-done

	assert.Equal(t, map[string]bool{"a.mid": false, "b.mid": false, "c.mid": true}, failed)
}

func TestScan(t *testing.T) {
	dir := writeFiles(t, map[string][]byte{
		"a.mid": validFile,
		"b.mid": invalidFile,
	})
	list := strings.NewReader(filepath.Join(dir, "b.mid") + "\n\n" + filepath.Join(dir, "missing.mid") + "\n")

	rep, err := scan(context.Background(), []string{filepath.Join(dir, "a.mid")}, list, maxGoroutines)
	require.NoError(t, err)

	assert.NotEmpty(t, rep.RunID)
	assert.Equal(t, 3, rep.Files)
	assert.Equal(t, 2, rep.Failed)
	assert.Equal(t, map[string]int{"undefined_message_code": 1, "io": 1}, rep.FailuresByKind)
	require.Len(t, rep.Failures, 2)
	assert.Equal(t, filepath.Join(dir, "b.mid"), rep.Failures[0].Name)
	assert.Equal(t, filepath.Join(dir, "missing.mid"), rep.Failures[1].Name)

	assert.Equal(t, map[uint8]map[string]map[int][]int{
		0x3C: {
			noteOnKind:  {0: {0x40}},
			noteOffKind: {1: {0x40}},
		},
	}, rep.Velocities)
}

func TestScanCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := scan(ctx, []string{"a.mid", "b.mid"}, nil, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
