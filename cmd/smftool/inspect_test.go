package main

import (
	"bytes"
	"testing"

	"github.com/Garik-/smf/pkg/midi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspect(t *testing.T) {
	f, err := midi.Decode(validFile)
	require.NoError(t, err)

	var buf bytes.Buffer
	inspect(&buf, f, false)
	assert.Equal(t, "format: single track\n"+
		"tracks: 1 declared, 1 found\n"+
		"division: 96 ticks per quarter note\n"+
		"track 0: 4 events, 96 ticks\n", buf.String())

	buf.Reset()
	inspect(&buf, f, true)
	assert.Contains(t, buf.String(), "\n        96  ")
	assert.Equal(t, 8, bytes.Count(buf.Bytes(), []byte("\n")))
}

func TestReadGomidiGarbage(t *testing.T) {
	_, err := readGomidi([]byte("not a midi file"))
	assert.Error(t, err)
}
