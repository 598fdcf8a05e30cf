package midi

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeOne(t *testing.T, data ...byte) (Message, *cursor) {
	t.Helper()
	c := &cursor{data: data}
	md := messageDecoder{}
	msg, err := md.decode(c)
	require.NoError(t, err)
	return msg, c
}

func TestDecodeChannelVoiceMessages(t *testing.T) {
	cases := []struct {
		data []byte
		want Message
	}{
		{[]byte{0x80, 0x30, 0x7F}, NoteOff{Channel: 0, Key: 48, Velocity: 127}},
		{[]byte{0x83, 0x34, 0x7B}, NoteOff{Channel: 3, Key: 52, Velocity: 123}},
		{[]byte{0x8B, 0x36, 0x03}, NoteOff{Channel: 11, Key: 54, Velocity: 3}},
		{[]byte{0x90, 0x3C, 0x40}, NoteOn{Channel: 0, Key: 60, Velocity: 64}},
		{[]byte{0x9F, 0x7F, 0x00}, NoteOn{Channel: 15, Key: 127, Velocity: 0}},
		{[]byte{0xA4, 0x45, 0x12}, PolyphonicKeyPressure{Channel: 4, Key: 69, Pressure: 18}},
		{[]byte{0xB2, 0x07, 0x64}, ControlChange{Channel: 2, Controller: 7, Value: 100}},
		{[]byte{0xC5, 0x2E}, ProgramChange{Channel: 5, Program: 46}},
		{[]byte{0xDF, 0x40}, ChannelPressure{Channel: 15, Pressure: 64}},
		{[]byte{0xE1, 0x00, 0x40}, PitchWheelChange{Channel: 1, Value: 0x2000}},
		{[]byte{0xE0, 0x7F, 0x7F}, PitchWheelChange{Channel: 0, Value: 0x3FFF}},
		{[]byte{0xE9, 0x01, 0x02}, PitchWheelChange{Channel: 9, Value: 2<<7 | 1}},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("% x", tc.data), func(t *testing.T) {
			msg, c := decodeOne(t, tc.data...)
			assert.Equal(t, tc.want, msg)
			assert.Equal(t, len(tc.data), c.pos)
		})
	}
}

func TestDecodeAllNotesOffOnEveryChannel(t *testing.T) {
	for ch := uint8(0); ch < 16; ch++ {
		msg, _ := decodeOne(t, 0xB0|ch, 123, 0)
		assert.Equal(t, AllNotesOff{Channel: ch}, msg)
	}
}

func TestDecodeChannelModeMessages(t *testing.T) {
	cases := []struct {
		controller, value uint8
		want              Message
	}{
		{122, 0, LocalControlOff{Channel: 6}},
		{122, 127, LocalControlOn{Channel: 6}},
		{124, 0, OmniModeOff{Channel: 6}},
		{125, 0, OmniModeOn{Channel: 6}},
		{126, 4, MonoModeOn{Channel: 6, Channels: 4}},
		{126, 0, MonoModeOn{Channel: 6, Channels: 0}},
		{127, 0, PolyModeOn{Channel: 6}},
		// only the exact pairs are re-tagged
		{122, 64, ControlChange{Channel: 6, Controller: 122, Value: 64}},
		{123, 5, ControlChange{Channel: 6, Controller: 123, Value: 5}},
		{127, 1, ControlChange{Channel: 6, Controller: 127, Value: 1}},
		{121, 0, ControlChange{Channel: 6, Controller: 121, Value: 0}},
	}

	for _, tc := range cases {
		msg, _ := decodeOne(t, 0xB6, tc.controller, tc.value)
		assert.Equal(t, tc.want, msg, "controller %d value %d", tc.controller, tc.value)
	}
}

func TestDecodeSystemMessages(t *testing.T) {
	cases := []struct {
		data []byte
		want Message
	}{
		{[]byte{0xF0, 0x43, 0x01, 0x02, 0x03, 0xF7}, SystemExclusive{ManufacturerID: 0x43, Data: []byte{1, 2, 3}}},
		{[]byte{0xF0, 0x7E, 0xF7}, SystemExclusive{ManufacturerID: 0x7E}},
		{[]byte{0xF2, 0x01, 0x02}, SongPositionPointer{Beats: 2<<7 | 1}},
		{[]byte{0xF3, 0x05}, SongSelect{Song: 5}},
		{[]byte{0xF6}, TuneRequest{}},
		{[]byte{0xF8}, TimingClock{}},
		{[]byte{0xFA}, Start{}},
		{[]byte{0xFB}, Continue{}},
		{[]byte{0xFC}, Stop{}},
		{[]byte{0xFE}, ActiveSensing{}},
		{[]byte{0xFF}, Reset{}},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("% x", tc.data), func(t *testing.T) {
			msg, c := decodeOne(t, tc.data...)
			assert.Equal(t, tc.want, msg)
			assert.Equal(t, len(tc.data), c.pos)
		})
	}
}

func TestDecodeUndefinedMessageCode(t *testing.T) {
	for _, code := range []byte{0xF1, 0xF4, 0xF5, 0xF7, 0xF9, 0xFD, 0x00, 0x40, 0x7F} {
		c := &cursor{data: []byte{0x00, code, 0x00, 0x00}, pos: 1}
		md := messageDecoder{}

		_, err := md.decode(c)
		assert.Equal(t, &UndefinedMessageCodeError{Position: 1, Code: code}, err)
		assert.True(t, errors.Is(err, ErrUnexpectedData))
	}
}

func TestDecodeMessageTruncated(t *testing.T) {
	cases := []struct {
		data []byte
		want *EOFError
	}{
		{nil, &EOFError{Position: 0, Requested: 1, BufferSize: 0}},
		{[]byte{0x90, 0x40}, &EOFError{Position: 1, Requested: 2, BufferSize: 2}},
		{[]byte{0xC0}, &EOFError{Position: 1, Requested: 1, BufferSize: 1}},
		{[]byte{0xF2, 0x01}, &EOFError{Position: 1, Requested: 2, BufferSize: 2}},
		{[]byte{0xF0}, &EOFError{Position: 1, Requested: 1, BufferSize: 1}},
		// the End-of-Exclusive byte is required
		{[]byte{0xF0, 0x43, 0x01, 0x02}, &EOFError{Position: 4, Requested: 1, BufferSize: 4}},
	}

	for _, tc := range cases {
		c := &cursor{data: tc.data}
		md := messageDecoder{}

		_, err := md.decode(c)
		assert.Equal(t, tc.want, err, "% x", tc.data)
	}
}

func TestDecodeRunningStatus(t *testing.T) {
	c := &cursor{data: []byte{
		0x90, 0x40, 0x7F,
		0x41, 0x00,
		0xF8,
		0x42, 0x10,
		0xF0, 0x01, 0xF7,
		0x43, 0x00,
	}}
	md := messageDecoder{runningStatus: true}

	want := []Message{
		NoteOn{Channel: 0, Key: 0x40, Velocity: 0x7F},
		NoteOn{Channel: 0, Key: 0x41, Velocity: 0x00},
		TimingClock{},
		NoteOn{Channel: 0, Key: 0x42, Velocity: 0x10},
		SystemExclusive{ManufacturerID: 0x01},
	}
	for _, w := range want {
		msg, err := md.decode(c)
		require.NoError(t, err)
		assert.Equal(t, w, msg)
	}

	// sysex cancelled the running status
	_, err := md.decode(c)
	assert.Equal(t, &UndefinedMessageCodeError{Position: 11, Code: 0x43}, err)
}
