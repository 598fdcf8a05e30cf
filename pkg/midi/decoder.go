package midi

import (
	"io"

	"go.uber.org/zap"
)

var (
	headerChunkID = [4]byte{0x4D, 0x54, 0x68, 0x64}
	trackChunkID  = [4]byte{0x4D, 0x54, 0x72, 0x6B}
)

// File is a decoded Standard MIDI File.
type File struct {
	Header Header
	Tracks []Track
}

type options struct {
	runningStatus bool
}

type Option func(*options)

// WithRunningStatus lets a channel message omit its status byte when it
// repeats the previous channel message status of the same track.
func WithRunningStatus() Option {
	return func(o *options) {
		o.runningStatus = true
	}
}

type Decoder struct {
	r    io.Reader
	opts options
}

func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	d := &Decoder{r: r}
	for _, opt := range opts {
		opt(&d.opts)
	}
	return d
}

// Decode reads r to the end and decodes the whole buffer.
func (d *Decoder) Decode() (*File, error) {
	data, err := io.ReadAll(d.r)
	if err != nil {
		return nil, err
	}
	return decode(data, d.opts)
}

// Decode decodes an in-memory SMF image. No partial result is returned on
// error.
func Decode(data []byte, opts ...Option) (*File, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return decode(data, o)
}

// decode scans chunks until the end of the buffer. The last MThd wins,
// unknown chunks are skipped by their declared length.
func decode(data []byte, o options) (*File, error) {
	c := &cursor{data: data}
	f := &File{Header: DefaultHeader}

	for c.remaining() > 0 {
		offset := c.pos
		id, size, err := c.readChunkPrelude()
		if err != nil {
			return nil, err
		}

		switch id {
		case headerChunkID:
			if size != headerLength {
				return nil, &WrongHeaderLengthError{Expected: headerLength, Found: size}
			}
			if f.Header, err = decodeHeader(c); err != nil {
				return nil, err
			}

		case trackChunkID:
			track, err := decodeTrack(c, size, o.runningStatus)
			if err != nil {
				return nil, err
			}
			f.Tracks = append(f.Tracks, track)

		default:
			decoderLog.Debug("skip chunk", zap.ByteString("id", id[:]), zap.Int("offset", offset),
				zap.Uint32("size", size))
			if _, err := c.readBytes(int(size)); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
