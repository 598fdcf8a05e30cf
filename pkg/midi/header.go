package midi

import (
	"fmt"

	"github.com/ghostiam/binstruct"
	"go.uber.org/zap"
)

const headerLength = 6

type Format uint16

const (
	SingleTrack Format = iota
	SimultaneousTracks
	SequentialTracks
)

func (f Format) String() string {
	switch f {
	case SingleTrack:
		return "single track"
	case SimultaneousTracks:
		return "simultaneous tracks"
	case SequentialTracks:
		return "sequential tracks"
	}
	return fmt.Sprintf("format %d", uint16(f))
}

// Division is the raw division word of the header. Bit 15 selects SMPTE
// time code, otherwise the low 15 bits count ticks per quarter note.
type Division uint16

func (d Division) IsSMPTE() bool {
	return d&0x8000 != 0
}

// TicksPerQuarterNote returns 0 for SMPTE divisions.
func (d Division) TicksPerQuarterNote() uint16 {
	if d.IsSMPTE() {
		return 0
	}
	return uint16(d) & 0x7FFF
}

func (d Division) String() string {
	if d.IsSMPTE() {
		return fmt.Sprintf("SMPTE %#04x", uint16(d))
	}
	return fmt.Sprintf("%d ticks per quarter note", d.TicksPerQuarterNote())
}

// Header is the decoded MThd chunk. TrackCount is what the file declares,
// it is not checked against the MTrk chunks found.
type Header struct {
	Format     Format
	TrackCount uint16
	Division   Division
}

// DefaultHeader is used when a file has no MThd chunk.
var DefaultHeader = Header{
	Format:     SingleTrack,
	TrackCount: 1,
	Division:   96,
}

type headerBody struct {
	Format     uint16
	TrackCount uint16
	Division   uint16
}

// decodeHeader reads the MThd body. The chunk length is checked by the caller.
func decodeHeader(c *cursor) (Header, error) {
	b, err := c.readBytes(headerLength)
	if err != nil {
		return Header{}, err
	}

	var raw headerBody
	if err := binstruct.UnmarshalBE(b, &raw); err != nil {
		return Header{}, err
	}

	if raw.Format > uint16(SequentialTracks) {
		return Header{}, &UndefinedFileFormatError{Found: raw.Format}
	}

	division := Division(raw.Division)
	if division.IsSMPTE() {
		return Header{}, &UnsupportedDivisionError{Division: division}
	}

	h := Header{
		Format:     Format(raw.Format),
		TrackCount: raw.TrackCount,
		Division:   division,
	}

	decoderLog.Debug("header", zap.Stringer("format", h.Format), zap.Uint16("tracks", h.TrackCount),
		zap.Uint16("ticks", division.TicksPerQuarterNote()))

	return h, nil
}
