package midi

import (
	"strings"

	"go.uber.org/zap"
)

const metaStatus = 0xFF

// fixedMetaLength lists the meta types whose payload has a mandatory size.
var fixedMetaLength = map[uint8]uint32{
	sequenceNumberMeta: 2,
	channelPrefixMeta:  1,
	portMeta:           1,
	endOfTrackMeta:     0,
	setTempoMeta:       3,
	smpteOffsetMeta:    5,
	timeSignatureMeta:  4,
	keySignatureMeta:   2,
}

// tryDecodeMeta decodes a meta event on a copy of c. c only advances when the
// whole event, length included, is valid. ok is false when the bytes at c are
// not a meta event.
func tryDecodeMeta(c *cursor) (ev MetaEvent, ok bool) {
	probe := *c

	head, err := probe.readBytes(2)
	if err != nil || head[0] != metaStatus {
		return nil, false
	}
	code := head[1]

	length, err := probe.readVarLen()
	if err != nil {
		metaLog.Debug("meta length unreadable", zap.Int("offset", c.pos), zap.Uint8("code", code))
		return nil, false
	}

	if want, fixed := fixedMetaLength[code]; fixed && length != want {
		metaLog.Debug("meta length mismatch", zap.Int("offset", c.pos), zap.Uint8("code", code),
			zap.Uint32("length", length), zap.Uint32("expected", want))
		return nil, false
	}

	data, err := probe.readBytes(int(length))
	if err != nil {
		metaLog.Debug("meta payload truncated", zap.Int("offset", c.pos), zap.Uint8("code", code),
			zap.Uint32("length", length))
		return nil, false
	}

	*c = probe
	return newMetaEvent(code, data), true
}

// newMetaEvent builds the event for a payload whose length was already checked.
func newMetaEvent(code uint8, data []byte) MetaEvent {
	switch code {
	case sequenceNumberMeta:
		return SequenceNumber{Number: uint16(data[0])<<8 | uint16(data[1])}
	case channelPrefixMeta:
		return ChannelPrefix{Channel: data[0]}
	case portMeta:
		return Port{Port: data[0]}
	case endOfTrackMeta:
		return EndOfTrack{}
	case setTempoMeta:
		return SetTempo{MicrosecondsPerQuarterNote: uint32(data[0])<<16 | uint32(data[1])<<8 | uint32(data[2])}
	case smpteOffsetMeta:
		return SMPTEOffset{
			Hour:             data[0],
			Minute:           data[1],
			Second:           data[2],
			Frame:            data[3],
			FractionalFrames: data[4],
		}
	case timeSignatureMeta:
		return TimeSignature{
			Numerator:                   data[0],
			DenominatorExp:              data[1],
			ClocksPerClick:              data[2],
			ThirtySecondsPerQuarterNote: data[3],
		}
	case keySignatureMeta:
		return KeySignature{SharpsFlats: int8(data[0]), Minor: data[1] == 1}
	case sequencerSpecificMeta:
		return SequencerSpecific{Data: clone(data)}
	}

	if code >= uint8(TextEvent) && code <= uint8(DeviceName) {
		return Text{Kind: TextKind(code), Text: strings.ToValidUTF8(string(data), "�")}
	}

	return Alien{Type: code, Data: clone(data)}
}

func clone(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	return append([]byte(nil), b...)
}
