package midi

import "fmt"

// MetaEvent is an 0xFF-prefixed, type-tagged annotation of a track.
type MetaEvent interface {
	Payload
	// Code is the meta-type byte.
	Code() uint8
}

const (
	sequenceNumberMeta    = 0x00
	channelPrefixMeta     = 0x20
	portMeta              = 0x21
	endOfTrackMeta        = 0x2F
	setTempoMeta          = 0x51
	smpteOffsetMeta       = 0x54
	timeSignatureMeta     = 0x58
	keySignatureMeta      = 0x59
	sequencerSpecificMeta = 0x7F
)

// TextKind is the meta-type code of a text event.
type TextKind uint8

const (
	TextEvent TextKind = iota + 0x01
	CopyrightNotice
	TrackName
	InstrumentName
	Lyric
	Marker
	CuePoint
	ProgramName
	DeviceName
)

var textKindNames = map[TextKind]string{
	TextEvent:       "text",
	CopyrightNotice: "copyright",
	TrackName:       "track name",
	InstrumentName:  "instrument name",
	Lyric:           "lyric",
	Marker:          "marker",
	CuePoint:        "cue point",
	ProgramName:     "program name",
	DeviceName:      "device name",
}

func (k TextKind) String() string {
	if name, ok := textKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("text kind %#02x", uint8(k))
}

type SequenceNumber struct {
	Number uint16
}

// Text holds the payload of the text-like meta events. Invalid UTF-8 is
// replaced with U+FFFD.
type Text struct {
	Kind TextKind
	Text string
}

// ChannelPrefix associates the following meta and sysex events with a channel.
type ChannelPrefix struct {
	Channel uint8
}

type Port struct {
	Port uint8
}

type EndOfTrack struct{}

type SetTempo struct {
	MicrosecondsPerQuarterNote uint32
}

type SMPTEOffset struct {
	Hour             uint8
	Minute           uint8
	Second           uint8
	Frame            uint8
	FractionalFrames uint8
}

// TimeSignature stores the denominator as a power of two, so 6/8 is
// Numerator 6 and DenominatorExp 3.
type TimeSignature struct {
	Numerator                   uint8
	DenominatorExp              uint8
	ClocksPerClick              uint8
	ThirtySecondsPerQuarterNote uint8
}

// KeySignature counts sharps (positive) or flats (negative).
type KeySignature struct {
	SharpsFlats int8
	Minor       bool
}

type SequencerSpecific struct {
	Data []byte
}

// Alien is a meta event with an unknown code.
type Alien struct {
	Type uint8
	Data []byte
}

func (SequenceNumber) payload()    {}
func (Text) payload()              {}
func (ChannelPrefix) payload()     {}
func (Port) payload()              {}
func (EndOfTrack) payload()        {}
func (SetTempo) payload()          {}
func (SMPTEOffset) payload()       {}
func (TimeSignature) payload()     {}
func (KeySignature) payload()      {}
func (SequencerSpecific) payload() {}
func (Alien) payload()             {}

func (SequenceNumber) Code() uint8    { return sequenceNumberMeta }
func (e Text) Code() uint8            { return uint8(e.Kind) }
func (ChannelPrefix) Code() uint8     { return channelPrefixMeta }
func (Port) Code() uint8              { return portMeta }
func (EndOfTrack) Code() uint8        { return endOfTrackMeta }
func (SetTempo) Code() uint8          { return setTempoMeta }
func (SMPTEOffset) Code() uint8       { return smpteOffsetMeta }
func (TimeSignature) Code() uint8     { return timeSignatureMeta }
func (KeySignature) Code() uint8      { return keySignatureMeta }
func (SequencerSpecific) Code() uint8 { return sequencerSpecificMeta }
func (e Alien) Code() uint8           { return e.Type }

// BeatsPerMinute converts the tempo to quarter notes per minute.
func (e SetTempo) BeatsPerMinute() float64 {
	if e.MicrosecondsPerQuarterNote == 0 {
		return 0
	}
	return 60000000 / float64(e.MicrosecondsPerQuarterNote)
}

func (e TimeSignature) Denominator() uint32 {
	return 1 << e.DenominatorExp
}

func (e SequenceNumber) String() string {
	return fmt.Sprintf("sequence number %d", e.Number)
}

func (e Text) String() string {
	return fmt.Sprintf("%s: %q", e.Kind, e.Text)
}

func (e ChannelPrefix) String() string {
	return fmt.Sprintf("channel prefix %d", e.Channel)
}

func (e Port) String() string {
	return fmt.Sprintf("port %d", e.Port)
}

func (EndOfTrack) String() string { return "end of track" }

func (e SetTempo) String() string {
	return fmt.Sprintf("tempo %d us/quarter note (%.2f bpm)", e.MicrosecondsPerQuarterNote, e.BeatsPerMinute())
}

func (e SMPTEOffset) String() string {
	return fmt.Sprintf("SMPTE offset %02d:%02d:%02d frame %d.%02d", e.Hour, e.Minute, e.Second, e.Frame, e.FractionalFrames)
}

func (e TimeSignature) String() string {
	return fmt.Sprintf("time signature %d/%d, %d clocks per click, %d 32nds per quarter",
		e.Numerator, e.Denominator(), e.ClocksPerClick, e.ThirtySecondsPerQuarterNote)
}

func (e KeySignature) String() string {
	mode := "major"
	if e.Minor {
		mode = "minor"
	}
	return fmt.Sprintf("key signature %+d, %s", e.SharpsFlats, mode)
}

func (e SequencerSpecific) String() string {
	return fmt.Sprintf("sequencer specific, %d bytes", len(e.Data))
}

func (e Alien) String() string {
	return fmt.Sprintf("unknown meta event %#02x, %d bytes", e.Type, len(e.Data))
}
