package midi

import "fmt"

// Payload is the body of a TrackEvent: either a Message or a MetaEvent.
type Payload interface {
	fmt.Stringer
	payload()
}

// Message is a channel voice, channel mode, system common or system
// real-time message.
type Message interface {
	Payload
	message()
}

// Channel voice messages.

type NoteOff struct {
	Channel  uint8
	Key      uint8
	Velocity uint8
}

type NoteOn struct {
	Channel  uint8
	Key      uint8
	Velocity uint8
}

type PolyphonicKeyPressure struct {
	Channel  uint8
	Key      uint8
	Pressure uint8
}

// ControlChange is a controller change that does not match any channel mode
// message.
type ControlChange struct {
	Channel    uint8
	Controller uint8
	Value      uint8
}

type ProgramChange struct {
	Channel uint8
	Program uint8
}

type ChannelPressure struct {
	Channel  uint8
	Pressure uint8
}

// PitchWheelChange holds a 14-bit value, 0x2000 is the center.
type PitchWheelChange struct {
	Channel uint8
	Value   uint16
}

// Channel mode messages. All of them are control changes on controllers
// 122-127.

type LocalControlOff struct{ Channel uint8 }

type LocalControlOn struct{ Channel uint8 }

type AllNotesOff struct{ Channel uint8 }

type OmniModeOff struct{ Channel uint8 }

type OmniModeOn struct{ Channel uint8 }

// MonoModeOn carries the number of channels (0 means as many as voices).
type MonoModeOn struct {
	Channel  uint8
	Channels uint8
}

type PolyModeOn struct{ Channel uint8 }

// System common messages.

// SystemExclusive holds the bytes between the manufacturer ID and the
// End-of-Exclusive byte, both excluded.
type SystemExclusive struct {
	ManufacturerID uint8
	Data           []byte
}

// SongPositionPointer counts MIDI beats (sixteenth notes) since the start.
type SongPositionPointer struct {
	Beats uint16
}

type SongSelect struct {
	Song uint8
}

type TuneRequest struct{}

// System real-time messages.

type TimingClock struct{}

type Start struct{}

type Continue struct{}

type Stop struct{}

type ActiveSensing struct{}

type Reset struct{}

func (NoteOff) payload()               {}
func (NoteOn) payload()                {}
func (PolyphonicKeyPressure) payload() {}
func (ControlChange) payload()         {}
func (ProgramChange) payload()         {}
func (ChannelPressure) payload()       {}
func (PitchWheelChange) payload()      {}
func (LocalControlOff) payload()       {}
func (LocalControlOn) payload()        {}
func (AllNotesOff) payload()           {}
func (OmniModeOff) payload()           {}
func (OmniModeOn) payload()            {}
func (MonoModeOn) payload()            {}
func (PolyModeOn) payload()            {}
func (SystemExclusive) payload()       {}
func (SongPositionPointer) payload()   {}
func (SongSelect) payload()            {}
func (TuneRequest) payload()           {}
func (TimingClock) payload()           {}
func (Start) payload()                 {}
func (Continue) payload()              {}
func (Stop) payload()                  {}
func (ActiveSensing) payload()         {}
func (Reset) payload()                 {}

func (NoteOff) message()               {}
func (NoteOn) message()                {}
func (PolyphonicKeyPressure) message() {}
func (ControlChange) message()         {}
func (ProgramChange) message()         {}
func (ChannelPressure) message()       {}
func (PitchWheelChange) message()      {}
func (LocalControlOff) message()       {}
func (LocalControlOn) message()        {}
func (AllNotesOff) message()           {}
func (OmniModeOff) message()           {}
func (OmniModeOn) message()            {}
func (MonoModeOn) message()            {}
func (PolyModeOn) message()            {}
func (SystemExclusive) message()       {}
func (SongPositionPointer) message()   {}
func (SongSelect) message()            {}
func (TuneRequest) message()           {}
func (TimingClock) message()           {}
func (Start) message()                 {}
func (Continue) message()              {}
func (Stop) message()                  {}
func (ActiveSensing) message()         {}
func (Reset) message()                 {}

func (m NoteOff) String() string {
	return fmt.Sprintf("channel %d: note %d off, velocity %d", m.Channel, m.Key, m.Velocity)
}

func (m NoteOn) String() string {
	return fmt.Sprintf("channel %d: note %d on, velocity %d", m.Channel, m.Key, m.Velocity)
}

func (m PolyphonicKeyPressure) String() string {
	return fmt.Sprintf("channel %d: note %d pressure %d", m.Channel, m.Key, m.Pressure)
}

func (m ControlChange) String() string {
	return fmt.Sprintf("channel %d: controller %d = %d", m.Channel, m.Controller, m.Value)
}

func (m ProgramChange) String() string {
	return fmt.Sprintf("channel %d: program change to %d", m.Channel, m.Program)
}

func (m ChannelPressure) String() string {
	return fmt.Sprintf("channel %d: channel pressure %d", m.Channel, m.Pressure)
}

func (m PitchWheelChange) String() string {
	return fmt.Sprintf("channel %d: pitch wheel %d", m.Channel, m.Value)
}

func (m LocalControlOff) String() string {
	return fmt.Sprintf("channel %d: local control off", m.Channel)
}

func (m LocalControlOn) String() string {
	return fmt.Sprintf("channel %d: local control on", m.Channel)
}

func (m AllNotesOff) String() string {
	return fmt.Sprintf("channel %d: all notes off", m.Channel)
}

func (m OmniModeOff) String() string {
	return fmt.Sprintf("channel %d: omni mode off", m.Channel)
}

func (m OmniModeOn) String() string {
	return fmt.Sprintf("channel %d: omni mode on", m.Channel)
}

func (m MonoModeOn) String() string {
	return fmt.Sprintf("channel %d: mono mode on, %d channels", m.Channel, m.Channels)
}

func (m PolyModeOn) String() string {
	return fmt.Sprintf("channel %d: poly mode on", m.Channel)
}

func (m SystemExclusive) String() string {
	return fmt.Sprintf("system exclusive, manufacturer %#02x, %d bytes: % x", m.ManufacturerID, len(m.Data), m.Data)
}

func (m SongPositionPointer) String() string {
	return fmt.Sprintf("song position %d", m.Beats)
}

func (m SongSelect) String() string {
	return fmt.Sprintf("song select %d", m.Song)
}

func (TuneRequest) String() string   { return "tune request" }
func (TimingClock) String() string   { return "timing clock" }
func (Start) String() string         { return "start" }
func (Continue) String() string      { return "continue" }
func (Stop) String() string          { return "stop" }
func (ActiveSensing) String() string { return "active sensing" }
func (Reset) String() string         { return "reset" }
