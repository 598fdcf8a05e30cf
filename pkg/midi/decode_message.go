package midi

const (
	noteOffMsg          = 0x8
	noteOnMsg           = 0x9
	polyKeyPressureMsg  = 0xA
	controlChangeMsg    = 0xB
	programChangeMsg    = 0xC
	channelPressureMsg  = 0xD
	pitchWheelChangeMsg = 0xE
)

const (
	sysExStatus               = 0xF0
	songPositionPointerStatus = 0xF2
	songSelectStatus          = 0xF3
	tuneRequestStatus         = 0xF6
	sysExEndStatus            = 0xF7
	timingClockStatus         = 0xF8
	startStatus               = 0xFA
	continueStatus            = 0xFB
	stopStatus                = 0xFC
	activeSensingStatus       = 0xFE
	resetStatus               = 0xFF
)

// messageDecoder decodes the messages of one track. status is the running
// status, only consulted when runningStatus is set.
type messageDecoder struct {
	runningStatus bool
	status        byte
}

func (m *messageDecoder) decode(c *cursor) (Message, error) {
	at := c.pos
	status, err := c.readByte()
	if err != nil {
		return nil, err
	}

	if status&0x80 == 0 {
		if !m.runningStatus || m.status == 0 {
			return nil, &UndefinedMessageCodeError{Position: at, Code: status}
		}
		// the byte is the first operand of a repeated channel message
		c.pos = at
		status = m.status
	}

	if isVoiceMsgType(status >> 4) {
		m.status = status
		return decodeChannelMessage(c, status)
	}

	// system common messages cancel running status, real-time ones do not
	if status < timingClockStatus {
		m.status = 0
	}
	return decodeSystemMessage(c, status, at)
}

func decodeChannelMessage(c *cursor, status byte) (Message, error) {
	channel := status & 0x0F

	switch status >> 4 {
	case programChangeMsg, channelPressureMsg:
		v, err := c.readByte()
		if err != nil {
			return nil, err
		}
		if status>>4 == programChangeMsg {
			return ProgramChange{Channel: channel, Program: v}, nil
		}
		return ChannelPressure{Channel: channel, Pressure: v}, nil
	}

	b, err := c.readBytes(2)
	if err != nil {
		return nil, err
	}

	switch status >> 4 {
	case noteOffMsg:
		return NoteOff{Channel: channel, Key: b[0], Velocity: b[1]}, nil
	case noteOnMsg:
		return NoteOn{Channel: channel, Key: b[0], Velocity: b[1]}, nil
	case polyKeyPressureMsg:
		return PolyphonicKeyPressure{Channel: channel, Key: b[0], Pressure: b[1]}, nil
	case controlChangeMsg:
		return controlChange(channel, b[0], b[1]), nil
	default: // pitchWheelChangeMsg
		return PitchWheelChange{Channel: channel, Value: uint16(b[1])<<7 | uint16(b[0])}, nil
	}
}

// controlChange re-tags channel mode messages.
func controlChange(channel, controller, value uint8) Message {
	if controller == 126 {
		return MonoModeOn{Channel: channel, Channels: value}
	}

	switch {
	case controller == 122 && value == 0:
		return LocalControlOff{Channel: channel}
	case controller == 122 && value == 127:
		return LocalControlOn{Channel: channel}
	case controller == 123 && value == 0:
		return AllNotesOff{Channel: channel}
	case controller == 124 && value == 0:
		return OmniModeOff{Channel: channel}
	case controller == 125 && value == 0:
		return OmniModeOn{Channel: channel}
	case controller == 127 && value == 0:
		return PolyModeOn{Channel: channel}
	}

	return ControlChange{Channel: channel, Controller: controller, Value: value}
}

func decodeSystemMessage(c *cursor, status byte, at int) (Message, error) {
	switch status {
	case sysExStatus:
		return decodeSysEx(c)

	case songPositionPointerStatus:
		b, err := c.readBytes(2)
		if err != nil {
			return nil, err
		}
		return SongPositionPointer{Beats: uint16(b[1])<<7 | uint16(b[0])}, nil

	case songSelectStatus:
		song, err := c.readByte()
		if err != nil {
			return nil, err
		}
		return SongSelect{Song: song}, nil

	case tuneRequestStatus:
		return TuneRequest{}, nil
	case timingClockStatus:
		return TimingClock{}, nil
	case startStatus:
		return Start{}, nil
	case continueStatus:
		return Continue{}, nil
	case stopStatus:
		return Stop{}, nil
	case activeSensingStatus:
		return ActiveSensing{}, nil
	case resetStatus:
		return Reset{}, nil
	}

	// 0xF1, 0xF4, 0xF5, 0xF9, 0xFD and a stray 0xF7
	return nil, &UndefinedMessageCodeError{Position: at, Code: status}
}

// decodeSysEx reads a manufacturer ID and everything up to the End-of-Exclusive
// byte. The payload has no length limit but the terminator is required.
func decodeSysEx(c *cursor) (Message, error) {
	id, err := c.readByte()
	if err != nil {
		return nil, err
	}

	var data []byte
	for {
		b, err := c.readByte()
		if err != nil {
			return nil, err
		}
		if b == sysExEndStatus {
			break
		}
		data = append(data, b)
	}

	return SystemExclusive{ManufacturerID: id, Data: data}, nil
}

func isVoiceMsgType(b byte) bool {
	return noteOffMsg <= b && b <= pitchWheelChangeMsg
}
