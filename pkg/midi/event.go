package midi

// TrackEvent is one timed event of a track. DeltaTime counts ticks since the
// previous event of the same track.
type TrackEvent struct {
	DeltaTime uint32
	Payload   Payload
}

// Meta returns the payload as a meta event.
func (e TrackEvent) Meta() (MetaEvent, bool) {
	m, ok := e.Payload.(MetaEvent)
	return m, ok
}

// Message returns the payload as a MIDI message.
func (e TrackEvent) Message() (Message, bool) {
	m, ok := e.Payload.(Message)
	return m, ok
}

// decodeEvent reads a delta time, then a meta event or, failing that, a
// message.
func decodeEvent(c *cursor, md *messageDecoder) (TrackEvent, error) {
	delta, err := c.readVarLen()
	if err != nil {
		return TrackEvent{}, err
	}

	if meta, ok := tryDecodeMeta(c); ok {
		md.status = 0
		return TrackEvent{DeltaTime: delta, Payload: meta}, nil
	}

	msg, err := md.decode(c)
	if err != nil {
		return TrackEvent{}, err
	}
	return TrackEvent{DeltaTime: delta, Payload: msg}, nil
}
