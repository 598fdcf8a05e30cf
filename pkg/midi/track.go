package midi

import "go.uber.org/zap"

// Track is the ordered list of events of one MTrk chunk.
type Track struct {
	Events []TrackEvent
}

// AbsoluteTicks returns the tick of every event counted from the start of
// the track.
func (t Track) AbsoluteTicks() []uint64 {
	ticks := make([]uint64, len(t.Events))
	var now uint64
	for i, e := range t.Events {
		now += uint64(e.DeltaTime)
		ticks[i] = now
	}
	return ticks
}

// Duration is the tick of the last event.
func (t Track) Duration() uint64 {
	var total uint64
	for _, e := range t.Events {
		total += uint64(e.DeltaTime)
	}
	return total
}

// decodeTrack decodes events until length bytes from the start of the body
// have been consumed. An event that runs over the boundary is not detected
// here.
func decodeTrack(c *cursor, length uint32, runningStatus bool) (Track, error) {
	begin := c.pos
	md := messageDecoder{runningStatus: runningStatus}

	var track Track
	for uint64(c.pos-begin) < uint64(length) {
		e, err := decodeEvent(c, &md)
		if err != nil {
			return Track{}, err
		}
		track.Events = append(track.Events, e)
	}

	decoderLog.Debug("track", zap.Int("offset", begin), zap.Uint32("length", length),
		zap.Int("events", len(track.Events)))

	return track, nil
}
