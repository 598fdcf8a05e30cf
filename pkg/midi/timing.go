package midi

// Beat is the half-open tick window [Start, End) of one quarter note.
type Beat struct {
	Index int64
	Start uint64
	End   uint64
}

func (b Beat) Contains(tick uint64) bool {
	return tick >= b.Start && tick < b.End
}

// Position is the quarter note within a 4/4 bar, 0 to 3.
func (b Beat) Position() int {
	return int(b.Index % 4)
}

// stepBy moves the window n quarter notes forward.
func (b *Beat) stepBy(n int64) {
	step := b.End - b.Start
	b.Index += n
	b.Start += step * uint64(n)
	b.End += step * uint64(n)
}

// BeatAt returns the quarter note containing tick. It fails for SMPTE
// divisions and for a zero tick count.
func (d Division) BeatAt(tick uint64) (Beat, bool) {
	tpqn := uint64(d.TicksPerQuarterNote())
	if tpqn == 0 {
		return Beat{}, false
	}

	b := Beat{Start: 0, End: tpqn}
	if !b.Contains(tick) {
		b.stepBy(int64(tick / tpqn))
	}
	return b, true
}
