package main

import (
	"github.com/Garik-/smf/pkg/midi"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	noteOnKind  = "note_on"
	noteOffKind = "note_off"
)

type velocityMap map[uint8]bool
type positionMap map[int]velocityMap
type typeMap map[string]positionMap

// note -> type -> position -> velocity
type noteMap map[uint8]typeMap

func (m noteMap) put(note uint8, kind string, position int, velocity uint8) {
	types, ok := m[note]
	if !ok {
		types = make(typeMap)
		m[note] = types
	}

	positions, ok := types[kind]
	if !ok {
		positions = make(positionMap)
		types[kind] = positions
	}

	velocities, ok := positions[position]
	if !ok {
		velocities = make(velocityMap)
		positions[position] = velocities
	}

	velocities[velocity] = true
}

// addFile records every note with a non-zero velocity at its quarter
// position within the bar.
func (m noteMap) addFile(name string, f *midi.File) {
	log := velocityMapLog

	for _, track := range f.Tracks {
		ticks := track.AbsoluteTicks()

		for i, event := range track.Events {
			var (
				note, velocity uint8
				kind           string
			)

			switch msg := event.Payload.(type) {
			case midi.NoteOn:
				note, velocity, kind = msg.Key, msg.Velocity, noteOnKind
			case midi.NoteOff:
				note, velocity, kind = msg.Key, msg.Velocity, noteOffKind
			default:
				continue
			}

			if velocity == 0 {
				continue
			}

			beat, ok := f.Header.Division.BeatAt(ticks[i])
			if !ok {
				log.Debug("no ticks per quarter note", zap.String("name", name))
				return
			}

			log.Debug("event", zap.Uint8("note", note), zap.Int("position", beat.Position()))
			m.put(note, kind, beat.Position(), velocity)
		}
	}
}

// report flattens the map for JSON, with velocities sorted.
func (m noteMap) report() map[uint8]map[string]map[int][]int {
	out := make(map[uint8]map[string]map[int][]int, len(m))
	for note, types := range m {
		outTypes := make(map[string]map[int][]int, len(types))
		for kind, positions := range types {
			outPositions := make(map[int][]int, len(positions))
			for position, velocities := range positions {
				keys := maps.Keys(velocities)
				slices.Sort(keys)

				list := make([]int, len(keys))
				for i, v := range keys {
					list[i] = int(v)
				}
				outPositions[position] = list
			}
			outTypes[kind] = outPositions
		}
		out[note] = outTypes
	}
	return out
}
