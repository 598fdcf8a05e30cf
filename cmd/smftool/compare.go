package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/Garik-/smf/pkg/midi"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2/smf"
)

var compareCmd = &cobra.Command{
	Use:   "compare FILE",
	Short: "Cross-checks the decoder against gomidi",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readFile(args[0])
		if err != nil {
			return err
		}

		ours, err := midi.Decode(data, decodeOptions()...)
		if err != nil {
			return errors.Wrap(err, "smf")
		}

		theirs, err := readGomidi(data)
		if err != nil {
			return errors.Wrap(err, "gomidi")
		}

		if !compare(cmd.OutOrStdout(), ours, theirs) {
			return errors.Errorf("%s: decoders disagree", args[0])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

// readGomidi turns gomidi panics into errors
// https://github.com/gomidi/midi/issues/20
func readGomidi(data []byte) (s *smf.SMF, e error) {
	defer func() {
		if r := recover(); r != nil {
			s, e = nil, errors.Errorf("panic: %v", r)
		}
	}()

	return smf.ReadFrom(bytes.NewReader(data))
}

// compare writes track and event counts side by side and reports whether
// they all match.
func compare(w io.Writer, ours *midi.File, theirs *smf.SMF) bool {
	same := len(ours.Tracks) == len(theirs.Tracks)
	fmt.Fprintf(w, "tracks: %d %d\n", len(ours.Tracks), len(theirs.Tracks))

	if mt, ok := theirs.TimeFormat.(smf.MetricTicks); ok {
		ticks := ours.Header.Division.TicksPerQuarterNote()
		same = same && ticks == uint16(mt)
		fmt.Fprintf(w, "ticks per quarter note: %d %d\n", ticks, uint16(mt))
	}

	n := len(ours.Tracks)
	if len(theirs.Tracks) > n {
		n = len(theirs.Tracks)
	}
	for i := 0; i < n; i++ {
		a, b := -1, -1
		if i < len(ours.Tracks) {
			a = len(ours.Tracks[i].Events)
		}
		if i < len(theirs.Tracks) {
			b = len(theirs.Tracks[i])
		}
		mark := ""
		if a != b {
			mark = " *"
			same = false
		}
		fmt.Fprintf(w, "track %d events: %d %d%s\n", i, a, b, mark)
	}
	return same
}
