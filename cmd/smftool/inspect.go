package main

import (
	"fmt"
	"io"

	"github.com/Garik-/smf/pkg/midi"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var eventsFlag bool

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Decodes one file and prints its header and tracks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readFile(args[0])
		if err != nil {
			return err
		}

		f, err := midi.Decode(data, decodeOptions()...)
		if err != nil {
			return err
		}

		cliLog.Debug("decoded", zap.String("name", args[0]), zap.Int("tracks", len(f.Tracks)))
		inspect(cmd.OutOrStdout(), f, eventsFlag)
		return nil
	},
}

func init() {
	inspectCmd.Flags().BoolVar(&eventsFlag, "events", false, "Print every event with its absolute tick")
	rootCmd.AddCommand(inspectCmd)
}

func inspect(w io.Writer, f *midi.File, events bool) {
	fmt.Fprintf(w, "format: %s\n", f.Header.Format)
	fmt.Fprintf(w, "tracks: %d declared, %d found\n", f.Header.TrackCount, len(f.Tracks))
	fmt.Fprintf(w, "division: %s\n", f.Header.Division)

	for i, track := range f.Tracks {
		fmt.Fprintf(w, "track %d: %d events, %d ticks\n", i, len(track.Events), track.Duration())
		if !events {
			continue
		}

		ticks := track.AbsoluteTicks()
		for j, e := range track.Events {
			fmt.Fprintf(w, "  %8d  %s\n", ticks[j], e.Payload)
		}
	}
}
