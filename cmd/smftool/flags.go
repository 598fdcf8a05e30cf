package main

import (
	"github.com/Garik-/smf/pkg/midi"
	"github.com/spf13/pflag"
)

var runningStatusFlag bool

func addDecodeFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&runningStatusFlag, "running-status", false,
		"Accept channel messages that omit a repeated status byte")
}

func decodeOptions() []midi.Option {
	var opts []midi.Option
	if runningStatusFlag {
		opts = append(opts, midi.WithRunningStatus())
	}
	return opts
}
