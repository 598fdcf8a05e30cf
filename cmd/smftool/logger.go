package main

import (
	"github.com/Garik-/smf/pkg/midi"
	"go.uber.org/zap"
)

var cliLog = zap.NewNop()
var decodeWorkerLog = zap.NewNop()
var velocityMapLog = zap.NewNop()
var serveLog = zap.NewNop()

func enableDebugLogging(l *zap.Logger) {
	cliLog = l
	decodeWorkerLog = l.Named("decodeWorker")
	velocityMapLog = l.Named("velocityMap")
	serveLog = l.Named("serve")
	midi.EnableDebugLogging(l)
}
