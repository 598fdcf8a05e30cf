package midi

import "go.uber.org/zap"

var decoderLog = zap.NewNop()
var metaLog = zap.NewNop()

// EnableDebugLogging routes decoder diagnostics to l. It is not safe to call
// while a decode is running.
func EnableDebugLogging(l *zap.Logger) {
	decoderLog = l.Named("decoder")
	metaLog = l.Named("meta")
}
