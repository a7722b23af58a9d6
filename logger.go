package zmq

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

// Logger returns the package logger.  It is a no-op logger until SetLogger
// installs one.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return zap.NewNop()
}

// SetLogger installs l for lifecycle and failure logging.  Passing nil
// restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l != nil {
		l = l.Named("zmq")
	}
	logger.Store(l)
}

// Debug enables debugf tracing of every send and receive.
var Debug = false

func debugf(format string, args ...interface{}) {
	if Debug {
		Logger().WithOptions(zap.AddCallerSkip(1)).Sugar().Debugf(format, args...)
	}
}
