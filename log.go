package nostl

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// SetLogger installs the logger used for storage lifecycle tracing
// (reallocations, moves, releases). All messages are emitted at Debug level.
// A nil logger disables tracing.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l.Named("nostl"))
}

// Logger returns the logger installed with SetLogger.
func Logger() *zap.Logger {
	return logger.Load()
}
