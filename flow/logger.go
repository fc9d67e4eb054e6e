package flow

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger   *zap.Logger
	loggerMu sync.RWMutex
)

// Logger returns the package logger. It is a no-op logger until SetLogger
// is called.
func Logger() *zap.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()

	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func SetLogger(l *zap.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	logger = l
}
