// Package trace holds the diagnostics logger for the label-capture
// machinery. It is a nop unless PRINTC_DEBUG=1, so library output on
// stdout never carries log lines.
package trace

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.Mutex
	logger *zap.Logger
)

// L returns the shared diagnostics logger.
func L() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		logger = build()
	}
	return logger
}

// Set replaces the diagnostics logger. Used by the CLI's --verbose flag
// and by tests.
func Set(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

func build() *zap.Logger {
	if os.Getenv("PRINTC_DEBUG") != "1" {
		return zap.NewNop()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.OutputPaths = []string{"stderr"}
	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}
