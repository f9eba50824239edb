package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a sugared zap logger so callers can use the
// Infow/Debugw key-value style.
type Logger struct {
	*zap.SugaredLogger
}

// NewLogger writes human-readable logs to stderr. Info level by default,
// debug when verbose is set.
func NewLogger(verbose bool) *Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	return newLogger(zapcore.Lock(os.Stderr), level, isTerminal(os.Stderr))
}

// Nop discards everything; used by tests and library callers.
func Nop() *Logger {
	return &Logger{zap.NewNop().Sugar()}
}

// colour level names only when out is a terminal
func newLogger(out zapcore.WriteSyncer, level zapcore.Level, color bool) *Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	if color {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), out, level)
	return &Logger{zap.New(core).Sugar()}
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
