// Package logging builds the zap logger used for ali's diagnostics.
// Diagnostics go to stderr so they never mix with command output.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// LevelInfo logs info and above.
	LevelInfo = "info"
	// LevelDebug logs everything.
	LevelDebug = "debug"
	// LevelNone disables logging.
	LevelNone = "none"
)

// GetLogger returns a console logger at the given level.
// "none" and the empty string return a no-op logger.
func GetLogger(level string) (*zap.Logger, error) {
	if level == LevelNone || level == "" {
		return zap.NewNop(), nil
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(lvl)
	zapConfig.Encoding = "console"
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	zapConfig.OutputPaths = []string{"stderr"}
	zapConfig.ErrorOutputPaths = []string{"stderr"}
	zapConfig.Sampling = nil

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}
	return logger, nil
}
