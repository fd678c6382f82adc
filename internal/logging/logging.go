// Package logging builds the application's zap logger. The terminal belongs
// to the UI, so entries go to a file as JSON.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLevel = "info"

// New returns a JSON logger appending to path at level. An empty path
// discards output.
func New(path, level string) (*zap.Logger, error) {
	if strings.TrimSpace(path) == "" {
		return zap.NewNop(), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	cfg := zap.Config{
		Level:             ParseLevel(level),
		Encoding:          "json",
		EncoderConfig:     EncoderConfig(),
		OutputPaths:       []string{path},
		ErrorOutputPaths:  []string{path},
		DisableCaller:     false,
		DisableStacktrace: true,
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// ParseLevel converts a level name, falling back to info when it is empty or
// unknown.
func ParseLevel(level string) zap.AtomicLevel {
	lvl := zap.NewAtomicLevel()
	if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(level)))); err != nil {
		_ = lvl.UnmarshalText([]byte(defaultLevel))
	}
	return lvl
}

// EncoderConfig is the field layout shared by the logger and logtail.
func EncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		MessageKey: "message",
		TimeKey:    "timestamp",
		LevelKey:   "severity",
		EncodeTime: zapcore.RFC3339NanoTimeEncoder,
		EncodeLevel: func(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(strings.ToUpper(level.String()))
		},
		CallerKey:      "caller",
		EncodeCaller:   zapcore.ShortCallerEncoder,
		StacktraceKey:  "stacktrace",
		EncodeDuration: zapcore.StringDurationEncoder,
	}
}
