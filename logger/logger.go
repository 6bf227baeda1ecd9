// Package logger holds the process-wide zap logger.
//
// Output is JSON with Cloud Logging field names (severity, message,
// timestamp) so Cloud Run parses each line as a structured entry.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a no-op until Init runs, so packages and tests can log freely.
var Logger = zap.NewNop()

// Options - fields attached to every log entry
type Options struct {
	Level    string
	Service  string
	Revision string
	Version  string
}

// Init - 로거 초기화
func Init(opts Options) {
	built, err := NewConfig(opts.Level).Build()
	if err != nil {
		panic(err)
	}

	Logger = built.With(
		zap.String("service", opts.Service),
		zap.String("revision", opts.Revision),
		zap.String("version", opts.Version),
	)
}

// NewConfig returns the production config with Cloud Logging keys.
// An unknown level falls back to info.
func NewConfig(level string) zap.Config {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.LevelKey = "severity"
	config.EncoderConfig.MessageKey = "message"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.StacktraceKey = ""

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	config.Level = zap.NewAtomicLevelAt(lvl)

	return config
}

// Sync - 로거 플러시
func Sync() {
	_ = Logger.Sync()
}
