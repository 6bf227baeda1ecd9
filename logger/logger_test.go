package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantLevel zapcore.Level
	}{
		{name: "info", level: "info", wantLevel: zapcore.InfoLevel},
		{name: "debug", level: "debug", wantLevel: zapcore.DebugLevel},
		{name: "upper case", level: "WARN", wantLevel: zapcore.WarnLevel},
		{name: "unknown falls back to info", level: "chatty", wantLevel: zapcore.InfoLevel},
		{name: "empty falls back to info", level: "", wantLevel: zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig(tt.level)

			assert.Equal(t, tt.wantLevel, cfg.Level.Level())
			assert.Equal(t, "json", cfg.Encoding)
			assert.Equal(t, "severity", cfg.EncoderConfig.LevelKey)
			assert.Equal(t, "message", cfg.EncoderConfig.MessageKey)
			assert.Equal(t, "timestamp", cfg.EncoderConfig.TimeKey)
			assert.Empty(t, cfg.EncoderConfig.StacktraceKey)
		})
	}
}

func TestInit(t *testing.T) {
	previous := Logger
	t.Cleanup(func() { Logger = previous })

	Init(Options{Level: "error", Service: "hello", Revision: "hello-001", Version: "test"})

	assert.NotSame(t, previous, Logger)
	assert.True(t, Logger.Core().Enabled(zap.ErrorLevel))
	assert.False(t, Logger.Core().Enabled(zap.InfoLevel))

	Sync()
}

func TestLogger_DefaultIsUsable(t *testing.T) {
	assert.NotNil(t, Logger)
	assert.NotPanics(t, func() {
		Logger.Info("before init", zap.String("k", "v"))
	})
}
