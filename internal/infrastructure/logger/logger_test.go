package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"console to stdout", Config{Level: "info", Format: "console", Output: "stdout"}},
		{"json to stderr", Config{Level: "debug", Format: "json", Output: "stderr"}},
		{"unknown level falls back to info", Config{Level: "verbose", Format: "json", Output: "stdout"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(tt.cfg)
			require.NotNil(t, logger)
			logger.Info("test entry")
		})
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("info"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("WARN"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warning"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("unknown"))
}

func TestNew_FileOutput(t *testing.T) {
	path := t.TempDir() + "/app.log"
	logger := New(Config{Level: "info", Format: "json", Output: path})
	logger.Info("written to file")
	require.NoError(t, logger.Sync())

	assert.FileExists(t, path)
}
