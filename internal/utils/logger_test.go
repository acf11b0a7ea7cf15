package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLogLevel("debug"))
	assert.Equal(t, zapcore.InfoLevel, parseLogLevel("INFO"))
	assert.Equal(t, zapcore.WarnLevel, parseLogLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, parseLogLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLogLevel("verbose"))
}

func TestNewLoggerDoesNotPanic(t *testing.T) {
	logger := NewLogger("debug")
	logger.Debugf("debug %s", "message")
	_ = logger.Sync()

	NewDiscardLogger().Infof("discarded")
}
