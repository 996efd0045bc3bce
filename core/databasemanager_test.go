package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/logger"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected LogLevel
		gorm     logger.LogLevel
	}{
		{"silent", LogLevelSilent, logger.Silent},
		{"ERROR", LogLevelError, logger.Error},
		{" info ", LogLevelInfo, logger.Info},
		{"warn", LogLevelWarn, logger.Warn},
		{"", LogLevelWarn, logger.Warn},
		{"verbose", LogLevelWarn, logger.Warn},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			level := ParseLogLevel(tt.in)
			assert.Equal(t, tt.expected, level)
			assert.Equal(t, tt.gorm, level.gorm())
		})
	}
}
