package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestGetLogger(t *testing.T) {
	tests := []struct {
		level       string
		wantErr     bool
		debugOn     bool
		infoEnabled bool
	}{
		{level: LevelNone},
		{level: ""},
		{level: LevelInfo, infoEnabled: true},
		{level: LevelDebug, infoEnabled: true, debugOn: true},
		{level: "warn"},
		{level: "loud", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger, err := GetLogger(tt.level)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, logger)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, logger)
			assert.Equal(t, tt.debugOn, logger.Core().Enabled(zapcore.DebugLevel))
			assert.Equal(t, tt.infoEnabled, logger.Core().Enabled(zapcore.InfoLevel))
		})
	}
}
