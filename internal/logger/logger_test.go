package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		env       string
		wantDebug bool
	}{
		{env: "production", wantDebug: false},
		{env: "development", wantDebug: true},
		{env: "", wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			log, err := New(tt.env)
			require.NoError(t, err)
			require.NotNil(t, log)

			assert.Equal(t, tt.wantDebug, log.Core().Enabled(zapcore.DebugLevel))
			assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
		})
	}
}
