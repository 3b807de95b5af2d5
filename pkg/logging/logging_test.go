package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/BYTE-6D65/ticktime/pkg/errs"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"", zap.InfoLevel},
		{"debug", zap.DebugLevel},
		{"info", zap.InfoLevel},
		{"warn", zap.WarnLevel},
		{"error", zap.ErrorLevel},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "level %q", tt.in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	for _, production := range []bool{true, false} {
		log, err := New(production, "warn")
		require.NoError(t, err)
		assert.False(t, log.Core().Enabled(zap.InfoLevel))
		assert.True(t, log.Core().Enabled(zap.WarnLevel))
	}

	_, err := New(false, "verbose")
	assert.Error(t, err)
}

func TestFields_RangeError(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core)

	re := errs.OutOfRange("datetime.AddMonths", "months", 120001, -120000, 120000).(*errs.RangeError)
	log.Warn("rejected", Fields(re.LogFields())...)

	require.Equal(t, 1, logs.Len())
	ctx := logs.All()[0].ContextMap()
	assert.Equal(t, "range_error", ctx["error_type"])
	assert.Equal(t, "months", ctx["field"])
	assert.Equal(t, int64(120001), ctx["value"])
}
