package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestConfigSetDefaults(t *testing.T) {
	var cfg Config
	cfg.SetDefaults()

	assert.Equal(t, DefaultLevel, cfg.Level)
	assert.Equal(t, DefaultFormat, cfg.Format)
	assert.Equal(t, []string{"stderr"}, cfg.OutputPaths)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"WARN", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"bogus", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.in))
		})
	}
}

func TestNew(t *testing.T) {
	l, err := New(Config{Level: "debug", OutputPaths: []string{"stderr"}})
	require.NoError(t, err)
	require.NotNil(t, l)
	l.With(String("component", "test")).Debug("hello", Int("n", 1))
}

func TestZapWrapperFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core)).With(String("lexicon", "optimized-v2"))

	l.Info("lexicon loaded", Int("layers", 5), Float64("min_score", 0.5), Bool("ok", true))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "lexicon loaded", entry.Message)
	fields := entry.ContextMap()
	assert.Equal(t, "optimized-v2", fields["lexicon"])
	assert.EqualValues(t, 5, fields["layers"])
	assert.Equal(t, true, fields["ok"])
}

func TestNop(t *testing.T) {
	l := NewNop()
	l.Info("ignored")
	assert.Same(t, l, l.With(String("k", "v")))
	assert.NoError(t, l.Sync())
}
