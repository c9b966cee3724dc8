package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("ARITH_LOG_LEVEL", "debug")
	t.Setenv("ARITH_FORMAT", "json")
	t.Setenv("ARITH_TYPE", "float64")
	t.Setenv("ARITH_TOLERANCE", "0.001")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "float64", cfg.Type)
	assert.InDelta(t, 0.001, cfg.Tolerance, 1e-12)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]struct {
		key, value string
	}{
		"format":    {"ARITH_FORMAT", "xml"},
		"type":      {"ARITH_TYPE", "complex128"},
		"level":     {"ARITH_LOG_LEVEL", "loud"},
		"tolerance": {"ARITH_TOLERANCE", "-1"},
		"parse":     {"ARITH_TOLERANCE", "tiny"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}
