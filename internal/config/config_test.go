package config

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/physrisk/internal/testutils"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, OutputAuto, cfg.Output)
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"PHYSRISK_LOG_LEVEL":  "debug",
		"PHYSRISK_LOG_FORMAT": "json",
		"PHYSRISK_OUTPUT":     "plain",
		"LOG_LEVEL":           "error",
	})
	require.NoError(t, err)

	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, OutputPlain, cfg.Output)
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{"level", map[string]string{"PHYSRISK_LOG_LEVEL": "loud"}},
		{"format", map[string]string{"PHYSRISK_LOG_FORMAT": "xml"}},
		{"output", map[string]string{"PHYSRISK_OUTPUT": "html"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(tt.vars)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := testutils.WriteFile(t, ".env", "PHYSRISK_OUTPUT=json\n")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, OutputJSON, cfg.Output)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestLoad_DotenvFile(t *testing.T) {
	t.Run("missing file is ignored", func(t *testing.T) {
		t.Chdir(t.TempDir())
		_, err := Load()
		require.NoError(t, err)
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		path := testutils.WriteFile(t, ".env", "PHYSRISK_OUTPUT=\"json\n")
		t.Chdir(filepath.Dir(path))
		_, err := Load()
		assert.ErrorContains(t, err, ".env")
	})
}
