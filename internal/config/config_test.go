package config

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("TALLY_ADDR", "")
	t.Setenv("TALLY_LOG_LEVEL", "")
	t.Setenv("TALLY_LOG_FORMAT", "")
	t.Setenv("TALLY_MAX_BODY_BYTES", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
}

func TestLoad_Overrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("TALLY_ADDR", "127.0.0.1:9000")
	t.Setenv("TALLY_LOG_LEVEL", "debug")
	t.Setenv("TALLY_LOG_FORMAT", "text")
	t.Setenv("TALLY_MAX_BODY_BYTES", "512")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
	assert.Equal(t, int64(512), cfg.MaxBodyBytes)

	logger := cfg.NewLogger()
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"TALLY_LOG_LEVEL":      "loud",
		"TALLY_LOG_FORMAT":     "xml",
		"TALLY_MAX_BODY_BYTES": "-1",
	}
	for key, val := range tests {
		t.Run(key, func(t *testing.T) {
			chdir(t, t.TempDir())
			t.Setenv(key, val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
