package config

import (
	"os"
	"runtime"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("workers", 0, "")
	fs.Int("k", 0, "")
	fs.Int("top-n", 0, "")
	fs.String("log-level", "", "")
	fs.String("log-format", "", "")
	fs.String("metrics-addr", "", "")
	return fs
}

func TestLoad_DefaultsWhenNoFlagsSet(t *testing.T) {
	cfg, err := Load(newFlagSet(), "")
	require.NoError(t, err)

	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	assert.Equal(t, 30, cfg.K)
	assert.Equal(t, 0, cfg.TopN)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "", cfg.MetricsAddr)
}

func TestLoad_FlagOverridesDefault(t *testing.T) {
	fs := newFlagSet()
	require.NoError(t, fs.Set("k", "5"))

	cfg, err := Load(fs, "")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.K)
}

func TestLoad_EnvOverridesDefaultButNotFlag(t *testing.T) {
	t.Setenv("PC3_K", "7")

	cfg, err := Load(newFlagSet(), "")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.K)

	fs := newFlagSet()
	require.NoError(t, fs.Set("k", "9"))
	cfg, err = Load(fs, "")
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.K)
}

func TestLoad_MissingConfigFileErrors(t *testing.T) {
	_, err := Load(newFlagSet(), "/nonexistent/config.yaml")
	require.Error(t, err)
}

func TestLoad_ConfigFileOverridesDefault(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/pc3.yaml"
	require.NoError(t, os.WriteFile(path, []byte("k: 12\n"), 0o600))

	cfg, err := Load(newFlagSet(), path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.K)
}
