package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raysh454/linkscope/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "linkscope", cfg.App.Name)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 15*time.Second, cfg.Server.GracefulTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 20, cfg.History.Limit)
	assert.Equal(t, "pass", cfg.Scorer.HeaderVerdict)
	assert.Equal(t, time.Duration(0), cfg.Scorer.SimulatedLatency)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linkscope.yaml")
	yaml := `
server:
  addr: ":9090"
history:
  limit: 10
scorer:
  header_verdict: fail
  simulated_latency: 250ms
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 10, cfg.History.Limit)
	assert.Equal(t, "fail", cfg.Scorer.HeaderVerdict)
	assert.Equal(t, 250*time.Millisecond, cfg.Scorer.SimulatedLatency)
	// Untouched keys keep their defaults.
	assert.Equal(t, "linkscope", cfg.App.Name)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("LINKSCOPE_SERVER_ADDR", ":7070")
	t.Setenv("LINKSCOPE_LOG_LEVEL", "debug")

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linkscope.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scorer:\n  header_verdict: maybe\n"), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}
