package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsMatchPageScript(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 150*time.Second, cfg.Player.Duration)
	assert.Equal(t, 100*time.Millisecond, cfg.Player.Tick)
	assert.Equal(t, 100.0, cfg.Page.SolidAfter)
	assert.Equal(t, -0.5, cfg.Page.ParallaxRate)
	assert.Equal(t, 0.1, cfg.Page.RevealThreshold)
	assert.Equal(t, "0px 0px -50px 0px", cfg.Page.RevealMargin)
	assert.Equal(t, 150*time.Millisecond, cfg.Page.Pulse)
	assert.Equal(t, "#FF10F0", cfg.Page.Accent)
	assert.Equal(t, 800.0, cfg.Tone.ClickFreq)
	assert.Equal(t, 0.01, cfg.Tone.ClickFloor)
	assert.Equal(t, ":8080", cfg.Dev.Addr)
	assert.Contains(t, cfg.Dev.Watch, "**/*.wasm")
}

func TestDefaultIgnoresEnvironment(t *testing.T) {
	t.Setenv("REVERBFX_PLAYER__TICK", "0s")
	t.Setenv("REVERBFX_PLAYER__DURATION", "30s")
	t.Setenv("REVERBFX_PAGE__SOLID_AFTER", "200")

	var cfg *Config
	require.NotPanics(t, func() { cfg = Default() })
	assert.Equal(t, 150*time.Second, cfg.Player.Duration)
	assert.Equal(t, 100*time.Millisecond, cfg.Player.Tick)
	assert.Equal(t, 100.0, cfg.Page.SolidAfter)

	_, err := Load("", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "player.tick")
}

func TestFileThenEnvThenOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reverbfx.yml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: DEBUG\nplayer:\n  duration: 90s\npage:\n  solid_after: 40\n"), 0o644))

	t.Setenv("REVERBFX_PAGE__SOLID_AFTER", "60")
	t.Setenv("REVERBFX_DEV__ADDR", "127.0.0.1:9000")

	cfg, err := Load(path, map[string]interface{}{
		"page": map[string]interface{}{"pulse": "200ms"},
	})
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel, "log level is normalised")
	assert.Equal(t, 90*time.Second, cfg.Player.Duration, "file overrides defaults")
	assert.Equal(t, 60.0, cfg.Page.SolidAfter, "env overrides file")
	assert.Equal(t, "127.0.0.1:9000", cfg.Dev.Addr)
	assert.Equal(t, 200*time.Millisecond, cfg.Page.Pulse, "overrides win")
	assert.Equal(t, 100*time.Millisecond, cfg.Player.Tick, "untouched keys keep defaults")
}

func TestMissingFileIsIgnored(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"), nil)
	require.NoError(t, err)
	assert.Equal(t, 150*time.Second, cfg.Player.Duration)
}

func TestInvalidValuesAreRejected(t *testing.T) {
	_, err := Load("", map[string]interface{}{
		"log_level": "chatty",
		"player":    map[string]interface{}{"tick": "10m"},
		"page": map[string]interface{}{
			"reveal_threshold": 1.5,
			"accent":           "pink",
		},
	})
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "log_level: must be one of")
	assert.Contains(t, msg, "player.tick")
	assert.Contains(t, msg, "page.reveal_threshold: must be at most 1")
	assert.Contains(t, msg, "page.accent")
}

func TestYAMLRoundTripsThroughLoad(t *testing.T) {
	cfg := Default()
	cfg.Player.Duration = 42 * time.Second
	data, err := cfg.YAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "duration: 42s")

	path := filepath.Join(t.TempDir(), "dump.yml")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	back, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, *cfg, *back)
}
