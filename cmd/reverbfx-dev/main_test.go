//go:build !js

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConfigCommandPrintsDefaults(t *testing.T) {
	out, err := run(t, "config", "--config", filepath.Join(t.TempDir(), "none.yml"))
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "info", got["log_level"])
	page, ok := got["page"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "#FF10F0", page["accent"])
}

func TestConfigCommandReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reverbfx.yml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\npage:\n  accent: \"#00FF00\"\n"), 0o644))

	out, err := run(t, "config", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "log_level: debug")
	assert.Contains(t, out, "#00FF00")
}

func TestConfigCommandRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reverbfx.yml")
	require.NoError(t, os.WriteFile(path, []byte("player:\n  tick: 0s\n"), 0o644))

	_, err := run(t, "config", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "player.tick")
}

type recOutput struct{ calls []string }

func (r *recOutput) Drone(on bool) {
	if on {
		r.calls = append(r.calls, "drone on")
	} else {
		r.calls = append(r.calls, "drone off")
	}
}
func (r *recOutput) Click() { r.calls = append(r.calls, "click") }

func TestPlayToneSequence(t *testing.T) {
	out := &recOutput{}
	var slept []time.Duration
	playTone(out, 3*time.Second, func(d time.Duration) { slept = append(slept, d) })

	assert.Equal(t, []string{"drone on", "drone off", "click"}, out.calls)
	assert.Equal(t, 3*time.Second, slept[0])
}

func TestUnknownCommand(t *testing.T) {
	_, err := run(t, "bogus")
	assert.Error(t, err)
}
