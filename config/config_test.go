package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	require.Equal(t, uint64(1), cfg.Seed)
	require.Equal(t, 50, cfg.VictoryThreshold)
	require.Equal(t, 20, cfg.TurnLimit)
	require.Equal(t, 0.6, cfg.Tunables.RegionalEventChance)
	require.Equal(t, 0.2, cfg.Tunables.GlobalEventChance)
	require.NoError(t, cfg.validate())
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
seed: 99
victory_threshold: 75
tunables:
  regional_event_chance: 0.5
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, uint64(99), cfg.Seed)
	require.Equal(t, 75, cfg.VictoryThreshold)
	require.Equal(t, 0.5, cfg.Tunables.RegionalEventChance)
	// Untouched keys keep their defaults.
	require.Equal(t, 20, cfg.TurnLimit)
	require.Equal(t, 0.2, cfg.Tunables.GlobalEventChance)
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"threshold":   "victory_threshold: 0\n",
		"turn limit":  "turn_limit: -1\n",
		"timeout":     "order_timeout_ms: -5\n",
		"probability": "tunables:\n  global_event_chance: 1.5\n",
		"syntax":      "{{{\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			require.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
