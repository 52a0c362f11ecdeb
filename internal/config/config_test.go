package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchDefaultConfig(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestValidateRejectsBadStaticConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero alien width", func(c *Config) { c.Fleet.MemberWidth = 0 }},
		{"zero projectile cap", func(c *Config) { c.Projectile.MaxActive = 0 }},
		{"direction not unit", func(c *Config) { c.Fleet.Direction = 2 }},
		{"speedup not growing", func(c *Config) { c.Gameplay.SpeedupScale = 1 }},
		{"score scale not growing", func(c *Config) { c.Scoring.ScoreScale = 0.5 }},
		{"negative ships", func(c *Config) { c.Gameplay.ShipLimit = -1 }},
		{"negative field", func(c *Config) { c.Field.Width = -10 }},
		{"negative pause", func(c *Config) { c.Gameplay.LifeLostPause = -time.Second }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestResolveAndValidateField(t *testing.T) {
	cfg := DefaultConfig()
	assert.Error(t, cfg.ValidateField(), "unresolved field must be rejected")

	resolved := cfg.Resolve(80, 22)
	assert.Equal(t, 80, resolved.Field.Width)
	assert.Equal(t, 22, resolved.Field.Height)
	assert.NoError(t, resolved.ValidateField())

	// Explicit sizes win over the screen
	cfg.Field.Width = 40
	resolved = cfg.Resolve(80, 22)
	assert.Equal(t, 40, resolved.Field.Width)
	assert.Equal(t, 22, resolved.Field.Height)

	tiny := DefaultConfig().Resolve(2, 22)
	assert.Error(t, tiny.ValidateField(), "field narrower than the ship")

	// Default members are 3x1: the grid needs more than 9 columns and 4 rows
	tests := []struct {
		name string
		w, h int
		ok   bool
	}{
		{"too short for a row", 20, 4, false},
		{"one row", 20, 5, true},
		{"too narrow for a column", 9, 20, false},
		{"one column", 10, 20, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := DefaultConfig().Resolve(tt.w, tt.h).ValidateField()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, "aliens")
			}
		})
	}
}

func TestParseKeepsDefaultsForOmittedKeys(t *testing.T) {
	cfg, err := Parse([]byte("fleet:\n  speed: 0.2\ngameplay:\n  life_lost_pause: 1s\n"))
	require.NoError(t, err)

	assert.Equal(t, 0.2, cfg.Fleet.Speed)
	assert.Equal(t, time.Second, cfg.Gameplay.LifeLostPause)
	assert.Equal(t, DefaultConfig().Fleet.MemberWidth, cfg.Fleet.MemberWidth)
	assert.Equal(t, DefaultConfig().Scoring, cfg.Scoring)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("fleet: [unterminated"))
	assert.Error(t, err)
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("projectile:\n  max_active: 2\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Projectile.MaxActive)
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".invaders", "configs")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "invaders.yaml"), []byte("gameplay:\n  ship_limit: 7\n"), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Gameplay.ShipLimit)
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestMarshalProducesLoadableYAML(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Fleet.Speed = 0.125

	data, err := Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "life_lost_pause: 500ms")

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}
