package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/invaders.yaml
var defaultYAML []byte

// DefaultConfig returns the default game configuration.
// Must stay in sync with defaults/invaders.yaml.
func DefaultConfig() Config {
	return Config{
		Field: FieldConfig{
			Width:  0,
			Height: 0,
		},
		Player: PlayerConfig{
			Width:  5,
			Height: 1,
			Speed:  0.5,
		},
		Projectile: ProjectileConfig{
			Width:     1,
			Height:    1,
			Speed:     0.6,
			MaxActive: 5,
		},
		Fleet: FleetConfig{
			MemberWidth:  3,
			MemberHeight: 1,
			Speed:        0.05,
			Drop:         1,
			Direction:    1,
		},
		Scoring: ScoringConfig{
			Points:     50,
			ScoreScale: 1.5,
		},
		Gameplay: GameplayConfig{
			ShipLimit:     3,
			SpeedupScale:  1.1,
			LifeLostPause: 500 * time.Millisecond,
		},
		Menu: MenuConfig{
			ButtonWidth:  14,
			ButtonHeight: 3,
			ButtonLabel:  "Play",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
