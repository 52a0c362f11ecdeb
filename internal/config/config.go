// Package config provides YAML-based game configuration loading and the
// level-up policy for the dynamic tunables.
package config

import (
	"fmt"
	"time"
)

// Config contains all configuration for the game.
// Everything except the dynamic defaults (speeds, direction, points) is
// static for the lifetime of a game instance.
type Config struct {
	Field      FieldConfig      `yaml:"field"`
	Player     PlayerConfig     `yaml:"player"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Fleet      FleetConfig      `yaml:"fleet"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Menu       MenuConfig       `yaml:"menu"`
}

// FieldConfig defines the play field. Zero means "use the screen size".
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the ship.
type PlayerConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Initial cells per tick
}

// ProjectileConfig defines the player's shots.
type ProjectileConfig struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	Speed     float64 `yaml:"speed"`      // Initial cells per tick
	MaxActive int     `yaml:"max_active"` // Concurrent projectile cap
}

// FleetConfig defines the alien grid.
type FleetConfig struct {
	MemberWidth  int     `yaml:"member_width"`
	MemberHeight int     `yaml:"member_height"`
	Speed        float64 `yaml:"speed"`     // Initial cells per tick
	Drop         float64 `yaml:"drop"`      // Vertical shift per edge contact
	Direction    int     `yaml:"direction"` // 1 = right, -1 = left
}

// ScoringConfig defines points per kill and how they grow per level.
type ScoringConfig struct {
	Points     int     `yaml:"points"`
	ScoreScale float64 `yaml:"score_scale"`
}

// GameplayConfig defines lives and difficulty growth.
type GameplayConfig struct {
	ShipLimit     int           `yaml:"ship_limit"`
	SpeedupScale  float64       `yaml:"speedup_scale"`
	LifeLostPause time.Duration `yaml:"life_lost_pause"`
}

// MenuConfig defines the start control shown while inactive.
type MenuConfig struct {
	ButtonWidth  int    `yaml:"button_width"`
	ButtonHeight int    `yaml:"button_height"`
	ButtonLabel  string `yaml:"button_label"`
}

// Resolve returns a copy with the field size filled in from the screen when
// unset.
func (c Config) Resolve(screenW, screenH int) Config {
	if c.Field.Width <= 0 {
		c.Field.Width = screenW
	}
	if c.Field.Height <= 0 {
		c.Field.Height = screenH
	}
	return c
}

// Validate checks the static invariants. A zero field size is accepted here
// because it is resolved from the screen later; ValidateField checks the
// resolved size.
func (c Config) Validate() error {
	checks := []struct {
		name string
		ok   bool
	}{
		{"player.width", c.Player.Width > 0},
		{"player.height", c.Player.Height > 0},
		{"player.speed", c.Player.Speed > 0},
		{"projectile.width", c.Projectile.Width > 0},
		{"projectile.height", c.Projectile.Height > 0},
		{"projectile.speed", c.Projectile.Speed > 0},
		{"projectile.max_active", c.Projectile.MaxActive >= 1},
		{"fleet.member_width", c.Fleet.MemberWidth > 0},
		{"fleet.member_height", c.Fleet.MemberHeight > 0},
		{"fleet.speed", c.Fleet.Speed > 0},
		{"fleet.drop", c.Fleet.Drop >= 0},
		{"fleet.direction", c.Fleet.Direction == 1 || c.Fleet.Direction == -1},
		{"scoring.points", c.Scoring.Points >= 0},
		{"scoring.score_scale", c.Scoring.ScoreScale > 1},
		{"gameplay.ship_limit", c.Gameplay.ShipLimit >= 0},
		{"gameplay.speedup_scale", c.Gameplay.SpeedupScale > 1},
		{"gameplay.life_lost_pause", c.Gameplay.LifeLostPause >= 0},
		{"menu.button_width", c.Menu.ButtonWidth > 0},
		{"menu.button_height", c.Menu.ButtonHeight > 0},
		{"field.width", c.Field.Width >= 0},
		{"field.height", c.Field.Height >= 0},
	}

	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("config: invalid %s", chk.name)
		}
	}
	return nil
}

// ValidateField checks that the resolved field can hold the player and at
// least one alien row.
func (c Config) ValidateField() error {
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return fmt.Errorf("config: field must be positive, got %dx%d", c.Field.Width, c.Field.Height)
	}
	if c.Field.Width < c.Player.Width || c.Field.Height < c.Player.Height {
		return fmt.Errorf("config: field %dx%d cannot hold a %dx%d ship",
			c.Field.Width, c.Field.Height, c.Player.Width, c.Player.Height)
	}
	// The first grid cell sits one member in from the corner and must clear
	// the right margin and the rows kept free for the ship.
	w, h := c.Fleet.MemberWidth, c.Fleet.MemberHeight
	if w >= c.Field.Width-2*w || h >= c.Field.Height-3*h {
		return fmt.Errorf("config: field %dx%d cannot hold a row of %dx%d aliens",
			c.Field.Width, c.Field.Height, w, h)
	}
	return nil
}
