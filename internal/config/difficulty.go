package config

import "math"

// Dynamic holds the tunables that reset at the start of every session and
// grow at every level-up.
type Dynamic struct {
	PlayerSpeed     float64
	ProjectileSpeed float64
	FleetSpeed      float64
	FleetDirection  int // Always 1 or -1
	Points          int // Points per alien destroyed
}

// Difficulty owns the dynamic tunables and applies the level-up policy.
type Difficulty struct {
	cfg     Config
	current Dynamic
}

// NewDifficulty creates a difficulty manager at its initial values.
func NewDifficulty(cfg Config) *Difficulty {
	d := &Difficulty{cfg: cfg}
	d.Reset()
	return d
}

// Reset restores the dynamic tunables to their configured defaults.
func (d *Difficulty) Reset() {
	d.current = Dynamic{
		PlayerSpeed:     d.cfg.Player.Speed,
		ProjectileSpeed: d.cfg.Projectile.Speed,
		FleetSpeed:      d.cfg.Fleet.Speed,
		FleetDirection:  d.cfg.Fleet.Direction,
		Points:          d.cfg.Scoring.Points,
	}
}

// Current returns the current dynamic tunables.
func (d *Difficulty) Current() Dynamic {
	return d.current
}

// LevelUp multiplies the three speeds by the speed-up scale and grows the
// point value by the score scale, rounded to a multiple of ten.
func (d *Difficulty) LevelUp() {
	scale := d.cfg.Gameplay.SpeedupScale
	d.current.PlayerSpeed *= scale
	d.current.ProjectileSpeed *= scale
	d.current.FleetSpeed *= scale
	d.current.Points = RoundToTen(float64(d.current.Points) * d.cfg.Scoring.ScoreScale)
}

// Reverse flips the shared fleet direction.
func (d *Difficulty) Reverse() {
	d.current.FleetDirection = -d.current.FleetDirection
}

// RoundToTen rounds v to the nearest multiple of ten, ties to the even tens
// digit: 75 -> 80, 65 -> 60, 405 -> 400.
func RoundToTen(v float64) int {
	return int(math.RoundToEven(v/10) * 10)
}
