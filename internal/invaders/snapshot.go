package invaders

import "math"

// Snapshot contains the complete game state for determinism checks.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick       uint64
	State      int
	Score      int
	HighScore  int
	Level      int
	ShipsLeft  int
	PauseTicks int

	// Dynamic tunables (float bits)
	PlayerSpeed     uint64
	ProjectileSpeed uint64
	FleetSpeed      uint64
	FleetDirection  int
	Points          int

	// Ship position (float bits)
	PlayerX uint64
	PlayerY uint64

	// Each alien and projectile is 2 values: X, Y (float bits)
	AlienCount      int
	AlienData       []uint64
	ProjectileCount int
	ProjectileData  []uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	dyn := g.difficulty.Current()

	alienData := make([]uint64, 0, g.fleet.Len()*2)
	for _, a := range g.fleet.Aliens {
		alienData = append(alienData, math.Float64bits(a.X), math.Float64bits(a.Y))
	}

	shotData := make([]uint64, 0, g.shots.Len()*2)
	for _, p := range g.shots.Shots {
		shotData = append(shotData, math.Float64bits(p.X), math.Float64bits(p.Y))
	}

	return Snapshot{
		Tick:       g.tickCount,
		State:      int(g.state),
		Score:      g.stats.Score,
		HighScore:  g.stats.HighScore,
		Level:      g.stats.Level,
		ShipsLeft:  g.stats.ShipsLeft,
		PauseTicks: g.pauseTicks,

		PlayerSpeed:     math.Float64bits(dyn.PlayerSpeed),
		ProjectileSpeed: math.Float64bits(dyn.ProjectileSpeed),
		FleetSpeed:      math.Float64bits(dyn.FleetSpeed),
		FleetDirection:  dyn.FleetDirection,
		Points:          dyn.Points,

		PlayerX: math.Float64bits(g.player.X),
		PlayerY: math.Float64bits(g.player.Y),

		AlienCount:      g.fleet.Len(),
		AlienData:       alienData,
		ProjectileCount: g.shots.Len(),
		ProjectileData:  shotData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.State)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HighScore)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ShipsLeft)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PauseTicks)     //#nosec G115 -- hash computation
	h = h*31 + snap.PlayerSpeed
	h = h*31 + snap.ProjectileSpeed
	h = h*31 + snap.FleetSpeed
	h = h*31 + uint64(snap.FleetDirection) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Points)         //#nosec G115 -- hash computation
	h = h*31 + snap.PlayerX
	h = h*31 + snap.PlayerY
	h = h*31 + uint64(snap.AlienCount)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ProjectileCount) //#nosec G115 -- hash computation

	for _, v := range snap.AlienData {
		h = h*31 + v
	}

	for _, v := range snap.ProjectileData {
		h = h*31 + v
	}

	return h
}
