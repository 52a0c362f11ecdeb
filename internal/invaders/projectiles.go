package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Projectile is a shot fired by the ship. It only travels upward.
type Projectile struct {
	X, Y float64
	W, H float64

	destroyed bool // Tombstone set during collision resolution
}

// Bounds returns the projectile's bounding box.
func (p *Projectile) Bounds() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// Projectiles manages the live shots and enforces the concurrency cap.
type Projectiles struct {
	Shots []*Projectile

	maxActive int
	w, h      float64
}

// NewProjectiles creates an empty projectile set.
func NewProjectiles(maxActive, w, h int) *Projectiles {
	return &Projectiles{
		Shots:     make([]*Projectile, 0, maxActive),
		maxActive: maxActive,
		w:         float64(w),
		h:         float64(h),
	}
}

// Len returns the number of live projectiles.
func (ps *Projectiles) Len() int {
	return len(ps.Shots)
}

// Fire spawns a projectile with its top edge at the top-center of the ship.
// Returns false without doing anything if the cap is reached.
func (ps *Projectiles) Fire(from core.Box) bool {
	if len(ps.Shots) >= ps.maxActive {
		return false
	}
	ps.Shots = append(ps.Shots, &Projectile{
		X: from.CenterX() - ps.w/2,
		Y: from.Top(),
		W: ps.w,
		H: ps.h,
	})
	return true
}

// Update moves every projectile up by speed, then retires those whose
// bottom edge is at or above the top of the field.
func (ps *Projectiles) Update(speed float64) {
	for _, p := range ps.Shots {
		p.Y -= speed
	}
	for _, p := range ps.Shots {
		if p.Y+p.H <= 0 {
			p.destroyed = true
		}
	}
	ps.sweep()
}

// Clear removes every projectile.
func (ps *Projectiles) Clear() {
	clear(ps.Shots)
	ps.Shots = ps.Shots[:0]
}

// sweep drops tombstoned projectiles, keeping the order of the rest.
func (ps *Projectiles) sweep() {
	alive := ps.Shots[:0]
	for _, p := range ps.Shots {
		if !p.destroyed {
			alive = append(alive, p)
		}
	}
	for i := len(alive); i < len(ps.Shots); i++ {
		ps.Shots[i] = nil
	}
	ps.Shots = alive
}
