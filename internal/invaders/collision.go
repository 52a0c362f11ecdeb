package invaders

// resolveShots handles projectile-alien impacts for one tick.
//
// Projectiles are checked in order against the aliens still standing. A
// projectile takes out the first alien it overlaps and nothing else; an
// alien already taken out this pass cannot be hit again. Both sets are
// tombstoned during the scan and swept afterwards, so removal never disturbs
// the iteration. Points are added once per projectile for the aliens it
// destroyed. Returns the number of aliens destroyed.
func resolveShots(ps *Projectiles, f *Fleet, stats *Stats, points int) int {
	destroyed := 0

	for _, p := range ps.Shots {
		casualties := 0
		box := p.Bounds()
		for _, a := range f.Aliens {
			if a.destroyed || !a.Bounds().Intersects(box) {
				continue
			}
			a.destroyed = true
			casualties++
			break
		}
		if casualties == 0 {
			continue
		}
		p.destroyed = true
		stats.AddPoints(points * casualties)
		destroyed += casualties
	}

	if destroyed > 0 {
		ps.sweep()
		f.sweep()
	}
	return destroyed
}

// fleetHitsPlayer reports whether any alien overlaps the ship.
func fleetHitsPlayer(f *Fleet, p *Player) bool {
	return f.Hits(p.Bounds())
}

// fleetReachedFloor reports whether any alien reached the bottom of the field.
func fleetReachedFloor(f *Fleet) bool {
	return f.ReachedFloor()
}
