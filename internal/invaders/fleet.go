package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Alien is one member of the fleet. Aliens have no velocity of their own:
// the whole fleet shares one speed and direction.
type Alien struct {
	X, Y float64
	W, H float64

	destroyed bool // Tombstone set during collision resolution
}

// Bounds returns the alien's bounding box.
func (a *Alien) Bounds() core.Box {
	return core.NewBox(a.X, a.Y, a.W, a.H)
}

// Fleet manages the grid of aliens for the current wave.
type Fleet struct {
	Aliens []*Alien

	fieldW, fieldH int
	memberW        int
	memberH        int
}

// NewFleet creates an empty fleet for a field of the given size.
func NewFleet(fieldW, fieldH, memberW, memberH int) *Fleet {
	return &Fleet{
		fieldW:  fieldW,
		fieldH:  fieldH,
		memberW: memberW,
		memberH: memberH,
	}
}

// Build replaces the fleet with a fresh wave laid out as a grid.
//
// The grid starts one member width/height from the top-left corner and
// places members two widths apart horizontally and two heights apart
// vertically. A row stops before field width minus two member widths; rows
// stop before field height minus three member heights, leaving room for the
// ship. The result depends only on the field and member sizes.
func (f *Fleet) Build() {
	f.Clear()

	w, h := f.memberW, f.memberH
	for y := h; y < f.fieldH-3*h; y += 2 * h {
		for x := w; x < f.fieldW-2*w; x += 2 * w {
			f.Aliens = append(f.Aliens, &Alien{
				X: float64(x),
				Y: float64(y),
				W: float64(w),
				H: float64(h),
			})
		}
	}
}

// Clear removes every alien.
func (f *Fleet) Clear() {
	clear(f.Aliens)
	f.Aliens = f.Aliens[:0]
}

// Len returns the number of live aliens.
func (f *Fleet) Len() int {
	return len(f.Aliens)
}

// Empty reports whether the wave is cleared.
func (f *Fleet) Empty() bool {
	return len(f.Aliens) == 0
}

// Update runs the per-tick fleet maneuver: if any alien touches a side of
// the field the fleet drops and reverses (once, however many aliens touch),
// then every alien advances by speed in the resulting direction. Returns the
// direction the fleet moved in; the caller owns the shared direction and
// must store it. An empty fleet does nothing.
func (f *Fleet) Update(speed float64, direction int, drop float64) int {
	if f.Empty() {
		return direction
	}

	if f.touchesEdge() {
		for _, a := range f.Aliens {
			a.Y += drop
		}
		direction = -direction
	}

	dx := speed * float64(direction)
	for _, a := range f.Aliens {
		a.X += dx
	}
	return direction
}

// touchesEdge reports whether any alien's left edge is at or past 0 or its
// right edge is at or past the field width.
func (f *Fleet) touchesEdge() bool {
	right := float64(f.fieldW)
	for _, a := range f.Aliens {
		if a.X <= 0 || a.X+a.W >= right {
			return true
		}
	}
	return false
}

// ReachedFloor reports whether any alien's bottom edge reached the bottom of
// the field.
func (f *Fleet) ReachedFloor() bool {
	floor := float64(f.fieldH)
	for _, a := range f.Aliens {
		if a.Y+a.H >= floor {
			return true
		}
	}
	return false
}

// Hits reports whether any alien overlaps the given box. Stops at the first
// overlap found.
func (f *Fleet) Hits(b core.Box) bool {
	for _, a := range f.Aliens {
		if a.Bounds().Intersects(b) {
			return true
		}
	}
	return false
}

// sweep drops tombstoned aliens, keeping the order of the rest.
func (f *Fleet) sweep() {
	alive := f.Aliens[:0]
	for _, a := range f.Aliens {
		if !a.destroyed {
			alive = append(alive, a)
		}
	}
	// Release pointers past the new length
	for i := len(alive); i < len(f.Aliens); i++ {
		f.Aliens[i] = nil
	}
	f.Aliens = alive
}
