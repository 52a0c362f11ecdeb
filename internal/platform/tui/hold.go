package tui

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// DefaultRelease is how long a movement key counts as held after its last
// press or auto-repeat. It has to outlast the terminal's initial repeat delay.
const DefaultRelease = 550 * time.Millisecond

// holdTracker turns key presses into start/stop movement events. Terminals
// report presses and auto-repeats but never releases, so a key is released
// once no repeat arrived within the release window.
type holdTracker struct {
	release   time.Duration
	leftSeen  time.Time // Zero when not held
	rightSeen time.Time
}

func newHoldTracker(release time.Duration) holdTracker {
	if release <= 0 {
		release = DefaultRelease
	}
	return holdTracker{release: release}
}

// pressLeft records a left press. Returns true if the key was not held.
func (h *holdTracker) pressLeft(now time.Time) bool {
	started := h.leftSeen.IsZero()
	h.leftSeen = now
	return started
}

// pressRight records a right press. Returns true if the key was not held.
func (h *holdTracker) pressRight(now time.Time) bool {
	started := h.rightSeen.IsZero()
	h.rightSeen = now
	return started
}

// expire releases keys whose window ran out and returns the matching stop
// events.
func (h *holdTracker) expire(now time.Time) []core.Event {
	var events []core.Event
	if !h.leftSeen.IsZero() && now.Sub(h.leftSeen) >= h.release {
		h.leftSeen = time.Time{}
		events = append(events, core.Event{Action: core.ActionMoveLeftStop})
	}
	if !h.rightSeen.IsZero() && now.Sub(h.rightSeen) >= h.release {
		h.rightSeen = time.Time{}
		events = append(events, core.Event{Action: core.ActionMoveRightStop})
	}
	return events
}

// held reports whether either movement key is currently held.
func (h *holdTracker) held() bool {
	return !h.leftSeen.IsZero() || !h.rightSeen.IsZero()
}
