package core

// Action represents a semantic input event, abstracted from physical keys and
// mouse buttons. The platform produces actions; the game consumes them.
type Action int

const (
	ActionNone           Action = iota
	ActionMoveLeftStart         // Left arrow / A pressed
	ActionMoveLeftStop          // Left arrow / A released
	ActionMoveRightStart        // Right arrow / D pressed
	ActionMoveRightStop         // Right arrow / D released
	ActionFire                  // Space
	ActionQuit                  // Q, Ctrl+C
	ActionClick                 // Pointer press at (X, Y) in field coordinates
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeftStart:
		return "MoveLeftStart"
	case ActionMoveLeftStop:
		return "MoveLeftStop"
	case ActionMoveRightStart:
		return "MoveRightStart"
	case ActionMoveRightStop:
		return "MoveRightStop"
	case ActionFire:
		return "Fire"
	case ActionQuit:
		return "Quit"
	case ActionClick:
		return "Click"
	default:
		return "Unknown"
	}
}

// Event is a single discrete input. X and Y are only meaningful for ActionClick.
type Event struct {
	Action Action
	X, Y   int
}

// Click creates a pointer click event at the given field position.
func Click(x, y int) Event {
	return Event{Action: ActionClick, X: x, Y: y}
}

// InputFrame collects the events that arrived between two simulation ticks.
// Order is preserved: a press followed by a release in the same frame must
// be applied in that order.
type InputFrame struct {
	Events []Event
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Events: make([]Event, 0, 8)}
}

// Push appends an event to the frame.
func (f *InputFrame) Push(e Event) {
	f.Events = append(f.Events, e)
}

// Set appends an event with no coordinates.
func (f *InputFrame) Set(a Action) {
	f.Push(Event{Action: a})
}

// Has returns true if the given action occurred this frame.
func (f InputFrame) Has(a Action) bool {
	for _, e := range f.Events {
		if e.Action == a {
			return true
		}
	}
	return false
}

// Clear resets the frame for the next tick, keeping the allocation.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}
