package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // Up arrow, W
	ActionDown         // Down arrow, S
	ActionLeft         // Left arrow, A
	ActionRight        // Right arrow, D
	ActionAny          // any other key; only meaningful after game over
	ActionQuit         // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionAny:
		return "Any"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction returns the unit velocity for a directional action.
// ok is false for every other action.
func (a Action) Direction() (v Point, ok bool) {
	switch a {
	case ActionUp:
		return Point{X: 0, Y: -1}, true
	case ActionDown:
		return Point{X: 0, Y: 1}, true
	case ActionLeft:
		return Point{X: -1, Y: 0}, true
	case ActionRight:
		return Point{X: 1, Y: 0}, true
	}
	return Point{}, false
}
