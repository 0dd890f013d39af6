// Package game provides the session state machine that drives a dungeon run.
package game

// State represents the current session state.
type State int

const (
	// StateNotEntered - the player stands outside the dungeon
	StateNotEntered State = iota
	// StateInRoom - the player is inside a room
	StateInRoom
	// StateEscaped - the player left through an exit (terminal)
	StateEscaped
	// StateDead - the player died (terminal)
	StateDead
)

// NotEntered is the location of a player who has not entered the dungeon.
const NotEntered = -1

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateNotEntered:
		return "not_entered"
	case StateInRoom:
		return "in_room"
	case StateEscaped:
		return "escaped"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transitions are accepted.
func (s State) Terminal() bool {
	return s == StateEscaped || s == StateDead
}
