package game

import (
	"strconv"

	"github.com/samdwyer/dungeonrun/internal/errors"
)

// Move is one entry of the legal move list, or a validated player command.
// Room ids appear as their decimal string form.
type Move string

const (
	MoveEnter  Move = "enter"
	MoveFight  Move = "fight"
	MoveRun    Move = "run"
	MoveReward Move = "reward"
	MoveEscape Move = "escape"
	// MoveGo marks a move list whose remaining entries are room ids.
	MoveGo Move = "move"
	// MoveQuit is accepted in every state and means the player wants out.
	MoveQuit Move = "bye"
)

// RoomMove returns the move that walks into the given room.
func RoomMove(id int) Move {
	return Move(strconv.Itoa(id))
}

// RoomID returns the room id named by the move, if it names one.
func (m Move) RoomID() (int, bool) {
	if m == "" {
		return 0, false
	}
	for _, c := range m {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	id, err := strconv.Atoi(string(m))
	if err != nil {
		return 0, false
	}
	return id, true
}

// Validate checks raw player input against the legal moves and returns the
// canonical move. Matching is exact: no case folding or trimming. The quit
// keyword is always accepted. When the list starts with MoveGo only the
// room ids after it are accepted, either verbatim or as any decimal
// spelling of the same id ("02" for "2").
// Anything else is an InvalidArgument error; the caller should re-prompt.
func Validate(raw string, legal []Move) (Move, error) {
	input := Move(raw)
	if input == MoveQuit {
		return MoveQuit, nil
	}

	if len(legal) > 0 && legal[0] == MoveGo {
		want, isRoom := input.RoomID()
		for _, m := range legal[1:] {
			if m == input {
				return m, nil
			}
			if id, ok := m.RoomID(); ok && isRoom && id == want {
				return m, nil
			}
		}
		return "", errors.InvalidArgumentf("%q is not a room you can walk to", raw)
	}

	for _, m := range legal {
		if m == input {
			return m, nil
		}
	}
	return "", errors.InvalidArgumentf("%q is not a legal move", raw)
}

// containsMove reports whether m appears in legal, ignoring the MoveGo marker.
func containsMove(legal []Move, m Move) bool {
	for _, l := range legal {
		if l == m && l != MoveGo {
			return true
		}
	}
	return false
}
