package game

import (
	"github.com/samdwyer/dungeonrun/internal/entity"
	"github.com/samdwyer/dungeonrun/internal/world"
)

// RoomView is a read-only copy of the room the player stands in.
type RoomView struct {
	ID          int
	Kind        world.Kind
	HasMonster  bool
	HasTreasure bool
	Monster     *entity.Monster  // Copy, nil when the room never had one
	Treasure    *entity.Treasure // Copy, nil when the room never had one
}

// Snapshot is a copy of everything a front end needs to draw a turn.
// Changing it does not affect the engine.
type Snapshot struct {
	State    State
	Location int
	Player   entity.Player
	Room     *RoomView // nil before the player enters
	Moves    []Move    // Empty once the game is over
}

// Snapshot copies the current session state.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		State:    e.state,
		Location: e.location,
		Player:   *e.player,
	}

	if room := e.CurrentRoom(); room != nil {
		view := &RoomView{
			ID:          room.ID,
			Kind:        room.Kind,
			HasMonster:  room.HasMonster,
			HasTreasure: room.HasTreasure,
		}
		if room.Monster != nil {
			m := *room.Monster
			view.Monster = &m
		}
		if room.Treasure != nil {
			t := *room.Treasure
			view.Treasure = &t
		}
		snap.Room = view
	}

	if moves, err := e.LegalMoves(); err == nil {
		snap.Moves = moves
	}
	return snap
}
