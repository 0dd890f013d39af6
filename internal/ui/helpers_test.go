package ui

import (
	"io"
	"log/slog"
	"testing"

	"github.com/samdwyer/dungeonrun/internal/dice"
	"github.com/samdwyer/dungeonrun/internal/entity"
	"github.com/samdwyer/dungeonrun/internal/game"
	"github.com/samdwyer/dungeonrun/internal/gamedata"
	"github.com/samdwyer/dungeonrun/internal/world"
)

// newTestEngine builds entry 0 -> treasure 1 -> exit 2. Nothing in it
// draws from the roller, so every run plays the same.
func newTestEngine(t *testing.T) *game.Engine {
	t.Helper()

	rooms := []*world.Room{
		{ID: 0, Kind: world.KindEntry},
		world.NewTreasureRoom(1, entity.NewFixedTreasure(3, 4)),
		{ID: 2, Kind: world.KindExit},
	}
	graph, err := world.NewGraphFromRooms(rooms, []gamedata.Edge{{0, 1}, {1, 2}})
	if err != nil {
		t.Fatalf("NewGraphFromRooms() error: %v", err)
	}

	engine, err := game.NewEngine(&game.Deps{
		Graph:  graph,
		Player: entity.NewFixedPlayer("Dave", 5, 7),
		Roller: dice.NewRNG(1),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("NewEngine() error: %v", err)
	}
	return engine
}
