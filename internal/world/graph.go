package world

import (
	"context"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonrun/internal/dice"
	"github.com/samdwyer/dungeonrun/internal/entity"
	"github.com/samdwyer/dungeonrun/internal/errors"
	"github.com/samdwyer/dungeonrun/internal/gamedata"
	"github.com/samdwyer/dungeonrun/internal/telemetry"
)

// Murky rooms hold a monster three times out of four.
var murkyWeights = []int{75, 25}

// Graph is the dungeon: its rooms in creation order and one-way doors between them.
type Graph struct {
	rooms     []*Room
	byID      map[int]*Room
	adjacency map[int][]int
	entryID   int
}

// NewGraph builds the rooms and doors described by a topology.
// Murky rooms are resolved into monster or treasure rooms using rng.
func NewGraph(ctx context.Context, topo *gamedata.Topology, rng dice.Roller) (*Graph, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.build")
	defer span.End()

	if err := topo.Validate(); err != nil {
		span.RecordError(err)
		return nil, errors.Wrap(err, "build dungeon")
	}

	g := &Graph{
		rooms:     make([]*Room, 0, len(topo.Rooms)),
		byID:      make(map[int]*Room, len(topo.Rooms)),
		adjacency: make(map[int][]int),
	}

	monsters, treasures := 0, 0
	for _, def := range topo.Rooms {
		room := newRoom(def, rng)
		switch room.Kind {
		case KindEntry:
			g.entryID = room.ID
		case KindMonster:
			monsters++
		case KindTreasure:
			treasures++
		}
		g.rooms = append(g.rooms, room)
		g.byID[room.ID] = room
	}

	// Group doors by source room; a door back into the same room goes nowhere.
	for _, e := range topo.Edges {
		if e.From() == e.To() {
			continue
		}
		g.adjacency[e.From()] = append(g.adjacency[e.From()], e.To())
	}

	span.SetAttributes(
		attribute.Int("dungeon.room_count", len(g.rooms)),
		attribute.Int("dungeon.edge_count", len(topo.Edges)),
		attribute.Int("dungeon.monster_rooms", monsters),
		attribute.Int("dungeon.treasure_rooms", treasures),
	)

	return g, nil
}

// newRoom creates a room from its definition, resolving murky rooms.
func newRoom(def gamedata.RoomDef, rng dice.Roller) *Room {
	kind := def.Kind
	if kind == gamedata.RoomMurky {
		if dice.WeightedSelect(rng, murkyWeights) == 0 {
			kind = gamedata.RoomMonster
		} else {
			kind = gamedata.RoomTreasure
		}
	}

	switch kind {
	case gamedata.RoomEntry:
		return &Room{ID: def.ID, Kind: KindEntry}
	case gamedata.RoomExit:
		return &Room{ID: def.ID, Kind: KindExit}
	case gamedata.RoomMonster:
		return NewMonsterRoom(def.ID, entity.NewMonster(def.Monster, rng))
	default:
		return NewTreasureRoom(def.ID, entity.NewTreasure(rng))
	}
}

// NewGraphFromRooms builds a graph from already constructed rooms.
// Rooms must have unique ids and exactly one must be the entry.
func NewGraphFromRooms(rooms []*Room, edges []gamedata.Edge) (*Graph, error) {
	g := &Graph{
		rooms:     rooms,
		byID:      make(map[int]*Room, len(rooms)),
		adjacency: make(map[int][]int),
		entryID:   -1,
	}
	for _, r := range rooms {
		if _, dup := g.byID[r.ID]; dup {
			return nil, errors.InvalidArgumentf("duplicate room id %d", r.ID)
		}
		g.byID[r.ID] = r
		if r.Kind == KindEntry {
			g.entryID = r.ID
		}
	}
	if g.entryID < 0 {
		return nil, errors.InvalidArgument("no entry room")
	}
	for _, e := range edges {
		if _, ok := g.byID[e.From()]; !ok {
			return nil, errors.InvalidArgumentf("edge %d->%d starts at unknown room", e.From(), e.To())
		}
		if _, ok := g.byID[e.To()]; !ok {
			return nil, errors.InvalidArgumentf("edge %d->%d ends at unknown room", e.From(), e.To())
		}
		if e.From() == e.To() {
			continue
		}
		g.adjacency[e.From()] = append(g.adjacency[e.From()], e.To())
	}
	return g, nil
}

// Rooms returns all rooms in creation order.
func (g *Graph) Rooms() []*Room {
	return g.rooms
}

// Entry returns the entry room.
func (g *Graph) Entry() *Room {
	return g.byID[g.entryID]
}

// Find returns the room with the given id.
func (g *Graph) Find(id int) (*Room, error) {
	room, ok := g.byID[id]
	if !ok {
		return nil, errors.NotFoundf("room %d not found", id).WithMeta("room_id", id)
	}
	return room, nil
}

// FindRef returns the room named by a string-encoded id such as "3".
func (g *Graph) FindRef(ref string) (*Room, error) {
	id, err := strconv.Atoi(strings.TrimSpace(ref))
	if err != nil {
		return nil, errors.NotFoundf("room %q not found", ref).WithMeta("room_ref", ref)
	}
	return g.Find(id)
}

// Neighbors returns the rooms reachable through the room's doors,
// in the order the doors were declared.
func (g *Graph) Neighbors(id int) []*Room {
	ids := g.adjacency[id]
	out := make([]*Room, 0, len(ids))
	for _, n := range ids {
		out = append(out, g.byID[n])
	}
	return out
}

// NeighborIDs returns the ids of the rooms reachable from the room.
func (g *Graph) NeighborIDs(id int) []int {
	ids := g.adjacency[id]
	out := make([]int, len(ids))
	copy(out, ids)
	return out
}

// HasDoor reports whether a door leads from one room to another.
func (g *Graph) HasDoor(from, to int) bool {
	for _, n := range g.adjacency[from] {
		if n == to {
			return true
		}
	}
	return false
}
