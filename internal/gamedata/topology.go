package gamedata

// =============================================================================
// DUNGEON TOPOLOGY
// =============================================================================
//
// A topology lists the rooms of the dungeon and the one-way doors between
// them. It is data, not code: the default layout ships as topology.json and
// alternate layouts can be loaded from disk.
//
// JSON Schema:
// ------------
// {
//   "rooms": [
//     {"id": 0, "kind": "entry"},
//     {"id": 1, "kind": "murky", "monster": "Beelzebub"},
//     {"id": 5, "kind": "exit"}
//   ],
//   "edges": [[0, 1], [1, 5]]
// }
//
// Room kinds:
// -----------
//   - entry: where the player enters. Exactly one.
//   - exit: where the player escapes. At least one.
//   - murky: resolved at build time into a monster room (75%) or a
//     treasure room (25%). The monster name is unused for treasure rooms.
//   - monster / treasure: fixed, unresolved. Used for deterministic layouts.
//
// Edges are directed [from, to] pairs. Self-loops are ignored when the graph
// is built.

import (
	"github.com/samdwyer/dungeonrun/internal/errors"
)

// DefaultTopologyFile is the embedded default layout.
const DefaultTopologyFile = "topology.json"

// RoomKind is the kind label of a room in a topology file.
type RoomKind string

const (
	RoomEntry    RoomKind = "entry"
	RoomExit     RoomKind = "exit"
	RoomMurky    RoomKind = "murky"
	RoomMonster  RoomKind = "monster"
	RoomTreasure RoomKind = "treasure"
)

// Valid reports whether k is a known room kind.
func (k RoomKind) Valid() bool {
	switch k {
	case RoomEntry, RoomExit, RoomMurky, RoomMonster, RoomTreasure:
		return true
	default:
		return false
	}
}

// NeedsMonsterName reports whether rooms of this kind may hold a monster.
func (k RoomKind) NeedsMonsterName() bool {
	return k == RoomMurky || k == RoomMonster
}

// RoomDef defines a single room.
type RoomDef struct {
	ID      int      `json:"id"`
	Kind    RoomKind `json:"kind"`
	Monster string   `json:"monster,omitempty"` // Name of the monster if one spawns here
}

// Edge is a one-way door between two rooms.
type Edge [2]int

// From returns the source room id.
func (e Edge) From() int { return e[0] }

// To returns the destination room id.
func (e Edge) To() int { return e[1] }

// Topology is the full room and door layout of a dungeon.
type Topology struct {
	Rooms []RoomDef `json:"rooms"`
	Edges []Edge    `json:"edges"`
}

// Validate checks the layout for structural errors.
func (t *Topology) Validate() error {
	v := errors.NewValidationError()

	if len(t.Rooms) == 0 {
		v.AddFieldError("rooms", "at least one room is required")
	}

	ids := make(map[int]bool, len(t.Rooms))
	entries, exits := 0, 0
	for _, r := range t.Rooms {
		if ids[r.ID] {
			v.AddFieldErrorf("rooms", "duplicate room id %d", r.ID)
		}
		ids[r.ID] = true

		if !r.Kind.Valid() {
			v.AddFieldErrorf("rooms", "room %d has unknown kind %q", r.ID, r.Kind)
			continue
		}
		if r.Kind.NeedsMonsterName() && r.Monster == "" {
			v.AddFieldErrorf("rooms", "room %d needs a monster name", r.ID)
		}
		switch r.Kind {
		case RoomEntry:
			entries++
		case RoomExit:
			exits++
		}
	}

	if len(t.Rooms) > 0 && entries != 1 {
		v.AddFieldErrorf("rooms", "exactly one entry room is required, found %d", entries)
	}
	if len(t.Rooms) > 0 && exits == 0 {
		v.AddFieldError("rooms", "at least one exit room is required")
	}

	for _, e := range t.Edges {
		if !ids[e.From()] {
			v.AddFieldErrorf("edges", "edge %d->%d starts at unknown room", e.From(), e.To())
		}
		if !ids[e.To()] {
			v.AddFieldErrorf("edges", "edge %d->%d ends at unknown room", e.From(), e.To())
		}
	}

	return v.ToError()
}

// LoadTopology loads and validates the embedded default topology.
func LoadTopology() (*Topology, error) {
	t, err := Load[Topology](DefaultTopologyFile)
	if err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid topology %s", DefaultTopologyFile)
	}
	return &t, nil
}

// LoadTopologyFile loads and validates a topology from disk.
func LoadTopologyFile(path string) (*Topology, error) {
	t, err := LoadFile[Topology](path)
	if err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid topology %s", path)
	}
	return &t, nil
}

// MustLoadTopology loads the default topology, panicking on error.
func MustLoadTopology() *Topology {
	t, err := LoadTopology()
	if err != nil {
		panic(err)
	}
	return t
}
