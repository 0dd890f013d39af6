package world

import "github.com/samdwyer/dungeonrun/internal/entity"

// Room is a single room of the dungeon.
//
// HasMonster is true only for a monster room whose monster still lives;
// HasTreasure only for a treasure room whose chest is unclaimed.
type Room struct {
	ID          int
	Kind        Kind
	Monster     *entity.Monster  // nil unless Kind == KindMonster
	Treasure    *entity.Treasure // nil unless Kind == KindTreasure
	HasMonster  bool
	HasTreasure bool
}

// NewMonsterRoom creates a room guarded by the given monster.
func NewMonsterRoom(id int, m *entity.Monster) *Room {
	return &Room{ID: id, Kind: KindMonster, Monster: m, HasMonster: m.IsAlive()}
}

// NewTreasureRoom creates a room holding the given chest.
func NewTreasureRoom(id int, t *entity.Treasure) *Room {
	return &Room{ID: id, Kind: KindTreasure, Treasure: t, HasTreasure: !t.Empty}
}

// LiveMonster returns the room's monster while it is alive, or nil.
func (r *Room) LiveMonster() *entity.Monster {
	if !r.HasMonster {
		return nil
	}
	return r.Monster
}

// Cleared reports whether nothing blocks the way out of the room.
func (r *Room) Cleared() bool {
	return !r.HasMonster && !r.HasTreasure
}

// MarkMonsterSlain records that the room's monster is dead.
func (r *Room) MarkMonsterSlain() {
	if r.Monster != nil {
		r.Monster.Exhaust()
	}
	r.HasMonster = false
}

// MarkTreasureClaimed records that the room's chest is empty.
func (r *Room) MarkTreasureClaimed() {
	r.HasTreasure = false
}
