package entity

import "github.com/samdwyer/dungeonrun/internal/dice"

// Monster guards a single room. A slain monster stays in its room, dead.
type Monster struct {
	Stats
}

// NewMonster creates a monster with rolled starting stats.
func NewMonster(name string, rng dice.Roller) *Monster {
	return &Monster{Stats: NewStats(name, rng)}
}

// NewFixedMonster creates a monster with the given stats.
func NewFixedMonster(name string, health, agility int) *Monster {
	return &Monster{Stats: NewFixedStats(name, health, agility)}
}
