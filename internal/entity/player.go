package entity

import "github.com/samdwyer/dungeonrun/internal/dice"

// DefaultPlayerName is the hero of the dungeon unless configured otherwise.
const DefaultPlayerName = "Dangerous Dave"

// Player is the adventurer. Runs and Fights only ever grow.
type Player struct {
	Stats
	Runs   int // Flee attempts, successful or not
	Fights int // Fight rounds, won or lost
}

// NewPlayer creates a player with rolled starting stats.
func NewPlayer(name string, rng dice.Roller) *Player {
	return &Player{Stats: NewStats(name, rng)}
}

// NewFixedPlayer creates a player with the given stats.
func NewFixedPlayer(name string, health, agility int) *Player {
	return &Player{Stats: NewFixedStats(name, health, agility)}
}

// RecordFight counts one fight round.
func (p *Player) RecordFight() { p.Fights++ }

// RecordRun counts one flee attempt.
func (p *Player) RecordRun() { p.Runs++ }
