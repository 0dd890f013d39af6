// Package entity provides the creatures and treasure that live in the dungeon.
package entity

import "github.com/samdwyer/dungeonrun/internal/dice"

const (
	// MinStat and MaxStat bound health and agility for every creature.
	MinStat = 0
	MaxStat = 10

	// Starting stats are rolled uniformly from [StartStatMin, StartStatMax].
	StartStatMin = 2
	StartStatMax = 10
)

// Stats holds the state shared by the player and monsters.
type Stats struct {
	Name    string
	Health  int
	Agility int
	alive   bool
}

// NewStats rolls starting health and agility for a new creature.
func NewStats(name string, rng dice.Roller) Stats {
	return Stats{
		Name:    name,
		Health:  dice.Between(rng, StartStatMin, StartStatMax),
		Agility: dice.Between(rng, StartStatMin, StartStatMax),
		alive:   true,
	}
}

// NewFixedStats creates a living creature with the given stats, clamped to range.
func NewFixedStats(name string, health, agility int) Stats {
	s := Stats{
		Name:    name,
		Health:  clamp(health),
		Agility: clamp(agility),
	}
	s.alive = s.Health > MinStat
	return s
}

// GetName returns the creature's name.
func (s *Stats) GetName() string { return s.Name }

// GetHealth returns current health.
func (s *Stats) GetHealth() int { return s.Health }

// GetAgility returns current agility.
func (s *Stats) GetAgility() int { return s.Agility }

// IsAlive returns true until the creature's health first reaches zero.
func (s *Stats) IsAlive() bool { return s.alive }

// TakeDamage reduces health, floored at zero, and returns actual damage taken.
// Reaching zero health kills the creature.
func (s *Stats) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := min(amount, s.Health)
	s.Health -= actual
	if s.Health == MinStat {
		s.alive = false
	}
	return actual
}

// LoseAgility reduces agility, floored at zero, and returns the actual loss.
func (s *Stats) LoseAgility(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := min(amount, s.Agility)
	s.Agility -= actual
	return actual
}

// Heal restores health up to MaxStat and returns the actual amount healed.
func (s *Stats) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := min(amount, MaxStat-s.Health)
	s.Health += actual
	return actual
}

// GainAgility raises agility up to MaxStat and returns the actual gain.
func (s *Stats) GainAgility(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := min(amount, MaxStat-s.Agility)
	s.Agility += actual
	return actual
}

// Exhaust zeroes both stats of a dead creature.
func (s *Stats) Exhaust() {
	s.Health = MinStat
	s.Agility = MinStat
	s.alive = false
}

func clamp(v int) int {
	return max(MinStat, min(MaxStat, v))
}
