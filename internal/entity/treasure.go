package entity

import (
	"github.com/samdwyer/dungeonrun/internal/dice"
	"github.com/samdwyer/dungeonrun/internal/errors"
)

const (
	// Treasure rewards are rolled uniformly from [RewardMin, RewardMax].
	RewardMin = 2
	RewardMax = 8
)

// Treasure restores the player's health and agility once.
type Treasure struct {
	HealthReward  int
	AgilityReward int
	Empty         bool
}

// NewTreasure rolls the rewards for a new treasure chest.
func NewTreasure(rng dice.Roller) *Treasure {
	return &Treasure{
		AgilityReward: dice.Between(rng, RewardMin, RewardMax),
		HealthReward:  dice.Between(rng, RewardMin, RewardMax),
	}
}

// NewFixedTreasure creates a chest with the given rewards.
func NewFixedTreasure(health, agility int) *Treasure {
	return &Treasure{HealthReward: health, AgilityReward: agility}
}

// Take empties the chest and returns its rewards.
// Taking from an empty chest is a precondition violation.
func (t *Treasure) Take() (health, agility int, err error) {
	if t.Empty {
		return 0, 0, errors.FailedPrecondition("treasure already claimed")
	}
	health, agility = t.HealthReward, t.AgilityReward
	t.HealthReward = 0
	t.AgilityReward = 0
	t.Empty = true
	return health, agility, nil
}
