// Package combat resolves encounters between the player and a monster.
package combat

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonrun/internal/dice"
	"github.com/samdwyer/dungeonrun/internal/entity"
	"github.com/samdwyer/dungeonrun/internal/errors"
	"github.com/samdwyer/dungeonrun/internal/telemetry"
	"github.com/samdwyer/dungeonrun/internal/world"
)

const (
	// FightDamage is the health the loser of a fight round loses.
	FightDamage = 2
	// CatchDamage is the health and agility a caught player loses.
	CatchDamage = 2
)

// Combatant is anything the player can fight or run from.
// *entity.Monster implements it.
type Combatant interface {
	GetName() string
	IsAlive() bool
	GetHealth() int
	GetAgility() int

	TakeDamage(amount int) int // Returns actual damage taken
}

// EncounterResult contains the outcome of one resolved action.
type EncounterResult struct {
	Outcome       Outcome
	PlayerDamage  int // Health the player lost
	MonsterDamage int // Health the monster lost
	AgilityLost   int // Agility the player lost while fleeing
	HealthReward  int // Health the chest held
	AgilityReward int // Agility the chest held
	HealthGained  int // Health actually restored, after the cap
	AgilityGained int // Agility actually restored, after the cap
}

// Resolver draws the random outcome of fights, flights and treasure.
// Every draw is a fresh Bernoulli trial weighted by the current stats.
type Resolver struct {
	rng dice.Roller
}

// NewResolver creates a resolver drawing from rng.
func NewResolver(rng dice.Roller) *Resolver {
	return &Resolver{rng: rng}
}

// ResolveFight plays one fight round. The player wins with probability
// player.Health / (player.Health + foe.Health); the loser takes FightDamage.
func (r *Resolver) ResolveFight(ctx context.Context, player *entity.Player, foe Combatant) (EncounterResult, error) {
	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "encounter.fight")
	defer span.End()

	if err := checkCombatants(player, foe); err != nil {
		span.RecordError(err)
		return EncounterResult{}, err
	}
	total := player.Health + foe.GetHealth()
	if total <= 0 {
		err := errors.FailedPreconditionf("fight needs positive combined health, got %d", total)
		span.RecordError(err)
		return EncounterResult{}, err
	}

	playerWins := dice.Chance(r.rng, float64(player.Health)/float64(total))
	player.RecordFight()

	var result EncounterResult
	if playerWins {
		result.Outcome = OutcomePlayerWon
		result.MonsterDamage = foe.TakeDamage(FightDamage)
	} else {
		result.Outcome = OutcomeMonsterWon
		result.PlayerDamage = player.TakeDamage(FightDamage)
	}

	span.SetAttributes(
		attribute.String("monster", foe.GetName()),
		attribute.String("outcome", result.Outcome.String()),
		attribute.Int("player.health", player.Health),
		attribute.Int("monster.health", foe.GetHealth()),
		attribute.Int("player.fights", player.Fights),
	)
	return result, nil
}

// ResolveFlee plays one attempt to run past the monster. The player escapes
// unharmed with probability player.Agility / (player.Agility + foe.Agility);
// otherwise they lose CatchDamage health and agility, and may die.
func (r *Resolver) ResolveFlee(ctx context.Context, player *entity.Player, foe Combatant) (EncounterResult, error) {
	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "encounter.flee")
	defer span.End()

	if err := checkCombatants(player, foe); err != nil {
		span.RecordError(err)
		return EncounterResult{}, err
	}
	total := player.Agility + foe.GetAgility()
	if total <= 0 {
		err := errors.FailedPreconditionf("flee needs positive combined agility, got %d", total)
		span.RecordError(err)
		return EncounterResult{}, err
	}

	escaped := dice.Chance(r.rng, float64(player.Agility)/float64(total))
	player.RecordRun()

	var result EncounterResult
	switch {
	case escaped:
		result.Outcome = OutcomePlayerRanUnhurt
	default:
		result.PlayerDamage = player.TakeDamage(CatchDamage)
		result.AgilityLost = player.LoseAgility(CatchDamage)
		if player.IsAlive() {
			result.Outcome = OutcomePlayerRanHurt
		} else {
			result.Outcome = OutcomePlayerDied
		}
	}

	span.SetAttributes(
		attribute.String("monster", foe.GetName()),
		attribute.String("outcome", result.Outcome.String()),
		attribute.Int("player.health", player.Health),
		attribute.Int("player.agility", player.Agility),
		attribute.Int("player.runs", player.Runs),
	)
	return result, nil
}

// ClaimTreasure moves the room's treasure into the player's stats, capped at
// entity.MaxStat, and leaves the chest empty. The room must hold unclaimed treasure.
func (r *Resolver) ClaimTreasure(ctx context.Context, player *entity.Player, room *world.Room) (EncounterResult, error) {
	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "encounter.reward")
	defer span.End()

	if !room.HasTreasure || room.Treasure == nil {
		err := errors.FailedPreconditionf("room %d has no treasure to claim", room.ID).WithMeta("room_id", room.ID)
		span.RecordError(err)
		return EncounterResult{}, err
	}

	health, agility, err := room.Treasure.Take()
	if err != nil {
		span.RecordError(err)
		return EncounterResult{}, errors.Wrapf(err, "claim treasure in room %d", room.ID)
	}
	room.MarkTreasureClaimed()

	result := EncounterResult{
		Outcome:       OutcomeRewardClaimed,
		HealthReward:  health,
		AgilityReward: agility,
		HealthGained:  player.Heal(health),
		AgilityGained: player.GainAgility(agility),
	}

	span.SetAttributes(
		attribute.Int("room_id", room.ID),
		attribute.Int("reward.health", health),
		attribute.Int("reward.agility", agility),
		attribute.Int("player.health", player.Health),
		attribute.Int("player.agility", player.Agility),
	)
	return result, nil
}

// checkCombatants rejects encounters with a missing or dead participant.
func checkCombatants(player *entity.Player, foe Combatant) error {
	if player == nil || foe == nil {
		return errors.FailedPrecondition("encounter needs a player and a monster")
	}
	if !player.IsAlive() {
		return errors.FailedPreconditionf("%s is dead", player.Name)
	}
	if !foe.IsAlive() {
		return errors.FailedPreconditionf("%s is already dead", foe.GetName())
	}
	return nil
}

// Ensure Monster implements Combatant
var _ Combatant = (*entity.Monster)(nil)
