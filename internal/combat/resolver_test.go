package combat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samdwyer/dungeonrun/internal/dice"
	dicemock "github.com/samdwyer/dungeonrun/internal/dice/mock"
	"github.com/samdwyer/dungeonrun/internal/entity"
	"github.com/samdwyer/dungeonrun/internal/errors"
	"github.com/samdwyer/dungeonrun/internal/world"
)

// mockCombatant is a test implementation of the Combatant interface.
type mockCombatant struct {
	name    string
	health  int
	agility int
}

func (m *mockCombatant) GetName() string { return m.name }
func (m *mockCombatant) IsAlive() bool   { return m.health > 0 }
func (m *mockCombatant) GetHealth() int  { return m.health }
func (m *mockCombatant) GetAgility() int { return m.agility }

func (m *mockCombatant) TakeDamage(amount int) int {
	actual := min(amount, m.health)
	m.health -= actual
	return actual
}

// draws returns a roller mock that yields the given Float64 draws in order.
func draws(t *testing.T, values ...float64) *dicemock.MockRoller {
	ctrl := gomock.NewController(t)
	roller := dicemock.NewMockRoller(ctrl)
	calls := make([]any, 0, len(values))
	for _, v := range values {
		calls = append(calls, roller.EXPECT().Float64().Return(v))
	}
	gomock.InOrder(calls...)
	return roller
}

func TestResolveFightPlayerWins(t *testing.T) {
	resolver := NewResolver(draws(t, 0.0))
	player := entity.NewFixedPlayer("Dave", 6, 5)
	monster := entity.NewFixedMonster("Beelzebub", 5, 5)

	result, err := resolver.ResolveFight(context.Background(), player, monster)
	require.NoError(t, err)

	assert.Equal(t, OutcomePlayerWon, result.Outcome)
	assert.Equal(t, 2, result.MonsterDamage)
	assert.Equal(t, 0, result.PlayerDamage)
	assert.Equal(t, 3, monster.Health)
	assert.Equal(t, 6, player.Health)
	assert.Equal(t, 1, player.Fights)
}

func TestResolveFightMonsterWins(t *testing.T) {
	resolver := NewResolver(draws(t, 0.99))
	player := entity.NewFixedPlayer("Dave", 6, 5)
	monster := entity.NewFixedMonster("Beelzebub", 5, 5)

	result, err := resolver.ResolveFight(context.Background(), player, monster)
	require.NoError(t, err)

	assert.Equal(t, OutcomeMonsterWon, result.Outcome)
	assert.Equal(t, 4, player.Health)
	assert.Equal(t, 5, monster.Health)
	assert.Equal(t, 1, player.Fights)
}

func TestResolveFightWinProbabilityUsesHealth(t *testing.T) {
	// Player 3 vs monster 7: player wins iff draw < 0.3.
	tests := []struct {
		draw float64
		want Outcome
	}{
		{0.29, OutcomePlayerWon},
		{0.30, OutcomeMonsterWon},
		{0.31, OutcomeMonsterWon},
	}

	for _, tt := range tests {
		resolver := NewResolver(draws(t, tt.draw))
		player := entity.NewFixedPlayer("Dave", 3, 5)
		monster := entity.NewFixedMonster("Orc", 7, 5)

		result, err := resolver.ResolveFight(context.Background(), player, monster)
		require.NoError(t, err)
		assert.Equal(t, tt.want, result.Outcome, "draw %v", tt.draw)
	}
}

func TestResolveFightKills(t *testing.T) {
	resolver := NewResolver(draws(t, 0.0, 0.99))

	monster := entity.NewFixedMonster("Beetlejuice", 1, 5)
	player := entity.NewFixedPlayer("Dave", 9, 5)
	result, err := resolver.ResolveFight(context.Background(), player, monster)
	require.NoError(t, err)
	assert.Equal(t, 1, result.MonsterDamage)
	assert.Equal(t, 0, monster.Health)
	assert.False(t, monster.IsAlive())

	weak := entity.NewFixedPlayer("Dave", 2, 5)
	brute := entity.NewFixedMonster("Devilzebub", 10, 5)
	result, err = resolver.ResolveFight(context.Background(), weak, brute)
	require.NoError(t, err)
	assert.Equal(t, OutcomeMonsterWon, result.Outcome)
	assert.Equal(t, 0, weak.Health)
	assert.False(t, weak.IsAlive())
}

func TestResolveFightIsZeroSum(t *testing.T) {
	rng := dice.NewRNG(2024)
	resolver := NewResolver(rng)

	for i := 0; i < 200; i++ {
		player := entity.NewPlayer("Dave", rng)
		monster := entity.NewMonster("Orc", rng)
		ph, mh := player.Health, monster.Health

		_, err := resolver.ResolveFight(context.Background(), player, monster)
		require.NoError(t, err)

		playerLost := ph - player.Health
		monsterLost := mh - monster.Health
		if (playerLost == 0) == (monsterLost == 0) {
			t.Fatalf("round %d: exactly one side must lose health, got player -%d monster -%d", i, playerLost, monsterLost)
		}
		assert.LessOrEqual(t, playerLost+monsterLost, FightDamage)
		assert.GreaterOrEqual(t, player.Health, entity.MinStat)
		assert.GreaterOrEqual(t, monster.Health, entity.MinStat)
	}
}

func TestResolveFightDeterministic(t *testing.T) {
	run := func() (int, int) {
		resolver := NewResolver(dice.NewRNG(77))
		player := entity.NewFixedPlayer("Dave", 6, 6)
		monster := entity.NewFixedMonster("Orc", 6, 6)
		for player.IsAlive() && monster.IsAlive() {
			_, err := resolver.ResolveFight(context.Background(), player, monster)
			require.NoError(t, err)
		}
		return player.Health, monster.Health
	}

	p1, m1 := run()
	p2, m2 := run()
	assert.Equal(t, p1, p2)
	assert.Equal(t, m1, m2)
}

func TestResolveFightPreconditions(t *testing.T) {
	resolver := NewResolver(dice.NewRNG(1))

	deadPlayer := entity.NewFixedPlayer("Dave", 0, 5)
	_, err := resolver.ResolveFight(context.Background(), deadPlayer, entity.NewFixedMonster("Orc", 5, 5))
	assert.True(t, errors.IsFailedPrecondition(err), "dead player: %v", err)

	player := entity.NewFixedPlayer("Dave", 5, 5)
	_, err = resolver.ResolveFight(context.Background(), player, &mockCombatant{name: "Corpse"})
	assert.True(t, errors.IsFailedPrecondition(err), "dead monster: %v", err)
	assert.Equal(t, 0, player.Fights, "rejected fight must not count")
}

func TestResolveFleeUnhurt(t *testing.T) {
	resolver := NewResolver(draws(t, 0.1))
	player := entity.NewFixedPlayer("Dave", 5, 5)
	monster := entity.NewFixedMonster("Orc", 5, 5)

	result, err := resolver.ResolveFlee(context.Background(), player, monster)
	require.NoError(t, err)

	assert.Equal(t, OutcomePlayerRanUnhurt, result.Outcome)
	assert.Equal(t, 5, player.Health)
	assert.Equal(t, 5, player.Agility)
	assert.Equal(t, 1, player.Runs)
}

func TestResolveFleeHurt(t *testing.T) {
	resolver := NewResolver(draws(t, 0.9))
	player := entity.NewFixedPlayer("Dave", 5, 1)
	monster := entity.NewFixedMonster("Orc", 5, 5)

	result, err := resolver.ResolveFlee(context.Background(), player, monster)
	require.NoError(t, err)

	assert.Equal(t, OutcomePlayerRanHurt, result.Outcome)
	assert.Equal(t, 3, player.Health)
	assert.Equal(t, 0, player.Agility, "agility floors at zero")
	assert.Equal(t, 2, result.PlayerDamage)
	assert.Equal(t, 1, result.AgilityLost)
	assert.Equal(t, 1, player.Runs)
}

func TestResolveFleeDies(t *testing.T) {
	resolver := NewResolver(draws(t, 0.9))
	player := entity.NewFixedPlayer("Dave", 2, 4)
	monster := entity.NewFixedMonster("Orc", 5, 5)

	result, err := resolver.ResolveFlee(context.Background(), player, monster)
	require.NoError(t, err)

	assert.Equal(t, OutcomePlayerDied, result.Outcome)
	assert.Equal(t, 0, player.Health)
	assert.False(t, player.IsAlive())
}

func TestResolveFleeBoundaries(t *testing.T) {
	rng := dice.NewRNG(555)
	resolver := NewResolver(rng)

	for i := 0; i < 100; i++ {
		swift := entity.NewFixedPlayer("Dave", 10, 10)
		result, err := resolver.ResolveFlee(context.Background(), swift, entity.NewFixedMonster("Slug", 5, 0))
		require.NoError(t, err)
		require.Equal(t, OutcomePlayerRanUnhurt, result.Outcome)
	}

	for i := 0; i < 100; i++ {
		slow := entity.NewFixedPlayer("Dave", 10, 0)
		result, err := resolver.ResolveFlee(context.Background(), slow, entity.NewFixedMonster("Hawk", 5, 10))
		require.NoError(t, err)
		require.Equal(t, OutcomePlayerRanHurt, result.Outcome)
	}
}

func TestResolveFleeZeroAgility(t *testing.T) {
	resolver := NewResolver(dice.NewRNG(1))
	player := entity.NewFixedPlayer("Dave", 5, 0)

	_, err := resolver.ResolveFlee(context.Background(), player, &mockCombatant{name: "Statue", health: 5})
	assert.True(t, errors.IsFailedPrecondition(err), "zero agility: %v", err)
	assert.Equal(t, 0, player.Runs)
}

func TestClaimTreasure(t *testing.T) {
	resolver := NewResolver(dice.NewRNG(1))
	player := entity.NewFixedPlayer("Dave", 7, 4)
	room := world.NewTreasureRoom(3, entity.NewFixedTreasure(6, 3))

	result, err := resolver.ClaimTreasure(context.Background(), player, room)
	require.NoError(t, err)

	assert.Equal(t, OutcomeRewardClaimed, result.Outcome)
	assert.Equal(t, 6, result.HealthReward)
	assert.Equal(t, 3, result.AgilityReward)
	assert.Equal(t, 3, result.HealthGained, "health caps at 10")
	assert.Equal(t, 3, result.AgilityGained)
	assert.Equal(t, entity.MaxStat, player.Health)
	assert.Equal(t, 7, player.Agility)
	assert.False(t, room.HasTreasure)
	assert.True(t, room.Treasure.Empty)
	assert.Zero(t, room.Treasure.HealthReward)

	_, err = resolver.ClaimTreasure(context.Background(), player, room)
	assert.True(t, errors.IsFailedPrecondition(err), "second claim: %v", err)
	assert.Equal(t, 7, player.Agility, "failed claim must not change stats")
}

func TestClaimTreasureWrongRoom(t *testing.T) {
	resolver := NewResolver(dice.NewRNG(1))
	player := entity.NewFixedPlayer("Dave", 5, 5)

	_, err := resolver.ClaimTreasure(context.Background(), player, &world.Room{ID: 0, Kind: world.KindEntry})
	assert.True(t, errors.IsFailedPrecondition(err))
}

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		outcome  Outcome
		expected string
	}{
		{OutcomePlayerWon, "player_won"},
		{OutcomeMonsterWon, "monster_won"},
		{OutcomeEnteredDungeon, "entered_dungeon"},
		{OutcomeRewardClaimed, "reward_claimed"},
		{OutcomeEnteredRoom, "entered_room"},
		{OutcomePlayerRanHurt, "player_ran_hurt"},
		{OutcomePlayerRanUnhurt, "player_ran_unhurt"},
		{OutcomePlayerDied, "player_died"},
		{OutcomeEscaped, "escaped"},
		{Outcome(99), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.outcome.String())
	}
	assert.True(t, OutcomePlayerRanHurt.Fled())
	assert.False(t, OutcomePlayerDied.Fled())
}
