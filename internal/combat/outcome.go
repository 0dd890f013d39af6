package combat

// Outcome is the result of one player action, as reported to front ends.
type Outcome int

const (
	// OutcomeNone is the zero value; no action has been resolved.
	OutcomeNone Outcome = iota
	// OutcomePlayerWon - the player won a fight round and the monster lost health
	OutcomePlayerWon
	// OutcomeMonsterWon - the monster won a fight round and the player lost health
	OutcomeMonsterWon
	// OutcomeEnteredDungeon - the player stepped into the entry room
	OutcomeEnteredDungeon
	// OutcomeRewardClaimed - the player emptied a treasure chest
	OutcomeRewardClaimed
	// OutcomeEnteredRoom - the player walked through a door
	OutcomeEnteredRoom
	// OutcomePlayerRanHurt - the monster caught the fleeing player, who still got away
	OutcomePlayerRanHurt
	// OutcomePlayerRanUnhurt - the player outran the monster
	OutcomePlayerRanUnhurt
	// OutcomePlayerDied - the monster caught the fleeing player and killed them
	OutcomePlayerDied
	// OutcomeEscaped - the player opened the exit door
	OutcomeEscaped
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomePlayerWon:
		return "player_won"
	case OutcomeMonsterWon:
		return "monster_won"
	case OutcomeEnteredDungeon:
		return "entered_dungeon"
	case OutcomeRewardClaimed:
		return "reward_claimed"
	case OutcomeEnteredRoom:
		return "entered_room"
	case OutcomePlayerRanHurt:
		return "player_ran_hurt"
	case OutcomePlayerRanUnhurt:
		return "player_ran_unhurt"
	case OutcomePlayerDied:
		return "player_died"
	case OutcomeEscaped:
		return "escaped"
	default:
		return "unknown"
	}
}

// Fled reports whether the player got out of the room by running.
func (o Outcome) Fled() bool {
	return o == OutcomePlayerRanHurt || o == OutcomePlayerRanUnhurt
}
