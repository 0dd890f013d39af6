package ui

import (
	"fmt"
	"strings"

	"github.com/samdwyer/dungeonrun/internal/combat"
	"github.com/samdwyer/dungeonrun/internal/entity"
	"github.com/samdwyer/dungeonrun/internal/game"
	"github.com/samdwyer/dungeonrun/internal/world"
)

// InvalidOption is shown when input matches no legal move.
const InvalidOption = "Please provide a valid option"

const rule = "--------------------------------------------------------"

// Welcome introduces the player before the first move.
func Welcome(p entity.Player) []string {
	return []string{
		fmt.Sprintf("Welcome %s!", p.Name),
		"You are about to enter a DUNGEON in which reside RANDOMLY generated MONSTERS and TREASURES",
		"",
		"Your vital statistics bestowed upon you by birth are:",
		rule,
		StatLine("Health", p.Health),
		StatLine("Agility", p.Agility),
		rule,
		"",
		"The MONSTERS you fight will have their own health and agility",
		"BUT ... sometimes ... if you are lucky .... you will be rewarded with TREASURE that will replenish your vitals",
		"You can either fight or run ... but you MUST get out of this dungeon ... or DIE a watery death",
	}
}

// Help lists the commands the game understands.
func Help() []string {
	return []string{
		rule,
		"HELP",
		rule,
		"To START the game: dungeonrun",
		fmt.Sprintf("To EXIT the game at any time type %q", string(game.MoveQuit)),
		rule,
		"Follow the instructions provided in the game and type commands such as:",
		"      enter  -- to step into the dungeon",
		"      reward -- to pick up a reward",
		"      fight  -- to fight a monster",
		"      run    -- to run away from a monster",
		"      escape -- to leave through the exit",
		"      <id>   -- to walk into the room with that number",
		rule,
	}
}

// Farewell closes the session according to how it ended.
func Farewell(snap game.Snapshot) []string {
	switch snap.State {
	case game.StateEscaped:
		return []string{
			"You push the door open and daylight floods in.",
			fmt.Sprintf("%s ESCAPED the dungeon after %d fights and %d runs!", snap.Player.Name, snap.Player.Fights, snap.Player.Runs),
		}
	case game.StateDead:
		return []string{
			fmt.Sprintf("%s has died in the dungeon.", snap.Player.Name),
			"GAME OVER",
		}
	default:
		return []string{"Bye! The dungeon will be waiting."}
	}
}

// DescribeRoom says where the player stands and what is in the room.
func DescribeRoom(snap game.Snapshot) []string {
	room := snap.Room
	if room == nil {
		return []string{"You stand before the dungeon door."}
	}

	lines := []string{fmt.Sprintf("Room %d (%s)", room.ID, room.Kind)}
	switch room.Kind {
	case world.KindEntry:
		lines = append(lines, "The entrance hall. Passages lead deeper into the dark.")
	case world.KindExit:
		lines = append(lines, "You have reached the exit!")
	case world.KindMonster:
		if room.HasMonster && room.Monster != nil {
			lines = append(lines,
				fmt.Sprintf("%s blocks your way!", room.Monster.Name),
				StatLine("Monster health", room.Monster.Health),
				StatLine("Monster agility", room.Monster.Agility),
			)
		} else {
			lines = append(lines, "The remains of a monster lie on the floor.")
		}
	case world.KindTreasure:
		if room.HasTreasure {
			lines = append(lines, "A treasure chest glints in the corner.")
		} else {
			lines = append(lines, "An empty chest lies open.")
		}
	}
	return lines
}

// DescribeMoves turns a legal move list into a menu.
func DescribeMoves(moves []game.Move) []string {
	if len(moves) == 0 {
		return nil
	}

	if moves[0] == game.MoveGo {
		rooms := moves[1:]
		if len(rooms) == 0 {
			return []string{"There is no way on from here."}
		}
		lines := []string{"You are ready to move to the next room. Pick your room number:"}
		for _, m := range rooms {
			lines = append(lines, "\t"+string(m))
		}
		return lines
	}

	if len(moves) == 1 && moves[0] == game.MoveEscape {
		return []string{"You have reached the exit! Just open the door:", "\t" + string(game.MoveEscape)}
	}

	lines := []string{"What will you do:"}
	for _, m := range moves {
		lines = append(lines, "\t"+string(m))
	}
	return lines
}

// Describe reports the outcome of one turn.
func Describe(result game.Result) []string {
	if result.Quit {
		return nil
	}

	enc := result.Encounter
	switch result.Outcome {
	case combat.OutcomeEnteredDungeon:
		return []string{"You step into the dungeon. The door slams shut behind you."}
	case combat.OutcomeEnteredRoom:
		return []string{fmt.Sprintf("You walk into room %d.", result.Destination)}
	case combat.OutcomePlayerWon:
		if monsterDead(result) {
			return []string{"Player KILLS Monster"}
		}
		return []string{fmt.Sprintf("Player inflicts %d damage on Monster", enc.MonsterDamage)}
	case combat.OutcomeMonsterWon:
		if result.Snapshot.State == game.StateDead {
			return []string{"Monster KILLS Player"}
		}
		return []string{fmt.Sprintf("Monster inflicts %d damage on Player", enc.PlayerDamage)}
	case combat.OutcomeRewardClaimed:
		return []string{
			fmt.Sprintf("Treasure contained health:%d and agility:%d", enc.HealthReward, enc.AgilityReward),
			fmt.Sprintf("You gain %d health and %d agility.", enc.HealthGained, enc.AgilityGained),
		}
	case combat.OutcomePlayerRanUnhurt:
		return []string{
			"Player ran away with no damage. Lucky!",
			fmt.Sprintf("You stumble into room %d.", result.Destination),
		}
	case combat.OutcomePlayerRanHurt:
		return []string{
			fmt.Sprintf("Player ran away with some damage: -%d health, -%d agility", enc.PlayerDamage, enc.AgilityLost),
			fmt.Sprintf("You stumble into room %d.", result.Destination),
		}
	case combat.OutcomePlayerDied:
		return []string{"Player killed by monster while trying to run. Welcome grim reaper."}
	case combat.OutcomeEscaped:
		return []string{"You open the door..."}
	default:
		return []string{fmt.Sprintf("Something happened: %s", result.Outcome)}
	}
}

// monsterDead reports whether the fight just won left the room cleared.
func monsterDead(result game.Result) bool {
	room := result.Snapshot.Room
	return room != nil && room.Monster != nil && !room.HasMonster
}

// StatLine renders a labeled stat with a bar, e.g. "Health   [######----]  6".
func StatLine(label string, value int) string {
	return fmt.Sprintf("%-16s %s %2d", label, Bar(value), value)
}

// Bar draws value as a bar of entity.MaxStat cells.
func Bar(value int) string {
	value = max(entity.MinStat, min(value, entity.MaxStat))
	return "[" + strings.Repeat("#", value) + strings.Repeat("-", entity.MaxStat-value) + "]"
}
