package game

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonrun/internal/combat"
	"github.com/samdwyer/dungeonrun/internal/entity"
	"github.com/samdwyer/dungeonrun/internal/errors"
	"github.com/samdwyer/dungeonrun/internal/telemetry"
	"github.com/samdwyer/dungeonrun/internal/world"
)

// Result is the outcome of one executed move, handed to ApplyOutcome and
// then to the front end.
type Result struct {
	Move        Move
	Outcome     combat.Outcome
	Encounter   combat.EncounterResult
	From        int      // Room the move was made in (NotEntered before entry)
	Destination int      // Room the player ends up in once applied
	Quit        bool     // The player asked to leave; nothing was executed
	Snapshot    Snapshot // Session state after the turn, set by Turn

	turn int
}

// Engine holds one session: the dungeon, the player and where they stand.
// It is not safe for concurrent use; a session is strictly turn based.
type Engine struct {
	graph    *world.Graph
	player   *entity.Player
	resolver *combat.Resolver
	logger   *slog.Logger

	state    State
	location int

	turn    int  // Executed moves
	applied bool // Whether the last executed move has been applied
}

// NewEngine creates an engine from already built parts.
func NewEngine(deps *Deps) (*Engine, error) {
	if err := deps.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid engine dependencies")
	}

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Engine{
		graph:    deps.Graph,
		player:   deps.Player,
		resolver: combat.NewResolver(deps.Roller),
		logger:   logger,
		state:    StateNotEntered,
		location: NotEntered,
		applied:  true,
	}, nil
}

// State returns the current session state.
func (e *Engine) State() State { return e.state }

// Location returns the current room id, or NotEntered.
func (e *Engine) Location() int { return e.location }

// Player returns the session's player.
func (e *Engine) Player() *entity.Player { return e.player }

// Graph returns the session's dungeon.
func (e *Engine) Graph() *world.Graph { return e.graph }

// CurrentRoom returns the room the player stands in, or nil before entry.
func (e *Engine) CurrentRoom() *world.Room {
	if e.location == NotEntered {
		return nil
	}
	room, err := e.graph.Find(e.location)
	if err != nil {
		return nil
	}
	return room
}

// LegalMoves returns the moves the player may make right now. It never
// mutates the session. A room move list starts with MoveGo followed by the
// ids of the neighboring rooms in door order.
func (e *Engine) LegalMoves() ([]Move, error) {
	switch e.state {
	case StateNotEntered:
		return []Move{MoveEnter}, nil
	case StateEscaped, StateDead:
		return nil, errors.FailedPreconditionf("the game is over (%s)", e.state)
	case StateInRoom:
	default:
		return nil, e.unreachable("unknown session state %d", int(e.state))
	}

	room, err := e.graph.Find(e.location)
	if err != nil {
		return nil, e.unreachable("player stands in missing room %d", e.location)
	}

	switch room.Kind {
	case world.KindEntry:
		return e.roomMoves(room), nil
	case world.KindMonster:
		if room.HasMonster {
			return []Move{MoveFight, MoveRun}, nil
		}
		return e.roomMoves(room), nil
	case world.KindTreasure:
		if room.HasTreasure {
			return []Move{MoveReward}, nil
		}
		return e.roomMoves(room), nil
	case world.KindExit:
		return []Move{MoveEscape}, nil
	default:
		return nil, e.unreachable("room %d has unknown kind %s", room.ID, room.Kind)
	}
}

// roomMoves lists the doors out of a room.
func (e *Engine) roomMoves(room *world.Room) []Move {
	ids := e.graph.NeighborIDs(room.ID)
	moves := make([]Move, 0, len(ids)+1)
	moves = append(moves, MoveGo)
	for _, id := range ids {
		moves = append(moves, RoomMove(id))
	}
	return moves
}

// unreachable logs and returns an Internal error for a state the engine
// should never be in. The session cannot continue.
func (e *Engine) unreachable(format string, args ...any) error {
	err := errors.Internalf(format, args...)
	e.logger.Error("unreachable game state",
		"error", err,
		"state", e.state.String(),
		"location", e.location,
	)
	return err
}

// Execute resolves a validated move against the current room and returns
// its outcome. Encounter stats change here; location and session state
// change when the result is passed to ApplyOutcome.
func (e *Engine) Execute(ctx context.Context, move Move) (Result, error) {
	if !e.applied {
		return Result{}, errors.FailedPrecondition("previous move has not been applied")
	}

	legal, err := e.LegalMoves()
	if err != nil {
		return Result{}, err
	}
	if !containsMove(legal, move) {
		return Result{}, errors.FailedPreconditionf("move %q is not legal here", move).
			WithMeta("location", e.location)
	}

	result := Result{
		Move:        move,
		From:        e.location,
		Destination: e.location,
	}

	switch move {
	case MoveEnter:
		result.Outcome = combat.OutcomeEnteredDungeon
		result.Destination = e.graph.Entry().ID

	case MoveFight:
		room := e.CurrentRoom()
		enc, err := e.resolver.ResolveFight(ctx, e.player, room.LiveMonster())
		if err != nil {
			return Result{}, errors.Wrap(err, "resolve fight")
		}
		result.Outcome = enc.Outcome
		result.Encounter = enc

	case MoveRun:
		room := e.CurrentRoom()
		enc, err := e.resolver.ResolveFlee(ctx, e.player, room.LiveMonster())
		if err != nil {
			return Result{}, errors.Wrap(err, "resolve flee")
		}
		result.Outcome = enc.Outcome
		result.Encounter = enc
		// A fleeing player always takes the first declared door.
		if enc.Outcome.Fled() {
			if next := e.graph.NeighborIDs(room.ID); len(next) > 0 {
				result.Destination = next[0]
			}
		}

	case MoveReward:
		enc, err := e.resolver.ClaimTreasure(ctx, e.player, e.CurrentRoom())
		if err != nil {
			return Result{}, errors.Wrap(err, "claim treasure")
		}
		result.Outcome = enc.Outcome
		result.Encounter = enc

	case MoveEscape:
		result.Outcome = combat.OutcomeEscaped

	default:
		id, ok := move.RoomID()
		if !ok {
			return Result{}, e.unreachable("legal move %q has no handler", move)
		}
		if _, err := e.graph.Find(id); err != nil {
			return Result{}, err
		}
		result.Outcome = combat.OutcomeEnteredRoom
		result.Destination = id
	}

	e.turn++
	e.applied = false
	result.turn = e.turn
	return result, nil
}

// ApplyOutcome moves the player and updates room and session state for an
// executed result. Each result must be applied exactly once, before the
// next Execute.
func (e *Engine) ApplyOutcome(ctx context.Context, result Result) error {
	if e.applied || result.turn != e.turn {
		return errors.FailedPreconditionf("result of move %q is stale or already applied", result.Move)
	}
	e.applied = true

	switch result.Outcome {
	case combat.OutcomeEnteredDungeon:
		e.state = StateInRoom
		e.location = result.Destination
	case combat.OutcomeEnteredRoom, combat.OutcomePlayerRanHurt, combat.OutcomePlayerRanUnhurt:
		e.location = result.Destination
	case combat.OutcomePlayerWon:
		if room := e.CurrentRoom(); room != nil && room.Monster != nil && !room.Monster.IsAlive() {
			room.MarkMonsterSlain()
		}
	case combat.OutcomeEscaped:
		e.state = StateEscaped
	case combat.OutcomeMonsterWon, combat.OutcomeRewardClaimed, combat.OutcomePlayerDied:
	default:
		return e.unreachable("cannot apply outcome %s", result.Outcome)
	}

	if !e.player.IsAlive() {
		e.state = StateDead
	}

	e.logger.DebugContext(ctx, "move applied",
		"move", string(result.Move),
		"outcome", result.Outcome.String(),
		"location", e.location,
		"state", e.state.String(),
		"health", e.player.Health,
		"agility", e.player.Agility,
	)
	return nil
}

// Turn runs one full player turn: validate the raw input against the legal
// moves, execute it and apply the outcome. The quit keyword short-circuits
// and is accepted even once the game is over. Invalid input comes back as an
// InvalidArgument error with the session untouched.
func (e *Engine) Turn(ctx context.Context, raw string) (Result, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.turn")
	defer span.End()

	span.SetAttributes(
		attribute.String("state", e.state.String()),
		attribute.Int("location", e.location),
	)

	// Quit is honored in every state, including after the game is over.
	if Move(raw) == MoveQuit {
		span.SetAttributes(attribute.Bool("quit", true))
		return Result{
			Move:        MoveQuit,
			Quit:        true,
			From:        e.location,
			Destination: e.location,
			Snapshot:    e.Snapshot(),
		}, nil
	}

	legal, err := e.LegalMoves()
	if err != nil {
		span.RecordError(err)
		return Result{}, err
	}

	move, err := Validate(raw, legal)
	if err != nil {
		span.SetAttributes(attribute.Bool("rejected", true))
		return Result{}, err
	}

	result, err := e.Execute(ctx, move)
	if err != nil {
		span.RecordError(err)
		return Result{}, err
	}
	if err := e.ApplyOutcome(ctx, result); err != nil {
		span.RecordError(err)
		return Result{}, err
	}

	span.SetAttributes(
		attribute.String("move", string(move)),
		attribute.String("outcome", result.Outcome.String()),
		attribute.Int("destination", result.Destination),
		attribute.Int("player.health", e.player.Health),
	)
	result.Snapshot = e.Snapshot()
	return result, nil
}
