package game

import (
	"context"
	"log/slog"

	"github.com/samdwyer/dungeonrun/internal/dice"
	"github.com/samdwyer/dungeonrun/internal/entity"
	"github.com/samdwyer/dungeonrun/internal/errors"
	"github.com/samdwyer/dungeonrun/internal/gamedata"
	"github.com/samdwyer/dungeonrun/internal/world"
)

// Deps are the parts an Engine is assembled from.
type Deps struct {
	Graph  *world.Graph
	Player *entity.Player
	Roller dice.Roller
	Logger *slog.Logger // Optional, defaults to slog.Default()
}

// Validate reports every missing dependency at once.
func (d *Deps) Validate() error {
	if d == nil {
		return errors.InvalidArgument("deps cannot be nil")
	}

	vErr := errors.NewValidationError()
	if d.Graph == nil {
		vErr.AddFieldError("graph", "is required")
	}
	if d.Player == nil {
		vErr.AddFieldError("player", "is required")
	}
	if d.Roller == nil {
		vErr.AddFieldError("roller", "is required")
	}
	return vErr.ToError()
}

// Config describes a new session.
type Config struct {
	Seed       int64              // 0 picks a random seed
	PlayerName string             // Empty uses entity.DefaultPlayerName
	Topology   *gamedata.Topology // nil uses the embedded dungeon
	Logger     *slog.Logger
}

// Session is a freshly built engine along with the seed it was rolled from.
type Session struct {
	*Engine
	Seed int64
}

// New rolls a new session: the player first, then the dungeon, both from
// one seeded generator so the same seed replays the same game.
func New(ctx context.Context, cfg Config) (*Session, error) {
	seed := cfg.Seed
	if seed == 0 {
		s, err := dice.NewSeed()
		if err != nil {
			return nil, errors.Wrap(err, "pick seed")
		}
		seed = s
	}

	topo := cfg.Topology
	if topo == nil {
		t, err := gamedata.LoadTopology()
		if err != nil {
			return nil, errors.Wrap(err, "load dungeon")
		}
		topo = t
	}

	name := cfg.PlayerName
	if name == "" {
		name = entity.DefaultPlayerName
	}

	rng := dice.NewRNG(seed)
	player := entity.NewPlayer(name, rng)

	graph, err := world.NewGraph(ctx, topo, rng)
	if err != nil {
		return nil, err
	}

	engine, err := NewEngine(&Deps{
		Graph:  graph,
		Player: player,
		Roller: rng,
		Logger: cfg.Logger,
	})
	if err != nil {
		return nil, err
	}

	engine.logger.InfoContext(ctx, "session started",
		"seed", seed,
		"player", player.Name,
		"health", player.Health,
		"agility", player.Agility,
		"rooms", len(graph.Rooms()),
	)
	return &Session{Engine: engine, Seed: seed}, nil
}
