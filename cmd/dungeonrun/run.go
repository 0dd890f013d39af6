package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/samdwyer/dungeonrun/internal/config"
	"github.com/samdwyer/dungeonrun/internal/dice"
	"github.com/samdwyer/dungeonrun/internal/errors"
	"github.com/samdwyer/dungeonrun/internal/game"
	"github.com/samdwyer/dungeonrun/internal/gamedata"
	"github.com/samdwyer/dungeonrun/internal/telemetry"
	"github.com/samdwyer/dungeonrun/internal/ui"
)

func runGame(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	// "help" shows the help screen and exits; anything else is reported
	// and play goes on.
	if len(args) > 0 {
		if args[0] == "help" {
			printLines(out, ui.Help()...)
			return nil
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Invalid argument %s\n", args[0])
	}

	// Load .env file for local development; env vars may be set directly
	_ = godotenv.Load()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	plain := cfg.Plain || !term.IsTerminal(int(os.Stdout.Fd()))

	logger, closeLog, err := newLogger(cfg, plain)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The seed is fixed here so traces can name the dungeon they came from.
	seed := cfg.Seed
	if seed == 0 {
		if seed, err = dice.NewSeed(); err != nil {
			return errors.Wrap(err, "pick seed")
		}
	}
	topology := "embedded"
	if cfg.Topology != "" {
		topology = cfg.Topology
	}

	if !cfg.Telemetry {
		telemetry.Disable()
	} else {
		telemetry.ConfigureHoneycomb(cfg.HoneycombAPIKey, cfg.HoneycombDataset)
		shutdown, err := telemetry.Setup(ctx, telemetry.Session{
			Seed:     seed,
			Topology: topology,
			Player:   cfg.PlayerName,
		})
		if err != nil {
			logger.Warn("telemetry setup failed, running without it", "error", err)
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Warn("telemetry shutdown failed", "error", err)
				}
			}()
		}
	}

	gameCfg := game.Config{
		Seed:       seed,
		PlayerName: cfg.PlayerName,
		Logger:     logger,
	}
	if cfg.Topology != "" {
		topo, err := gamedata.LoadTopologyFile(cfg.Topology)
		if err != nil {
			return errors.Wrapf(err, "load topology %s", cfg.Topology)
		}
		gameCfg.Topology = topo
	}

	session, err := game.New(ctx, gameCfg)
	if err != nil {
		return errors.Wrap(err, "start session")
	}

	if plain {
		fmt.Fprintf(out, "Dungeon seed: %d\n\n", session.Seed)
		return ui.NewPlain(session.Engine, os.Stdin, out).Run(ctx)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return errors.Wrap(err, "open terminal")
	}
	if err := ui.NewTUI(screen, session.Engine).Run(ctx); err != nil {
		return err
	}

	// The screen is gone; leave the ending on the normal terminal.
	printLines(out, ui.Farewell(session.Snapshot())...)
	fmt.Fprintf(out, "Dungeon seed: %d\n", session.Seed)
	return nil
}

// loadConfig reads the environment, then applies any flags given.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}

	f := cmd.Flags()
	if f.Changed("seed") {
		cfg.Seed = flags.seed
	}
	if f.Changed("name") {
		cfg.PlayerName = flags.name
	}
	if f.Changed("plain") {
		cfg.Plain = flags.plain
	}
	if f.Changed("topology") {
		cfg.Topology = flags.topology
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger writes to the configured log file, else to stderr in plain
// mode. The full-screen front end owns the terminal, so without a file
// its logs are dropped.
func newLogger(cfg config.Config, plain bool) (*slog.Logger, func(), error) {
	opts := &slog.HandlerOptions{Level: cfg.Level()}

	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "open log file %s", cfg.LogFile)
		}
		return slog.New(slog.NewTextHandler(f, opts)), func() { _ = f.Close() }, nil
	case plain:
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), func() {}, nil
	default:
		return slog.New(slog.NewTextHandler(io.Discard, opts)), func() {}, nil
	}
}

func printLines(w io.Writer, lines ...string) {
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
}
