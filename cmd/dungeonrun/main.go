// Package main is the entry point for Dungeon Run.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flags struct {
	seed     int64
	name     string
	plain    bool
	topology string
}

var rootCmd = &cobra.Command{
	Use:   "dungeonrun [help]",
	Short: "A turn-based dungeon crawl in the terminal",
	Long: `Dungeon Run drops you into a small dungeon of rooms holding random monsters
and treasure. Fight or run, grab what you can and find the exit before you die.

Settings are read from the environment (and an optional .env file); flags win.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Int64Var(&flags.seed, "seed", 0, "random seed, 0 picks one (DUNGEON_SEED)")
	rootCmd.Flags().StringVar(&flags.name, "name", "", "player name (DUNGEON_PLAYER_NAME)")
	rootCmd.Flags().BoolVar(&flags.plain, "plain", false, "line-oriented play instead of full screen (DUNGEON_PLAIN)")
	rootCmd.Flags().StringVar(&flags.topology, "topology", "", "path to a dungeon topology JSON file (DUNGEON_TOPOLOGY)")
}
