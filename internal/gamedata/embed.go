// Package gamedata holds the dungeon layouts the game ships with and loads
// layouts from disk.
package gamedata

import "embed"

// files holds the layouts compiled into the binary.
//
//go:embed *.json
var files embed.FS
