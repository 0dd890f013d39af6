// Package world provides the dungeon's rooms and the doors between them.
package world

// Kind is the resolved kind of a room. It never changes after the graph is built.
type Kind int

const (
	KindEntry Kind = iota
	KindExit
	KindMonster
	KindTreasure
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindEntry:
		return "entry"
	case KindExit:
		return "exit"
	case KindMonster:
		return "monster"
	case KindTreasure:
		return "treasure"
	default:
		return "unknown"
	}
}
