// Package world provides the tile grid and the random-walk carver that fills it.
package world

// Tile represents a single map tile.
type Tile rune

const (
	// TileWall represents solid rock. Every grid starts out as walls.
	TileWall Tile = '#'
	// TileFloor represents a carved, passable tile.
	TileFloor Tile = '.'
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t == TileFloor
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}

// String returns a human-readable tile name.
func (t Tile) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	default:
		return "unknown"
	}
}
