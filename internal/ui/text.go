package ui

import (
	"bufio"
	"io"

	"github.com/samdwyer/dungeonwalk/internal/world"
)

// TileSource is the read side of a grid.
type TileSource interface {
	Get(x, y int) (world.Tile, bool)
}

// absentRune is drawn for positions outside the grid.
const absentRune = ' '

// cellRune maps a lookup result to its display character.
func cellRune(t world.Tile, ok bool) rune {
	if !ok {
		return absentRune
	}
	return t.Rune()
}

// WriteText writes a width x height window of src as plain text, one line
// per row: '#' for walls, '.' for floors and a space where src has no tile.
func WriteText(w io.Writer, src TileSource, width, height int) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if _, err := bw.WriteRune(cellRune(src.Get(x, y))); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
