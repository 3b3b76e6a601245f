package ui

import (
	"github.com/gdamore/tcell/v2"
)

// ExplorerRune marks the explorer's position.
const ExplorerRune = '@'

// View describes everything drawn on top of the grid.
type View struct {
	ExplorerX, ExplorerY int
	ShowExplorer         bool
	WallColor            tcell.Color
	FloorColor           tcell.Color
	Status               string
}

// Renderer handles drawing grids to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render fills the screen with the grid, leaving the last row for the status
// line. Cells beyond the grid are blank.
func (r *Renderer) Render(src TileSource, view View) {
	r.screen.Clear()

	width, height := r.screen.Size()
	mapRows := max(height-1, 0)

	wallStyle := tcell.StyleDefault.Foreground(orDefault(view.WallColor, tcell.ColorDarkGray))
	floorStyle := tcell.StyleDefault.Foreground(orDefault(view.FloorColor, tcell.ColorGray))

	for y := 0; y < mapRows; y++ {
		for x := 0; x < width; x++ {
			tile, ok := src.Get(x, y)
			style := tcell.StyleDefault
			if ok && tile.IsPassable() {
				style = floorStyle
			} else if ok {
				style = wallStyle
			}
			r.screen.SetContent(x, y, cellRune(tile, ok), style)
		}
	}

	if view.ShowExplorer && view.ExplorerY < mapRows {
		explorerStyle := tcell.StyleDefault.
			Foreground(tcell.ColorYellow).
			Bold(true)
		r.screen.SetContent(view.ExplorerX, view.ExplorerY, ExplorerRune, explorerStyle)
	}

	if height > 0 {
		r.RenderMessage(view.Status, height-1)
	}

	r.screen.Show()
}

// RenderMessage displays a message on the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	x := 0
	for _, ch := range msg {
		r.screen.SetContent(x, y, ch, style)
		x++
	}
}

func orDefault(c, fallback tcell.Color) tcell.Color {
	if c == tcell.ColorDefault {
		return fallback
	}
	return c
}
