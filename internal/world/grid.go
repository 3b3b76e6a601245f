package world

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/dungeonwalk/internal/telemetry"
)

// MinDimension is the smallest width or height Generate accepts. Walk start
// positions are drawn from the interior, which is empty below this size.
const MinDimension = 3

// MaxDimension is the largest width or height a grid holds. NewGrid clamps
// larger values so width*height always fits the tile slice.
const MaxDimension = 2048

// ErrInvalidDimensions is returned by Generate when the grid is too small to
// hold an interior start position.
var ErrInvalidDimensions = errors.New("invalid grid dimensions")

// Rand is the source of randomness used for carving. *rand.Rand satisfies it.
type Rand interface {
	// Intn returns a uniform value in [0, n). n is always positive.
	Intn(n int) int
}

// Direction order drawn by walk.
const (
	dirLeft = iota
	dirRight
	dirUp
	dirDown
	numDirections
)

// Grid is a dense row-major tile store. The zero value is an empty grid.
type Grid struct {
	width  int
	height int
	tiles  []Tile // indexed y*width + x
}

// NewGrid creates a grid filled with walls. Dimensions are clamped to
// [0, MaxDimension].
func NewGrid(width, height int) *Grid {
	width = min(max(width, 0), MaxDimension)
	height = min(max(height, 0), MaxDimension)

	tiles := make([]Tile, width*height)
	for i := range tiles {
		tiles[i] = TileWall
	}

	return &Grid{
		width:  width,
		height: height,
		tiles:  tiles,
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Get returns the tile at (x, y). The boolean is false when the position is
// outside the grid.
func (g *Grid) Get(x, y int) (Tile, bool) {
	if !g.inBounds(x, y) {
		return 0, false
	}
	return g.tiles[g.index(x, y)], true
}

// IsPassable returns true if the given position is an in-bounds floor tile.
func (g *Grid) IsPassable(x, y int) bool {
	t, ok := g.Get(x, y)
	return ok && t.IsPassable()
}

// FloorCount returns the number of floor tiles.
func (g *Grid) FloorCount() int {
	n := 0
	for _, t := range g.tiles {
		if t == TileFloor {
			n++
		}
	}
	return n
}

// Generate carves numWalks independent random walks of stepsPerWalk steps
// each. Every walk starts at a uniformly random interior position, so walks
// may overlap or leave disconnected floor regions.
//
// Grids narrower or shorter than MinDimension are rejected with
// ErrInvalidDimensions and left untouched.
func (g *Grid) Generate(ctx context.Context, rng Rand, numWalks, stepsPerWalk int) error {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "grid.generate")
	defer span.End()

	span.SetAttributes(
		attribute.Int("grid.width", g.width),
		attribute.Int("grid.height", g.height),
		attribute.Int("grid.walks", numWalks),
		attribute.Int("grid.steps_per_walk", stepsPerWalk),
	)

	if g.width < MinDimension || g.height < MinDimension {
		err := fmt.Errorf("%w: %dx%d, need at least %dx%d",
			ErrInvalidDimensions, g.width, g.height, MinDimension, MinDimension)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	startTime := time.Now()

	for i := 0; i < numWalks; i++ {
		x := 1 + rng.Intn(g.width-2)
		y := 1 + rng.Intn(g.height-2)
		g.walk(rng, x, y, stepsPerWalk)
	}

	span.SetAttributes(
		attribute.Int("grid.floor_count", g.FloorCount()),
		attribute.Int64("grid.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return nil
}

// walk carves a single random walk from (x, y).
//
// A direction that would step off the grid is skipped, not redrawn: the
// iteration is consumed and nothing is marked. Near the edges this skews the
// effective distribution toward the directions that remain valid.
func (g *Grid) walk(rng Rand, x, y, steps int) {
	g.set(x, y, TileFloor)

	for i := 0; i < steps; i++ {
		switch rng.Intn(numDirections) {
		case dirLeft:
			if x <= 0 {
				continue
			}
			x--
		case dirRight:
			if x >= g.width-1 {
				continue
			}
			x++
		case dirUp:
			if y <= 0 {
				continue
			}
			y--
		case dirDown:
			if y >= g.height-1 {
				continue
			}
			y++
		}
		g.set(x, y, TileFloor)
	}
}

// set writes t at (x, y). Out of bounds writes are ignored.
func (g *Grid) set(x, y int, t Tile) {
	if g.inBounds(x, y) {
		g.tiles[g.index(x, y)] = t
	}
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}
