package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungeonwalk/internal/world"
)

func TestBuildReproducible(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 12345

	g1, err := Build(context.Background(), cfg)
	require.NoError(t, err)
	g2, err := Build(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, int64(12345), g1.Seed)
	assert.NotEqual(t, g1.ID, g2.ID, "each run gets its own id")
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			t1, _ := g1.Grid.Get(x, y)
			t2, _ := g2.Grid.Get(x, y)
			require.Equal(t, t1, t2, "tile (%d,%d)", x, y)
		}
	}
	assert.Positive(t, g1.Grid.FloorCount())
}

func TestBuildPicksSeed(t *testing.T) {
	cfg := DefaultConfig()
	gen, err := Build(context.Background(), cfg)
	require.NoError(t, err)
	assert.NotZero(t, gen.Seed)
	assert.Equal(t, gen.Seed, gen.Config.Seed)
	assert.Len(t, gen.ShortID(), 8)
}

func TestBuildInvalidDimensions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 2
	cfg.Seed = 1

	_, err := Build(context.Background(), cfg)
	require.ErrorIs(t, err, world.ErrInvalidDimensions)
}
