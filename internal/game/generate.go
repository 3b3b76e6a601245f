package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/samdwyer/dungeonwalk/internal/telemetry"
	"github.com/samdwyer/dungeonwalk/internal/world"
)

// Generation is one carved grid together with what produced it.
type Generation struct {
	ID     uuid.UUID
	Seed   int64
	Config Config
	Grid   *world.Grid
}

// ShortID returns the first block of the run ID for display.
func (g *Generation) ShortID() string {
	return g.ID.String()[:8]
}

// Build carves a new grid for cfg. A zero seed is replaced by a time based
// one; the seed actually used is recorded on the result.
func Build(ctx context.Context, cfg Config) (*Generation, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.build")
	defer span.End()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg.Seed = seed

	gen := &Generation{
		ID:     uuid.New(),
		Seed:   seed,
		Config: cfg,
		Grid:   world.NewGrid(cfg.Width, cfg.Height),
	}

	span.SetAttributes(telemetry.GenerationAttributes(gen.ID.String(), seed, cfg.Preset)...)

	rng := rand.New(rand.NewSource(seed))
	if err := gen.Grid.Generate(ctx, rng, cfg.Walks, cfg.Steps); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("generation %s: %w", gen.ShortID(), err)
	}

	return gen, nil
}
