package game

import (
	"fmt"
	"strconv"

	"github.com/samdwyer/dungeonwalk/internal/gamedata"
	"github.com/samdwyer/dungeonwalk/internal/world"
)

// Environment variables read by LoadConfig.
const (
	EnvPreset = "DUNGEONWALK_PRESET"
	EnvSeed   = "DUNGEONWALK_SEED"
	EnvWidth  = "DUNGEONWALK_WIDTH"
	EnvHeight = "DUNGEONWALK_HEIGHT"
	EnvWalks  = "DUNGEONWALK_WALKS"
	EnvSteps  = "DUNGEONWALK_STEPS"
	EnvPlain  = "DUNGEONWALK_PLAIN"
)

// Config holds generation options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Preset is the ID of the preset the dimensions and counts came from.
	Preset string

	Width  int
	Height int
	Walks  int
	Steps  int

	// Plain prints the grid as text instead of opening the viewer.
	Plain bool
}

// DefaultConfig returns the classic 50x50 map carved by 10 walks of 200 steps.
func DefaultConfig() Config {
	return Config{
		Preset: gamedata.DefaultPresetID,
		Width:  50,
		Height: 50,
		Walks:  10,
		Steps:  200,
	}
}

// WithPreset returns a copy of c using the preset's dimensions and counts.
func (c Config) WithPreset(p *gamedata.PresetDef) Config {
	c.Preset = p.ID
	c.Width = p.Width
	c.Height = p.Height
	c.Walks = p.Walks
	c.Steps = p.Steps
	return c
}

// LoadConfig builds a Config from environment lookups. The named preset (or
// the default one) is applied first and individual variables override it.
// Pass os.LookupEnv in production.
func LoadConfig(lookup func(string) (string, bool), presets *gamedata.PresetRegistry) (Config, error) {
	cfg := DefaultConfig()

	presetID := gamedata.DefaultPresetID
	if v, ok := lookup(EnvPreset); ok && v != "" {
		presetID = v
	}
	p, err := presets.Lookup(presetID)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", EnvPreset, err)
	}
	cfg = cfg.WithPreset(p)

	ints := []struct {
		key   string
		dst   *int
		limit int // 0 means unbounded
	}{
		{EnvWidth, &cfg.Width, world.MaxDimension},
		{EnvHeight, &cfg.Height, world.MaxDimension},
		{EnvWalks, &cfg.Walks, 0},
		{EnvSteps, &cfg.Steps, 0},
	}
	for _, f := range ints {
		v, ok := lookup(f.key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", f.key, err)
		}
		if n < 0 {
			return Config{}, fmt.Errorf("%s: must not be negative, got %d", f.key, n)
		}
		if f.limit > 0 && n > f.limit {
			return Config{}, fmt.Errorf("%s: must not exceed %d, got %d", f.key, f.limit, n)
		}
		*f.dst = n
	}

	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}

	if v, ok := lookup(EnvPlain); ok && v != "" {
		plain, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvPlain, err)
		}
		cfg.Plain = plain
	}

	return cfg, nil
}
