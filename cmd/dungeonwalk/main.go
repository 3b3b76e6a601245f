// Package main is the entry point for dungeonwalk.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/samdwyer/dungeonwalk/internal/game"
	"github.com/samdwyer/dungeonwalk/internal/gamedata"
	"github.com/samdwyer/dungeonwalk/internal/telemetry"
	"github.com/samdwyer/dungeonwalk/internal/ui"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	setupOTelEnv()

	ctx := context.Background()

	presets, err := gamedata.LoadPresetRegistry()
	if err != nil {
		log.Fatalf("Failed to load presets: %v", err)
	}
	log.Printf("Loaded %d presets", presets.Count())

	cfg, err := game.LoadConfig(os.LookupEnv, presets)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	plain := cfg.Plain || !term.IsTerminal(int(os.Stdout.Fd()))

	shutdown, err := telemetry.Setup(ctx, telemetry.RunAttributes(cfg.Preset, plain)...)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	if plain {
		if err := printPlain(ctx, cfg); err != nil {
			log.Fatalf("Generation failed: %v", err)
		}
		return
	}

	v, err := game.New(cfg, presets)
	if err != nil {
		log.Fatalf("Failed to initialize viewer: %v", err)
	}

	if err := v.Run(ctx); err != nil {
		log.Fatalf("Viewer error: %v", err)
	}
}

// printPlain carves one map and writes it to stdout as text.
func printPlain(ctx context.Context, cfg game.Config) error {
	gen, err := game.Build(ctx, cfg)
	if err != nil {
		return err
	}
	log.Printf("preset=%s seed=%d run=%s floor=%d", cfg.Preset, gen.Seed, gen.ID, gen.Grid.FloorCount())
	return ui.WriteText(os.Stdout, gen.Grid, gen.Grid.Width(), gen.Grid.Height())
}

// setupOTelEnv points the OTLP exporter at Honeycomb using our own variables.
func setupOTelEnv() {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	// The .env file may carry an unexpanded variable reference, so the
	// header is built here.
	apiKey := os.Getenv("HONEYCOMB_DUNGEONWALK_API_KEY")
	dataset := os.Getenv("HONEYCOMB_DUNGEONWALK_DATASET")
	if dataset == "" {
		dataset = "dungeonwalk"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
