// Package main builds a rectangle arena and takes a random walk across it.
package main

import (
	"context"
	"log"
	"os"

	"github.com/samdwyer/gridarena/internal/arena"
	"github.com/samdwyer/gridarena/internal/config"
	"github.com/samdwyer/gridarena/internal/telemetry"
	"github.com/samdwyer/gridarena/internal/walk"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	for k, v := range cfg.OTelEnv() {
		os.Setenv(k, v)
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Walk will run without tracing")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	rng := cfg.Rand()
	a := arena.NewRectangleArena(cfg.Rows, cfg.Columns, rng)
	w := walk.Random[arena.SquareCell, arena.SquareDirection](ctx, a, rng, cfg.Steps)

	log.Printf("Walk %s on %d x %d arena: %d steps", w.ID, a.Rows(), a.Columns(), w.Steps())
	for i, cell := range w.Path {
		log.Printf("  %3d %v", i, cell)
	}
}
