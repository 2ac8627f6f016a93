// Package walk moves across any arena.Arena using only its RandomCell and
// Neighbor queries.
package walk

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gridarena/internal/arena"
	"github.com/samdwyer/gridarena/internal/telemetry"
)

// Walk is the sequence of cells visited by one random walk.
// Path[0] is the start cell.
type Walk[C arena.Cell] struct {
	ID   uuid.UUID
	Path []C
}

// Steps returns the number of moves taken.
func (w Walk[C]) Steps() int {
	if len(w.Path) == 0 {
		return 0
	}
	return len(w.Path) - 1
}

// End returns the last cell visited. It panics on the zero Walk, which
// has no path; every Walk returned by Random has at least its start cell.
func (w Walk[C]) End() C {
	return w.Path[len(w.Path)-1]
}

// Furthest steps from start in direction d until there is no neighbor or
// limit steps have been taken, and returns the cell it stopped on.
func Furthest[C arena.Cell, D arena.Direction](a arena.Arena[C, D], start C, d D, limit int) C {
	cell := start
	for i := 0; i < limit; i++ {
		next, ok := a.Neighbor(cell, d)
		if !ok {
			break
		}
		cell = next
	}
	return cell
}

// Neighbors returns every present neighbor of cell keyed by direction.
func Neighbors[C arena.Cell, D arena.Direction](a arena.Arena[C, D], cell C) map[D]C {
	out := make(map[D]C)
	for _, d := range a.Directions() {
		if n, ok := a.Neighbor(cell, d); ok {
			out[d] = n
		}
	}
	return out
}

// Degree returns the number of present neighbors of cell.
func Degree[C arena.Cell, D arena.Direction](a arena.Arena[C, D], cell C) int {
	n := 0
	for _, d := range a.Directions() {
		if _, ok := a.Neighbor(cell, d); ok {
			n++
		}
	}
	return n
}

// Random walks up to steps moves from a random start cell, choosing each
// move uniformly among the directions that have a neighbor. It stops early
// on a cell with no neighbors. A nil rng selects arena.DefaultSource.
//
// Random panics with arena.ErrEmptyArena if a has no cells.
func Random[C arena.Cell, D arena.Direction](ctx context.Context, a arena.Arena[C, D], rng arena.RandSource, steps int) Walk[C] {
	tracer := telemetry.Tracer("walk")
	_, span := tracer.Start(ctx, "walk.random")
	defer span.End()

	if rng == nil {
		rng = arena.DefaultSource()
	}

	startTime := time.Now()
	w := Walk[C]{
		ID:   uuid.New(),
		Path: []C{a.RandomCell()},
	}

	moves := make([]C, 0, len(a.Directions()))
	for i := 0; i < steps; i++ {
		cell := w.End()
		moves = moves[:0]
		for _, d := range a.Directions() {
			if n, ok := a.Neighbor(cell, d); ok {
				moves = append(moves, n)
			}
		}
		if len(moves) == 0 {
			break
		}
		w.Path = append(w.Path, moves[rng.Intn(len(moves))])
	}

	span.SetAttributes(
		attribute.String("walk.id", w.ID.String()),
		attribute.Int("walk.steps_requested", steps),
		attribute.Int("walk.steps_taken", w.Steps()),
		attribute.String("walk.start", w.Path[0].String()),
		attribute.String("walk.end", w.End().String()),
		attribute.Int64("walk.duration_ms", time.Since(startTime).Milliseconds()),
	)

	return w
}
