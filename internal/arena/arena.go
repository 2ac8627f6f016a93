// Package arena provides grids of addressable cells with neighbor lookup
// and random sampling.
package arena

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	// ErrEmptyArena is the panic value of RandomCell on an arena with no cells.
	ErrEmptyArena = errors.New("arena: no cells to sample")
	// ErrArenaTooLarge is the panic value of NewRectangleArena when the
	// cell count does not fit in an int.
	ErrArenaTooLarge = errors.New("arena: too many cells")
)

// Cell is a position addressable within an Arena.
type Cell interface {
	comparable
	fmt.Stringer
}

// Direction is a move accepted by an Arena.
type Direction interface {
	comparable
	fmt.Stringer
}

// Arena is a fixed collection of cells that can be sampled and walked.
// Each topology supplies its own cell and direction types.
type Arena[C Cell, D Direction] interface {
	// RandomCell returns a cell drawn uniformly from the arena.
	// It panics with ErrEmptyArena if the arena has no cells.
	RandomCell() C

	// Neighbor returns the cell one step from cell in direction d.
	// The bool is false when that step leaves the arena.
	Neighbor(cell C, d D) (C, bool)

	// Directions returns the direction set the arena accepts.
	Directions() []D
}

// RandSource is the randomness an arena samples from. *rand.Rand satisfies it.
type RandSource interface {
	Intn(n int) int
}

// DefaultSource returns a source backed by the math/rand top-level
// functions. It is safe for concurrent use and needs no seeding.
func DefaultSource() RandSource {
	return globalSource{}
}

// globalSource forwards to rand.Intn, which locks internally.
type globalSource struct{}

func (globalSource) Intn(n int) int {
	return rand.Intn(n)
}
