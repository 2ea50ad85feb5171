// Package fill implements flood fill over a grid.Grid in four variants that share
// one contract: Recursive, Stack, Queue and Scanline.
//
// Every variant refuses the same requests, reported through the sentinel errors
// below. A refused request never touches the grid.
package fill

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gridfill/internal/grid"
)

var (
	// ErrOutOfBounds is returned when the seed lies outside the grid.
	ErrOutOfBounds = errors.New("fill: seed out of bounds")
	// ErrNoMatch is returned when the seed color differs from the target color.
	ErrNoMatch = errors.New("fill: seed does not match target color")
	// ErrTrivialRequest is returned when target and replacement are equal.
	ErrTrivialRequest = errors.New("fill: target equals replacement color")
)

// cancelCheckInterval is the number of traversal steps between context checks.
const cancelCheckInterval = 4096

// Algorithm selects a fill variant.
type Algorithm int

const (
	Recursive Algorithm = iota
	Stack
	Queue
	Scanline
	algorithmCount
)

var algorithmNames = [algorithmCount]string{
	Recursive: "recursive",
	Stack:     "stack",
	Queue:     "queue",
	Scanline:  "scanline",
}

// Algorithms lists every variant in key order.
var Algorithms = []Algorithm{Recursive, Stack, Queue, Scanline}

func (a Algorithm) String() string {
	if a < 0 || a >= algorithmCount {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// Next returns the following variant, wrapping around.
func (a Algorithm) Next() Algorithm {
	return (a + 1) % algorithmCount
}

// Valid reports whether a names a known variant.
func (a Algorithm) Valid() bool { return a >= 0 && a < algorithmCount }

// ParseAlgorithm maps a case-insensitive name to a variant. "bfs" and "span" are
// accepted as aliases of queue and scanline.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "recursive":
		return Recursive, nil
	case "stack":
		return Stack, nil
	case "queue", "bfs":
		return Queue, nil
	case "scanline", "span":
		return Scanline, nil
	}
	return 0, fmt.Errorf("unknown fill algorithm %q", name)
}

// Stats describes a completed fill.
type Stats struct {
	Algorithm Algorithm
	Painted   int // cells written
	Pushes    int // points added to the work container, seed included
	MaxLen    int // peak length of the work container
	Elapsed   time.Duration
}

func (s *Stats) push(n int) {
	s.Pushes++
	if n > s.MaxLen {
		s.MaxLen = n
	}
}

// Fill replaces the region of target color containing (x, y) with newColor.
func Fill(g *grid.Grid, alg Algorithm, x, y int, target, newColor grid.Color) (Stats, error) {
	return FillContext(context.Background(), g, alg, x, y, target, newColor)
}

// FillContext is Fill with cooperative cancellation. The context is polled every
// few thousand steps; on cancellation the grid is left partially filled and the
// context error is returned.
func FillContext(ctx context.Context, g *grid.Grid, alg Algorithm, x, y int, target, newColor grid.Color) (Stats, error) {
	stats := Stats{Algorithm: alg}
	if err := check(g, x, y, target, newColor); err != nil {
		return stats, err
	}

	t := &traversal{ctx: ctx, g: g, target: target, color: newColor, stats: &stats}
	start := time.Now()
	var err error
	switch alg {
	case Recursive:
		err = t.recursive(x, y)
	case Stack:
		err = t.stack(x, y)
	case Queue:
		err = t.queue(x, y)
	case Scanline:
		err = t.scanline(x, y)
	default:
		err = fmt.Errorf("fill: unknown algorithm %d", int(alg))
	}
	stats.Elapsed = time.Since(start)
	return stats, err
}

func check(g *grid.Grid, x, y int, target, newColor grid.Color) error {
	if !g.InBounds(x, y) {
		return ErrOutOfBounds
	}
	if g.Get(x, y) != target {
		return ErrNoMatch
	}
	if target == newColor {
		return ErrTrivialRequest
	}
	return nil
}

type point struct{ x, y int }

// traversal carries the state shared by one fill call.
type traversal struct {
	ctx    context.Context
	g      *grid.Grid
	target grid.Color
	color  grid.Color
	stats  *Stats
	steps  int

	onPaint func(x, y int)
}

// tick counts a step and polls the context periodically.
func (t *traversal) tick() error {
	t.steps++
	if t.steps%cancelCheckInterval == 0 {
		return t.ctx.Err()
	}
	return nil
}

func (t *traversal) paint(x, y int) {
	t.g.Paint(x, y, t.color)
	t.stats.Painted++
	if t.onPaint != nil {
		t.onPaint(x, y)
	}
}

func (t *traversal) matches(x, y int) bool {
	return t.g.InBounds(x, y) && t.g.Get(x, y) == t.target
}
