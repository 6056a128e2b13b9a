package model

import (
	"crypto/md5"
	"fmt"
	"math/rand"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

// ErrPatternOutOfBounds is returned by SetPattern when the supplied pattern
// exceeds the grid's dimensions in either axis.
var ErrPatternOutOfBounds = errors.New("pattern exceeds grid dimensions")

// LifeGrid represents the game board. Dimensions are fixed at construction.
// It holds two buffers: the current generation and a scratch buffer that
// Advance computes into before publishing, so no reader ever observes a
// partially computed generation.
type LifeGrid struct {
	width   int
	height  int
	current [][]bool
	scratch [][]bool
}

// New creates a grid of the specified dimensions with all cells dead.
func New(width, height int) *LifeGrid {
	return &LifeGrid{
		width:   width,
		height:  height,
		current: newCells(width, height),
		scratch: newCells(width, height),
	}
}

// Width returns the width of the grid
func (g *LifeGrid) Width() int {
	return g.width
}

// Height returns the height of the grid
func (g *LifeGrid) Height() int {
	return g.height
}

// Set sets a cell to alive (true) or dead (false)
func (g *LifeGrid) Set(x, y int, alive bool) {
	if x >= 0 && x < g.width && y >= 0 && y < g.height {
		g.current[y][x] = alive
	}
}

// Get returns the state of a cell
func (g *LifeGrid) Get(x, y int) bool {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return false
	}
	return g.current[y][x]
}

// Cells returns the current generation's backing storage. Mutating it
// directly bypasses the transition rule and is the caller's responsibility.
func (g *LifeGrid) Cells() [][]bool {
	return g.current
}

// CountNeighbors counts the living Moore neighbors of (x, y). The grid does
// not wrap: positions outside it are treated as dead.
func (g *LifeGrid) CountNeighbors(x, y int) int {
	count := 0

	// Clamp the 3x3 window to the grid once up front
	minX := max(0, x-1)
	maxX := min(g.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.height-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue // Skip the cell itself
			}
			if g.current[ny][nx] {
				count++
			}
		}
	}

	return count
}

// Advance computes the next generation from the current one and publishes it.
// Rows are processed in parallel bands, each worker writing a disjoint range
// of the scratch buffer; the current generation is only replaced once every
// band has finished, so the update is all-or-nothing for any observer.
func (g *LifeGrid) Advance() {
	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := 0; i < numWorkers; i++ {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			for y := startRow; y < endRow; y++ {
				for x := 0; x < g.width; x++ {
					g.scratch[y][x] = rules.Alive(g.CountNeighbors(x, y), g.current[y][x])
				}
			}
			return nil
		})
	}

	// Workers never fail; Wait is only a barrier here
	_ = eg.Wait()

	g.publish()
}

// SetPattern overwrites the current generation with the supplied pattern,
// placed at the origin. Cells outside the pattern's extent keep their prior
// state. The pattern must fit within the grid: if it has more rows than the
// grid's height, or any row wider than the grid's width, SetPattern returns
// an error wrapping ErrPatternOutOfBounds and the grid is left untouched.
func (g *LifeGrid) SetPattern(pattern [][]bool) error {
	if len(pattern) > g.height {
		return errors.Wrapf(ErrPatternOutOfBounds,
			"[SetPattern] pattern has %d rows, grid has %d", len(pattern), g.height)
	}
	for y, row := range pattern {
		if len(row) > g.width {
			return errors.Wrapf(ErrPatternOutOfBounds,
				"[SetPattern] pattern row %d has %d columns, grid has %d", y, len(row), g.width)
		}
	}

	for y, row := range pattern {
		copy(g.current[y], row)
	}
	return nil
}

// CountLivingCells returns the total number of living cells
func (g *LifeGrid) CountLivingCells() (count int) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.current[y][x] {
				count++
			}
		}
	}
	return
}

// Fingerprint returns an MD5 hash of the current grid state
func (g *LifeGrid) Fingerprint() string {
	h := md5.New()
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.current[y][x] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Randomize fills the grid with random living cells
func (g *LifeGrid) Randomize(density float64) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			g.Set(x, y, rand.Float64() < density)
		}
	}
}
