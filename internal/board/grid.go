// Package board implements the 2048 grid movement engine: directional
// compaction and merging of tiles, and the random tile spawn policy.
// It has no terminal or rendering dependencies.
package board

import (
	"errors"
	"fmt"
)

const (
	// DefaultSize is the classic 4x4 board dimension.
	DefaultSize = 4
	// MinSize is the smallest playable board.
	MinSize = 2
	// DefaultSpawn4Prob is the chance that a spawned tile is a 4 instead of a 2.
	DefaultSpawn4Prob = 0.2
)

var (
	ErrBoardTooSmall = errors.New("board: grid smaller than minimum size")
	ErrNotSquare     = errors.New("board: grid is not square")
	ErrInvalidTile   = errors.New("board: tile is not a power of two")
)

// Cell addresses a single grid position.
type Cell struct {
	Row, Col int
}

// Grid is an NxN matrix of tile values. Zero means empty.
// It is owned by a single session and is not safe for concurrent use.
type Grid struct {
	size       int
	cells      [][]int
	changed    bool // set by the last move, consumed by Spawn
	lastSpawn  *Cell
	rng        Source
	spawn4Prob float64
}

// Option configures a Grid.
type Option func(*Grid)

// WithSpawn4Prob sets the probability (0.0-1.0) of spawning a 4.
// Out-of-range values are ignored.
func WithSpawn4Prob(p float64) Option {
	return func(g *Grid) {
		if p >= 0 && p <= 1 {
			g.spawn4Prob = p
		}
	}
}

// New creates a size x size grid and places two starting tiles.
// Sizes below MinSize fall back to DefaultSize.
func New(size int, rng Source, opts ...Option) *Grid {
	if size < MinSize {
		size = DefaultSize
	}
	g := newEmpty(size, rng, opts...)

	g.Spawn(true)
	g.Spawn(true)

	return g
}

// FromRows builds a grid from an explicit matrix without spawning tiles.
// The input is copied.
func FromRows(rows [][]int, rng Source, opts ...Option) (*Grid, error) {
	size := len(rows)
	if size < MinSize {
		return nil, fmt.Errorf("%w: got %d", ErrBoardTooSmall, size)
	}

	g := newEmpty(size, rng, opts...)
	for r, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNotSquare, r, len(row), size)
		}
		for c, v := range row {
			if v != 0 && !isTileValue(v) {
				return nil, fmt.Errorf("%w: %d at (%d, %d)", ErrInvalidTile, v, r, c)
			}
			g.cells[r][c] = v
		}
	}
	return g, nil
}

func newEmpty(size int, rng Source, opts ...Option) *Grid {
	g := &Grid{
		size:       size,
		cells:      make([][]int, size),
		rng:        rng,
		spawn4Prob: DefaultSpawn4Prob,
	}
	for r := range g.cells {
		g.cells[r] = make([]int, size)
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// isTileValue reports whether v is a power of two no smaller than 2.
func isTileValue(v int) bool {
	return v >= 2 && v&(v-1) == 0
}

// Move slides every row of the grid toward dir, merging equal neighbours.
// Vertical moves transpose the grid so the row primitive handles columns.
// If anything changed, exactly one new tile is spawned.
// Returns true if the move changed the grid.
func (g *Grid) Move(dir Direction) bool {
	if !dir.Valid() {
		return false
	}

	g.changed = g.shift(dir)
	changed := g.changed
	g.Spawn(false)

	return changed
}

// shift applies the row primitive for dir to the whole grid without spawning.
func (g *Grid) shift(dir Direction) bool {
	bias, transposed := dir.plan()

	rows := g.cells
	if transposed {
		rows = Transpose(g.cells)
	}

	changed := false
	for _, row := range rows {
		if MergeRow(row, bias) {
			changed = true
		}
	}

	if transposed {
		g.cells = Transpose(rows)
	}

	return changed
}

// Spawn places a 2 (or, with the configured probability, a 4) on a uniformly
// chosen empty cell. It only runs when force is set or the last move changed
// the grid, and it clears the changed flag either way.
// Returns the chosen cell, or false when nothing was spawned because the
// spawn was not due or the grid has no empty cell.
func (g *Grid) Spawn(force bool) (Cell, bool) {
	due := force || g.changed
	g.changed = false
	g.lastSpawn = nil
	if !due {
		return Cell{}, false
	}

	empty := g.EmptyCells()
	if len(empty) == 0 {
		return Cell{}, false
	}

	cell := empty[g.rng.Intn(len(empty))]

	value := 2
	if g.rng.Float64() < g.spawn4Prob {
		value = 4
	}

	g.cells[cell.Row][cell.Col] = value
	g.lastSpawn = &cell
	return cell, true
}

// LastSpawn returns the cell filled by the most recent Spawn call, if any.
func (g *Grid) LastSpawn() (Cell, bool) {
	if g.lastSpawn == nil {
		return Cell{}, false
	}
	return *g.lastSpawn, true
}

// Transpose returns a new matrix with rows and columns swapped.
// The source is not modified.
func Transpose(src [][]int) [][]int {
	result := make([][]int, len(src))
	for j := range result {
		result[j] = make([]int, len(src))
	}
	for i := range src {
		for j := range src[i] {
			result[j][i] = src[i][j]
		}
	}
	return result
}

// Size returns the grid dimension.
func (g *Grid) Size() int {
	return g.size
}

// At returns the tile at (row, col), or 0 when out of range.
func (g *Grid) At(row, col int) int {
	if row < 0 || row >= g.size || col < 0 || col >= g.size {
		return 0
	}
	return g.cells[row][col]
}

// Rows returns a copy of the tile matrix.
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.size)
	for r := range g.cells {
		rows[r] = append([]int(nil), g.cells[r]...)
	}
	return rows
}

// EmptyCells returns the coordinates of all empty cells in row-major order.
func (g *Grid) EmptyCells() []Cell {
	var cells []Cell
	for r := range g.size {
		for c := range g.size {
			if g.cells[r][c] == 0 {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// Count returns the number of non-empty cells.
func (g *Grid) Count() int {
	return g.size*g.size - len(g.EmptyCells())
}

// MaxTile returns the largest tile value on the grid.
func (g *Grid) MaxTile() int {
	maxVal := 0
	for r := range g.size {
		for c := range g.size {
			if g.cells[r][c] > maxVal {
				maxVal = g.cells[r][c]
			}
		}
	}
	return maxVal
}
