// Package t2048 drives a single 2048 session on top of the board engine:
// it maps input frames to moves, keeps session counters and draws the
// grid into a core.Screen.
package t2048

import (
	"github.com/vovakirdan/term2048/internal/board"
	"github.com/vovakirdan/term2048/internal/core"
)

// Game implements registry.Game for one board variant.
type Game struct {
	variant Variant
	grid    *board.Grid

	// Screen dimensions
	screenW int
	screenH int

	moves   int
	spawns  int
	lastDir board.Direction
	hasDir  bool

	paused   bool
	tooSmall bool
}

// New creates a game for the given variant. Call Reset before use.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Variant returns the board variant this game plays.
func (g *Game) Variant() Variant {
	return g.variant
}

// Reset builds a fresh grid with two starting tiles.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	var opts []board.Option
	if cfg.Spawn4Prob > 0 {
		opts = append(opts, board.WithSpawn4Prob(cfg.Spawn4Prob))
	}

	g.grid = board.New(g.variant.Size, board.NewSource(cfg.Seed), opts...)
	g.moves = 0
	g.spawns = g.grid.Count()
	g.hasDir = false
	g.paused = false

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen dimensions. The board is left untouched.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// checkScreenSize checks if the screen can hold the HUD and the board.
func (g *Game) checkScreenSize() {
	minW, minH := MinScreenSize(g.variant.Size)
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step applies at most one move from the input frame.
// When several directions are set, the first of up, down, left, right wins.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall || g.grid == nil {
		return core.StepResult{State: g.State()}
	}

	dir, ok := frameDirection(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	moved := g.grid.Move(dir)
	if moved {
		g.moves++
		g.lastDir = dir
		g.hasDir = true
		if _, spawned := g.grid.LastSpawn(); spawned {
			g.spawns++
		}
	}

	return core.StepResult{State: g.State(), Moved: moved}
}

func frameDirection(in core.InputFrame) (board.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return board.Up, true
	case in.Has(core.ActionDown):
		return board.Down, true
	case in.Has(core.ActionLeft):
		return board.Left, true
	case in.Has(core.ActionRight):
		return board.Right, true
	}
	return 0, false
}

// Grid exposes the underlying board for read access.
func (g *Game) Grid() *board.Grid {
	return g.grid
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Moves:  g.moves,
		Spawns: g.spawns,
		Size:   g.variant.Size,
		Paused: g.paused || g.tooSmall,
	}
	if g.grid != nil {
		st.MaxTile = g.grid.MaxTile()
	}
	return st
}
