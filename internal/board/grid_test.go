package board

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// scriptedSource replays fixed draws. Exhausted scripts return index 0
// and a float that always yields a 2.
type scriptedSource struct {
	ints   []int
	floats []float64
}

func (s *scriptedSource) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.99
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func mustGrid(t *testing.T, rows [][]int) *Grid {
	t.Helper()
	g, err := FromRows(rows, &scriptedSource{})
	if err != nil {
		t.Fatalf("FromRows() failed: %v", err)
	}
	return g
}

func TestShiftDirections(t *testing.T) {
	start := [][]int{
		{2, 4, 2, 0},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 2},
	}

	tests := []struct {
		dir      Direction
		expected [][]int
	}{
		{
			dir: Left,
			expected: [][]int{
				{2, 4, 2, 0},
				{4, 0, 0, 0},
				{4, 2, 0, 0},
				{4, 0, 0, 0},
			},
		},
		{
			dir: Right,
			expected: [][]int{
				{0, 2, 4, 2},
				{0, 0, 0, 4},
				{0, 0, 4, 2},
				{0, 0, 0, 4},
			},
		},
		{
			dir: Up,
			expected: [][]int{
				{4, 8, 4, 2},
				{0, 0, 4, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
		},
		{
			dir: Down,
			expected: [][]int{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 4, 0},
				{4, 8, 4, 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			g := mustGrid(t, start)
			if !g.shift(tt.dir) {
				t.Errorf("shift(%s) should report a change", tt.dir)
			}
			if diff := cmp.Diff(tt.expected, g.Rows()); diff != "" {
				t.Errorf("shift(%s) mismatch (-want +got):\n%s", tt.dir, diff)
			}
		})
	}
}

func TestMoveSpawnsOnChange(t *testing.T) {
	g := mustGrid(t, [][]int{
		{0, 0, 0, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 2},
	})
	// Pick the first empty cell and force a 4
	g.rng = &scriptedSource{ints: []int{0}, floats: []float64{0.1}}

	if !g.Move(Left) {
		t.Fatal("Move(Left) should change the grid")
	}

	expected := [][]int{
		{2, 4, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{2, 0, 0, 0},
	}
	if diff := cmp.Diff(expected, g.Rows()); diff != "" {
		t.Errorf("Move(Left) mismatch (-want +got):\n%s", diff)
	}
	if g.changed {
		t.Error("changed flag should be cleared after the spawn")
	}
}

func TestMoveNoChangeNoSpawn(t *testing.T) {
	rows := [][]int{
		{4, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	g := mustGrid(t, rows)

	if g.Move(Left) {
		t.Error("Move(Left) should not change left-aligned tiles")
	}
	if diff := cmp.Diff(rows, g.Rows()); diff != "" {
		t.Errorf("no-op move altered the grid (-want +got):\n%s", diff)
	}
	if g.Count() != 2 {
		t.Errorf("Count() = %d, want 2", g.Count())
	}
}

func TestMoveInvalidDirection(t *testing.T) {
	rows := [][]int{
		{0, 2},
		{2, 0},
	}
	g := mustGrid(t, rows)

	if g.Move(Direction(42)) {
		t.Error("Move with an unknown direction should be a no-op")
	}
	if diff := cmp.Diff(rows, g.Rows()); diff != "" {
		t.Errorf("unknown direction altered the grid (-want +got):\n%s", diff)
	}
}

func TestMoveFullStuckBoard(t *testing.T) {
	rows := [][]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}
	g := mustGrid(t, rows)

	for _, dir := range Directions {
		if g.Move(dir) {
			t.Errorf("Move(%s) on a stuck board should not change it", dir)
		}
	}
	if diff := cmp.Diff(rows, g.Rows()); diff != "" {
		t.Errorf("stuck board altered (-want +got):\n%s", diff)
	}
}

func TestSpawnRequiresFlagOrForce(t *testing.T) {
	g := mustGrid(t, [][]int{
		{0, 0},
		{0, 0},
	})

	if _, ok := g.Spawn(false); ok {
		t.Error("Spawn(false) without a change should do nothing")
	}
	if g.Count() != 0 {
		t.Errorf("Count() = %d, want 0", g.Count())
	}

	g.changed = true
	if _, ok := g.Spawn(false); !ok {
		t.Error("Spawn(false) after a change should place a tile")
	}
	if g.changed {
		t.Error("Spawn should clear the changed flag")
	}

	cell, ok := g.Spawn(true)
	if !ok {
		t.Fatal("Spawn(true) should place a tile")
	}
	if v := g.At(cell.Row, cell.Col); v != 2 && v != 4 {
		t.Errorf("spawned value = %d, want 2 or 4", v)
	}
	if g.Count() != 2 {
		t.Errorf("Count() = %d, want 2", g.Count())
	}
}

func TestSpawnFullBoard(t *testing.T) {
	g := mustGrid(t, [][]int{
		{2, 4},
		{8, 16},
	})
	g.changed = true

	if _, ok := g.Spawn(true); ok {
		t.Error("Spawn on a full board should report no empty cell")
	}
	if g.changed {
		t.Error("Spawn should clear the changed flag even when the board is full")
	}
}

func TestSpawnValueProbability(t *testing.T) {
	tests := []struct {
		draw float64
		want int
	}{
		{0.0, 4},
		{0.19, 4},
		{0.2, 2},
		{0.99, 2},
	}

	for _, tt := range tests {
		g := mustGrid(t, [][]int{{0, 0}, {0, 0}})
		g.rng = &scriptedSource{floats: []float64{tt.draw}}
		cell, ok := g.Spawn(true)
		if !ok {
			t.Fatal("Spawn(true) should place a tile")
		}
		if got := g.At(cell.Row, cell.Col); got != tt.want {
			t.Errorf("draw %.2f spawned %d, want %d", tt.draw, got, tt.want)
		}
	}
}

func TestSpawnPicksAmongEmptyCells(t *testing.T) {
	g := mustGrid(t, [][]int{
		{2, 0, 4},
		{0, 8, 16},
		{32, 64, 0},
	})
	g.rng = &scriptedSource{ints: []int{2}}

	cell, ok := g.Spawn(true)
	if !ok {
		t.Fatal("Spawn(true) should place a tile")
	}
	want := Cell{Row: 2, Col: 2}
	if cell != want {
		t.Errorf("Spawn picked %+v, want %+v", cell, want)
	}
}

func TestNewGridHasTwoTiles(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		g := New(DefaultSize, NewSource(seed))

		if g.Size() != 4 {
			t.Fatalf("Size() = %d, want 4", g.Size())
		}

		tiles := 0
		for _, row := range g.Rows() {
			for _, v := range row {
				switch v {
				case 0:
				case 2, 4:
					tiles++
				default:
					t.Fatalf("seed %d: unexpected starting tile %d", seed, v)
				}
			}
		}
		if tiles != 2 {
			t.Fatalf("seed %d: starting tiles = %d, want 2", seed, tiles)
		}
	}
}

func TestNewGridSizeFallback(t *testing.T) {
	g := New(1, NewSource(7))
	if g.Size() != DefaultSize {
		t.Errorf("Size() = %d, want %d", g.Size(), DefaultSize)
	}

	g = New(6, NewSource(7))
	if g.Size() != 6 {
		t.Errorf("Size() = %d, want 6", g.Size())
	}
}

func TestDeterministicSeed(t *testing.T) {
	g1 := New(DefaultSize, NewSource(12345))
	g2 := New(DefaultSize, NewSource(12345))

	for _, dir := range []Direction{Left, Up, Right, Down, Left} {
		g1.Move(dir)
		g2.Move(dir)
	}

	if diff := cmp.Diff(g1.Rows(), g2.Rows()); diff != "" {
		t.Errorf("same seed diverged (-g1 +g2):\n%s", diff)
	}
}

func TestTransposeTwiceIsIdentity(t *testing.T) {
	src := [][]int{
		{2, 4, 8},
		{16, 32, 64},
		{128, 256, 512},
	}

	once := Transpose(src)
	if once[0][1] != 16 || once[2][0] != 8 {
		t.Errorf("Transpose() = %v, want rows and columns swapped", once)
	}
	if diff := cmp.Diff(src, Transpose(once)); diff != "" {
		t.Errorf("Transpose twice mismatch (-want +got):\n%s", diff)
	}
	if src[0][1] != 4 {
		t.Error("Transpose must not modify its source")
	}
}

func TestMoveTileCountGrowth(t *testing.T) {
	rng := NewSource(99)
	g := New(DefaultSize, rng)

	for i := range 500 {
		dir := Directions[rng.Intn(len(Directions))]

		before := g.Count()
		probe := mustGrid(t, g.Rows())
		probe.shift(dir)
		merged := before - probe.Count()
		hadEmpty := len(probe.EmptyCells()) > 0

		changed := g.Move(dir)
		after := g.Count()

		want := before - merged
		if changed && hadEmpty {
			want++
		}
		if after != want {
			t.Fatalf("move %d (%s): Count() = %d, want %d", i, dir, after, want)
		}
		if after > before+1 {
			t.Fatalf("move %d (%s): tile count grew by %d", i, dir, after-before)
		}
	}
}

func TestFromRowsValidation(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
		want error
	}{
		{"too small", [][]int{{2}}, ErrBoardTooSmall},
		{"ragged", [][]int{{2, 0}, {0}}, ErrNotSquare},
		{"odd value", [][]int{{2, 3}, {0, 0}}, ErrInvalidTile},
		{"one", [][]int{{1, 0}, {0, 0}}, ErrInvalidTile},
		{"negative", [][]int{{-2, 0}, {0, 0}}, ErrInvalidTile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromRows(tt.rows, &scriptedSource{})
			if !errors.Is(err, tt.want) {
				t.Errorf("FromRows() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMaxTileAndEmptyCells(t *testing.T) {
	g := mustGrid(t, [][]int{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	})

	if g.MaxTile() != 2048 {
		t.Errorf("MaxTile() = %d, want 2048", g.MaxTile())
	}
	if n := len(g.EmptyCells()); n != 8 {
		t.Errorf("EmptyCells() count = %d, want 8", n)
	}
	if g.At(-1, 0) != 0 || g.At(0, 4) != 0 {
		t.Error("At() out of range should return 0")
	}
}

func TestRowsIsACopy(t *testing.T) {
	g := mustGrid(t, [][]int{{2, 0}, {0, 0}})
	rows := g.Rows()
	rows[0][0] = 1024

	if g.At(0, 0) != 2 {
		t.Error("mutating Rows() result must not affect the grid")
	}
}

func TestLastSpawn(t *testing.T) {
	g := mustGrid(t, [][]int{
		{0, 0},
		{0, 2},
	})

	if _, ok := g.LastSpawn(); ok {
		t.Error("grid built from rows should have no last spawn")
	}

	g.Move(Up)
	cell, ok := g.LastSpawn()
	if !ok {
		t.Fatal("changed move should record the spawned cell")
	}
	if cell != (Cell{Row: 0, Col: 0}) {
		t.Errorf("LastSpawn() = %+v, want (0, 0)", cell)
	}

	// Both columns are already packed upward
	if g.Move(Up) {
		t.Fatal("second move up should not change the grid")
	}
	if _, ok := g.LastSpawn(); ok {
		t.Error("no-op move should clear the last spawn")
	}
}
