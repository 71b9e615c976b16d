package t2048

// Status names the session phase shown to the player.
type Status string

const (
	StatusPlaying     Status = "playing"
	StatusPaused      Status = "paused"
	StatusPausedSmall Status = "paused_small_window"
)

// Snapshot captures the complete session state for determinism tests and
// screenshots.
type Snapshot struct {
	Variant string
	Size    int
	Moves   int
	Spawns  int
	Board   [][]int
	MaxTile int
	Status  Status
}

// Snapshot returns a copy of the current session state.
func (g *Game) Snapshot() Snapshot {
	status := StatusPlaying
	switch {
	case g.tooSmall:
		status = StatusPausedSmall
	case g.paused:
		status = StatusPaused
	}

	snap := Snapshot{
		Variant: g.variant.ID,
		Size:    g.variant.Size,
		Moves:   g.moves,
		Spawns:  g.spawns,
		Status:  status,
	}
	if g.grid != nil {
		snap.Board = g.grid.Rows()
		snap.MaxTile = g.grid.MaxTile()
	}
	return snap
}
