// Package registry provides a global registry of playable board variants.
// Variants register themselves in init() functions, so the CLI and the
// menus discover them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/term2048/internal/core"
)

// Game is the interface the platform drives.
// Implementations contain pure logic with no Bubble Tea dependency; the
// platform handles input mapping and terminal output.
type Game interface {
	// ID returns the variant identifier (e.g., "classic").
	// Used for CLI arguments and the session journal.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset builds a fresh board. Called at start and on restart.
	Reset(cfg core.RuntimeConfig)

	// Step applies one input frame synchronously.
	Step(in core.InputFrame) core.StepResult

	// Resize updates the screen dimensions without touching the board.
	Resize(width, height int)

	// Render draws the current state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game status.
	State() core.GameState
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID    string
	Title string
	Size  int // Board dimension
}

// Factory creates a new instance of a variant.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a variant to the registry.
// Panics if a variant with the same ID is already registered.
func Register(info GameInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[info.ID]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", info.ID))
	}

	entries[info.ID] = entry{info: info, factory: f}
}

// List returns all registered variants ordered by board size, then ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Size != result[j].Size {
			return result[i].Size < result[j].Size
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a variant by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown variant %q", id)
	}

	return e.factory(), nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}

// Lookup returns the info for a registered variant.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// BySize returns the first registered variant with the given board size.
func BySize(size int) (GameInfo, bool) {
	for _, info := range List() {
		if info.Size == size {
			return info, true
		}
	}
	return GameInfo{}, false
}
