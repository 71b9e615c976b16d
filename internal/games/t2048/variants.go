package t2048

import (
	"fmt"

	"github.com/vovakirdan/term2048/internal/board"
	"github.com/vovakirdan/term2048/internal/registry"
)

// MaxSize is the largest board the renderer lays out.
const MaxSize = 8

// CustomID identifies boards built from an explicit size.
const CustomID = "custom"

// Variant is a named board size.
type Variant struct {
	ID    string
	Title string
	Size  int
}

// Variants lists the built-in board sizes.
var Variants = []Variant{
	{ID: "mini", Title: "Mini 3x3", Size: 3},
	{ID: "classic", Title: "Classic 4x4", Size: board.DefaultSize},
	{ID: "large", Title: "Large 5x5", Size: 5},
	{ID: "huge", Title: "Huge 6x6", Size: 6},
}

// LookupVariant finds a built-in variant by ID.
func LookupVariant(id string) (Variant, bool) {
	for _, v := range Variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

// CustomVariant describes a board of arbitrary size.
// Returns an error if size is outside [board.MinSize, MaxSize].
func CustomVariant(size int) (Variant, error) {
	if size < board.MinSize || size > MaxSize {
		return Variant{}, fmt.Errorf("t2048: board size %d out of range [%d, %d]", size, board.MinSize, MaxSize)
	}
	return Variant{
		ID:    CustomID,
		Title: fmt.Sprintf("Custom %dx%d", size, size),
		Size:  size,
	}, nil
}

func init() {
	for _, v := range Variants {
		registry.Register(registry.GameInfo{ID: v.ID, Title: v.Title, Size: v.Size}, func() registry.Game {
			return New(v)
		})
	}
}
