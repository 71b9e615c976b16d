package board

import (
	"math/rand"
	"time"
)

// Source is the part of *rand.Rand the engine draws from.
// Tests substitute a scripted implementation.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// NewSource returns a generator seeded with seed.
// A zero seed uses the current time.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
