package game

import (
	"math/rand"
	"time"
)

// Random is the uniform source rounds draw from. *rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
}

// NewRandom seeds from the clock when seed is 0.
func NewRandom(seed int64) Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Choose picks one element of a non-empty slice.
func Choose[T any](r Random, items []T) T {
	return items[r.Intn(len(items))]
}

// Flip is a fair coin.
func Flip(r Random) bool {
	return r.Intn(2) == 1
}

// Between returns an int in [lo, hi).
func Between(r Random, lo, hi int) int {
	return lo + r.Intn(hi-lo)
}
