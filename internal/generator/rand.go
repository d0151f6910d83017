package generator

import "math/rand/v2"

// Rand is the random source behind volume draws, branch picks, and unit
// counts. *rand.Rand satisfies it directly, so tests can inject a fixed-seed
// PCG source while production stays unseeded.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// NewRand returns an auto-seeded source for production use.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
