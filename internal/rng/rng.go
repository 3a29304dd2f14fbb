// Package rng abstracts the random source used by item generators and
// the player engine. Production code uses the system source; tests
// inject a seeded one for reproducible banks and selections.
package rng

import "math/rand/v2"

// Source yields uniform floats in [0, 1). It is the only randomness
// primitive the rest of the code consumes.
type Source interface {
	Float64() float64
}

type systemSource struct{}

func (systemSource) Float64() float64 { return rand.Float64() }

// New returns the shared system-backed source.
func New() Source {
	return systemSource{}
}

// NewSeeded returns a deterministic source for the given seed.
func NewSeeded(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed))
}

// Between returns a uniform integer in [a, b], inclusive on both ends.
func Between(s Source, a, b int) int {
	return a + int(s.Float64()*float64(b-a+1))
}

// Index returns a uniform integer in [0, n).
func Index(s Source, n int) int {
	return int(s.Float64() * float64(n))
}

// Pick returns a uniformly chosen element of xs.
func Pick[T any](s Source, xs []T) T {
	return xs[Index(s, len(xs))]
}
