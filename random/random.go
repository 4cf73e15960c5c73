// Package random refreshes benchmark input data in place between trials.
//
// Every handle in this package implements Item: it knows how to overwrite its
// own content with fresh random values drawn from the generator it is given.
// A Source owns the generator and randomizes any number of items.
package random

import (
	"math/rand/v2"
)

// Lower and upper bounds of the generated values.
const (
	Min = -1000
	Max = 1000
)

// Item is a value that can overwrite itself with random content.
type Item interface {
	Randomize(r *rand.Rand)
}

// Source randomizes items from a single seeded generator. It is not safe
// for concurrent use.
type Source struct {
	rng *rand.Rand
}

// New returns a Source whose sequence is fully determined by seed.
func New(seed uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewRandom returns a Source seeded from the runtime's entropy.
func NewRandom() *Source {
	return New(rand.Uint64())
}

// Randomize overwrites every item in place, in order.
func (s *Source) Randomize(items ...Item) {
	for _, item := range items {
		item.Randomize(s.rng)
	}
}

// Rand exposes the underlying generator.
func (s *Source) Rand() *rand.Rand {
	return s.rng
}

func uniform(r *rand.Rand) float64 {
	return Min + r.Float64()*(Max-Min)
}

func integer(r *rand.Rand) int64 {
	return Min + r.Int64N(Max-Min+1)
}
