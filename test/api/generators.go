package api

import (
	"math/rand/v2"
)

// IDGen draws entity IDs from the two disjoint ranges the suite relies on:
// the seeded range (entities the server was deployed with) and the new range
// (IDs for entities created by tests). Keeping the ranges disjoint is what
// lets scenarios run in parallel without cleanup coordination.
type IDGen struct {
	config *TestConfig
}

// NewIDGen creates a generator bound to the configured ranges.
func NewIDGen(config *TestConfig) *IDGen {
	return &IDGen{config: config}
}

// randomInRange returns a uniform integer in [min, max]. The +1 keeps max
// reachable; a naive modulo or open interval would silently exclude it.
func randomInRange(min, max int) int {
	return min + rand.IntN(max-min+1)
}

// RandomBookID returns a book ID expected to exist in the seed data.
func (g *IDGen) RandomBookID() int {
	return randomInRange(1, g.config.SeededBookCount)
}

// RandomAuthorID returns an author ID expected to exist in the seed data.
func (g *IDGen) RandomAuthorID() int {
	return randomInRange(1, g.config.SeededAuthorCount)
}

// RandomNewBookID returns a book ID guaranteed to be outside the seed range.
func (g *IDGen) RandomNewBookID() int {
	return randomInRange(g.config.NewIDMin, g.config.NewIDMax)
}

// RandomNewAuthorID returns an author ID guaranteed to be outside the seed range.
func (g *IDGen) RandomNewAuthorID() int {
	return randomInRange(g.config.NewIDMin, g.config.NewIDMax)
}
