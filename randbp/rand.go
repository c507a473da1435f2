package randbp

import (
	"math/rand"
)

// Rand embeds *math/rand.Rand backed by a LockedSource64.
//
// Values created by New are safe for concurrent use.
// Rand must not be used for anything security related,
// use crypto/rand for that instead.
type Rand struct {
	*rand.Rand

	seed int64
}

// New creates a Rand seeded with seed.
//
// Two Rands created with the same seed produce the same sequence.
func New(seed int64) Rand {
	return Rand{
		Rand: rand.New(NewLockedSource64(rand.NewSource(seed))),
		seed: seed,
	}
}

// NewRandom creates a Rand seeded with GetSeed.
func NewRandom() Rand {
	return New(GetSeed())
}

// InitialSeed returns the seed r was created with,
// so it can be logged alongside generated output.
func (r Rand) InitialSeed() int64 {
	return r.seed
}
