// Package randbp provides the pseudo-random generators used by pointsgen:
//
// 1. A thread-safe Rand that can be seeded explicitly, so generated fixtures
// are reproducible in tests.
//
// 2. GetSeed, which picks a seed from OS entropy when none is given.
package randbp
