package randbp

import (
	"crypto/rand"
	"encoding/binary"
	"time"
)

// cryptoReader is replaced in tests.
var cryptoReader = rand.Read

// GetSeed returns a seed for pseudo-random generator.
//
// It tries to use crypto/rand to read an int64,
// and fallback to use current time if that fails for whatever reason.
func GetSeed() int64 {
	buf := make([]byte, 8)
	if n, err := cryptoReader(buf); err != nil || n < len(buf) {
		return time.Now().UnixNano()
	}
	return int64(binary.BigEndian.Uint64(buf))
}

// SeedOrRandom returns seed when it's non-zero, GetSeed() otherwise.
//
// Zero is reserved to mean "not set" in flags and config files.
func SeedOrRandom(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return GetSeed()
}
