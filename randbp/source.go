package randbp

import (
	"math/rand"
	"sync"
)

var _ rand.Source64 = (*LockedSource64)(nil)

type source64 interface {
	Uint64() uint64
}

// LockedSource64 is a rand.Source64 guarded by a mutex.
//
// The sources returned by rand.NewSource are not safe for concurrent use,
// LockedSource64 makes a Rand built on top of one shareable.
type LockedSource64 struct {
	lock sync.Mutex
	src  rand.Source
	s64  source64
}

// NewLockedSource64 wraps src.
func NewLockedSource64(src rand.Source) *LockedSource64 {
	ls := &LockedSource64{src: src}
	ls.resetS64()
	return ls
}

func (ls *LockedSource64) resetS64() {
	if s64, ok := ls.src.(source64); ok {
		ls.s64 = s64
		return
	}
	// *rand.Rand builds an uint64 out of two Int63 calls for plain sources.
	ls.s64 = rand.New(ls.src)
}

// Int63 implements rand.Source.
func (ls *LockedSource64) Int63() int64 {
	ls.lock.Lock()
	defer ls.lock.Unlock()
	return ls.src.Int63()
}

// Uint64 implements rand.Source64.
func (ls *LockedSource64) Uint64() uint64 {
	ls.lock.Lock()
	defer ls.lock.Unlock()
	return ls.s64.Uint64()
}

// Seed implements rand.Source.
func (ls *LockedSource64) Seed(seed int64) {
	ls.lock.Lock()
	defer ls.lock.Unlock()
	ls.src.Seed(seed)
	ls.resetS64()
}
