package randbp_test

import (
	"math/rand"
	"sync"
	"testing"
	"testing/quick"

	"github.com/reddit/pointsgen/randbp"
)

func TestSameSeedSameSequence(t *testing.T) {
	f := func(seed int64) bool {
		a := randbp.New(seed)
		b := randbp.New(seed)
		for i := 0; i < 10; i++ {
			fa, fb := a.Float64(), b.Float64()
			if fa != fb {
				t.Errorf("seed %d: Float64 #%d got %v and %v", seed, i, fa, fb)
				return false
			}
		}
		if a.InitialSeed() != seed {
			t.Errorf("InitialSeed() got %d, want %d", a.InitialSeed(), seed)
		}
		return !t.Failed()
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestFloat64Range(t *testing.T) {
	r := randbp.NewRandom()
	f := func() bool {
		v := r.Float64()
		if v < 0 || v >= 1 {
			t.Errorf("Float64() returned %v, want [0, 1)", v)
		}
		return !t.Failed()
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestConcurrentUse(t *testing.T) {
	const (
		goroutines = 8
		draws      = 1000
	)
	r := randbp.New(1)
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < draws; j++ {
				r.Float64()
				r.Uint64()
			}
		}()
	}
	wg.Wait()
}

func TestLockedSource64Seed(t *testing.T) {
	src := randbp.NewLockedSource64(rand.NewSource(7))
	first := src.Uint64()
	src.Int63()
	src.Seed(7)
	if got := src.Uint64(); got != first {
		t.Errorf("Uint64 after reseed got %d, want %d", got, first)
	}
}
