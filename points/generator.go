package points

import (
	"context"
	"errors"
	"time"

	"github.com/reddit/pointsgen/log"
	"github.com/reddit/pointsgen/randbp"
)

// Generator samples points and writes points files.
//
// A Generator owns its PRNG and is safe for concurrent use.
type Generator struct {
	rand randbp.Rand
}

// NewGenerator creates a Generator seeded with seed,
// or with OS entropy when seed is 0.
//
// Generators created with the same non-zero seed produce the same files.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		rand: randbp.New(randbp.SeedOrRandom(seed)),
	}
}

// Seed returns the seed the generator was created with.
func (g *Generator) Seed() int64 {
	return g.rand.InitialSeed()
}

// Sample returns count independent points, each coordinate uniform in
// [0, 1) and rounded to 2 decimal places.
func (g *Generator) Sample(count int) []Point {
	if count <= 0 {
		return nil
	}
	pts := make([]Point, count)
	for i := range pts {
		pts[i] = Point{
			X: unitCoord(g.rand.Float64()),
			Y: unitCoord(g.rand.Float64()),
		}
	}
	return pts
}

// Generate validates p, samples p.Count points and writes them with
// p.Radius to p.Path.
//
// Errors wrap either ErrInvalidArgument or ErrIO.
// ctx only carries the logger, generation can't be canceled.
func (g *Generator) Generate(ctx context.Context, p Params) error {
	logger := log.C(ctx).With(
		"path", p.Path,
		"count", p.Count,
		"radius", p.Radius,
	)

	if err := p.Validate(); err != nil {
		filesCounter.WithLabelValues(outcomeInvalid).Inc()
		return err
	}

	start := time.Now()
	n, err := WriteFile(p.Path, File{
		Radius: p.Radius,
		Points: g.Sample(p.Count),
	})
	bytesCounter.Add(float64(n))
	if err != nil {
		filesCounter.WithLabelValues(outcomeIO).Inc()
		return err
	}

	filesCounter.WithLabelValues(outcomeOK).Inc()
	pointsCounter.Add(float64(p.Count))
	logger.Debugw(
		"Points file written",
		"seed", g.Seed(),
		"bytes", n,
		"took", time.Since(start),
	)
	return nil
}

// Generate writes count random points and radius to the file at path,
// using a generator seeded from OS entropy.
func Generate(path string, count int, radius float64) error {
	return NewGenerator(0).Generate(context.Background(), Params{
		Path:   path,
		Count:  count,
		Radius: radius,
	})
}

// IsInvalidArgument reports whether err is a parameter validation failure.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}
