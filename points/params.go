package points

import (
	"fmt"
)

// MinCount is the smallest valid number of points, exclusive.
const MinCount = 1

// Params are the parameters of a single generation.
type Params struct {
	// Path of the points file, created or truncated.
	Path string `yaml:"out"`

	// Count is the number of points, must be > 1.
	Count int `yaml:"count"`

	// Radius is written on the first line, must be in (0, 1].
	Radius float64 `yaml:"radius"`
}

// Validate checks the radius, then the count.
// The first failing check is returned, wrapping ErrInvalidArgument.
func (p Params) Validate() error {
	if err := ValidateRadius(p.Radius); err != nil {
		return err
	}
	return ValidateCount(p.Count)
}

// ValidateRadius checks that 0 < radius <= 1.
func ValidateRadius(radius float64) error {
	// written as negations so NaN fails too.
	if !(radius > 0) {
		return fmt.Errorf("%w: radius must be greater than 0, got %v", ErrInvalidArgument, radius)
	}
	if !(radius <= 1) {
		return fmt.Errorf("%w: radius must be less than or equal to 1, got %v", ErrInvalidArgument, radius)
	}
	return nil
}

// ValidateCount checks that count > 1.
func ValidateCount(count int) error {
	if count <= MinCount {
		return fmt.Errorf("%w: number of points must be greater than %d, got %d", ErrInvalidArgument, MinCount, count)
	}
	return nil
}
