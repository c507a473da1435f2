package pointsgen

import (
	"github.com/reddit/pointsgen/configbp"
	"github.com/reddit/pointsgen/log"
	"github.com/reddit/pointsgen/points"
)

// Config is the configuration of a pointsgen run.
//
// It can be read from a YAML file with --config, for example:
//
//	out: fixtures/points.pts
//	count: 30
//	radius: 0.2
//	seed: "42"
//	log:
//	  level: debug
//	sentry:
//	  dsn: $SENTRY_DSN
type Config struct {
	points.Params `yaml:",inline"`

	// Seed of the PRNG, 0 means a random seed.
	Seed configbp.Int64String `yaml:"seed"`

	// MetricsTextfile, when set, is where the prometheus metrics are written
	// in the text exposition format after the run.
	MetricsTextfile string `yaml:"metricsTextfile"`

	Log    log.Config       `yaml:"log"`
	Sentry log.SentryConfig `yaml:"sentry"`
}

// DefaultConfig returns the config used when neither flags nor a config file
// say otherwise.
func DefaultConfig() Config {
	return Config{
		Params: points.Params{
			Path:   "points.pts",
			Count:  30,
			Radius: 0.2,
		},
		Log: log.Config{
			Level: log.InfoLevel,
		},
	}
}
