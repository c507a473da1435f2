package pointsgen

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gofrs/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/reddit/pointsgen/configbp"
	"github.com/reddit/pointsgen/errorsbp"
	"github.com/reddit/pointsgen/internal/prometheusbpint"
	"github.com/reddit/pointsgen/log"
	"github.com/reddit/pointsgen/points"
)

// Exit codes returned by Run.
const (
	ExitOK              = 0
	ExitInvalidArgument = 1
	ExitFailure         = 2
)

// Run runs pointsgen with os.Args.
//
// It returns the exit code, ExitOK on success.
func Run() int {
	err := RunArgs(os.Args, os.Stdout)
	if err != nil && !errors.Is(err, flag.ErrHelp) {
		fmt.Fprintln(os.Stderr, err)
	}
	return ExitCode(err)
}

// ExitCode maps an error returned by RunArgs to an exit code.
func ExitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return ExitOK
	case errors.Is(err, points.ErrInvalidArgument):
		return ExitInvalidArgument
	default:
		return ExitFailure
	}
}

// RunArgs is the testable version of Run.
//
// args[0] is the program name, as in os.Args.
// The confirmation message is written to stdout.
func RunArgs(args []string, stdout io.Writer) (err error) {
	cfg, err := parseArgs(args)
	if err != nil {
		return err
	}

	log.InitFromConfig(cfg.Log)
	defer log.Sync()

	sentryCloser, err := log.InitSentry(cfg.Sentry)
	if err != nil {
		return err
	}
	defer sentryCloser.Close()

	if cfg.MetricsTextfile != "" {
		defer func() {
			var batch errorsbp.Batch
			batch.Add(err)
			batch.AddPrefix("writing metrics", writeMetrics(cfg.MetricsTextfile))
			err = batch.Compile()
		}()
	}

	ctx := context.Background()
	if id, idErr := uuid.NewV4(); idErr == nil {
		ctx = log.Attach(ctx, log.AttachArgs{RunID: id.String()})
	}

	g := points.NewGenerator(int64(cfg.Seed))
	if err := g.Generate(ctx, cfg.Params); err != nil {
		log.ErrorWithSentry(
			ctx,
			"Failed to generate points file",
			err,
			"path", cfg.Path,
			"count", cfg.Count,
			"radius", cfg.Radius,
		)
		return err
	}
	log.C(ctx).Infow(
		"Points file generated",
		"path", cfg.Path,
		"count", cfg.Count,
		"seed", g.Seed(),
	)
	fmt.Fprintf(stdout, "Points file generated at '%s' with %d points.\n", cfg.Path, cfg.Count)
	return nil
}

func parseArgs(args []string) (Config, error) {
	cfg := DefaultConfig()

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	out := fs.String("out", cfg.Path, "The path of the points file to create or overwrite.")
	count := fs.Int("count", cfg.Count, "The number of points to generate, must be greater than 1.")
	radius := fs.Float64("radius", cfg.Radius, "The radius written on the first line, in (0, 1].")
	seed := fs.Int64("seed", 0, "The seed of the random generator, 0 means a random seed.")
	configPath := fs.String("config", "", "Optional YAML config file, explicit flags take precedence over it.")
	metrics := fs.String("metrics-textfile", "", "Write prometheus metrics in text format to this path after the run.")
	level := oneof{
		choices: levelChoices(),
		value:   string(cfg.Log.Level),
	}
	fs.Var(&level, "log-level", fmt.Sprintf("The log level, one of %s.", level.choicesString()))
	format := oneof{
		choices: formatChoices,
		value:   "console",
	}
	fs.Var(&format, "log-format", fmt.Sprintf("The log format, one of %s.", format.choicesString()))

	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, err
		}
		return cfg, fmt.Errorf("%w: failed to parse args: %v", points.ErrInvalidArgument, err)
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("%w: unexpected arguments %q", points.ErrInvalidArgument, fs.Args())
	}

	if *configPath != "" {
		// Logs while parsing the config follow the flags,
		// RunArgs reinitializes the logger from the final config.
		log.InitFromConfig(log.Config{
			Level: level.Get().(log.Level),
			JSON:  format.Get().(bool),
		})
		if err := configbp.ParseStrictFile(*configPath, &cfg); err != nil {
			return cfg, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out":
			cfg.Path = *out
		case "count":
			cfg.Count = *count
		case "radius":
			cfg.Radius = *radius
		case "seed":
			cfg.Seed = configbp.Int64String(*seed)
		case "metrics-textfile":
			cfg.MetricsTextfile = *metrics
		case "log-level":
			cfg.Log.Level = level.Get().(log.Level)
		case "log-format":
			cfg.Log.JSON = format.Get().(bool)
		}
	})
	return cfg, nil
}

func writeMetrics(path string) error {
	prometheusbpint.RecordBuildInfo()
	return prometheus.WriteToTextfile(path, prometheusbpint.GlobalRegistry)
}
