package pointclusters

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/reddit/pointsgen/cluster"
	"github.com/reddit/pointsgen/log"
	"github.com/reddit/pointsgen/points"
)

// Run runs pointclusters with os.Args.
//
// It returns the exit code: 0 on success, 1 on invalid arguments or input,
// 2 on everything else.
func Run() int {
	err := RunArgs(os.Args, os.Stdout)
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, points.ErrInvalidArgument),
		errors.Is(err, points.ErrMalformed),
		errors.Is(err, cluster.ErrOutOfRange):
		fmt.Fprintln(os.Stderr, err)
		return 1
	default:
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
}

// RunArgs is the testable version of Run.
func RunArgs(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	in := fs.String("in", "points.pts", "The points file to read.")
	radius := fs.Float64("radius", 0, "Override the radius from the points file, 0 means use the file's.")
	grid := fs.Bool("grid", false, fmt.Sprintf("Also print the grid, up to %dx%d cells.", cluster.MaxMatrixSize, cluster.MaxMatrixSize))
	level := fs.String("log-level", string(log.WarnLevel), "The log level.")
	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: failed to parse args: %v", points.ErrInvalidArgument, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected arguments %q", points.ErrInvalidArgument, fs.Args())
	}
	l, err := log.ParseLevel(*level)
	if err != nil {
		return fmt.Errorf("%w: %v", points.ErrInvalidArgument, err)
	}
	log.InitLogger(l)
	defer log.Sync()

	f, err := points.ReadFile(*in)
	if err != nil {
		return err
	}
	r := f.Radius
	if *radius != 0 {
		r = *radius
	}

	g, err := cluster.NewGrid(r, f.Points)
	if err != nil {
		return fmt.Errorf("%s: %w", *in, err)
	}
	groups := g.Components()
	log.Debugw(
		"Clustered points file",
		"path", *in,
		"radius", r,
		"points", len(f.Points),
		"grid", g.Size(),
		"clusters", len(groups),
	)

	if *grid {
		if err := g.WriteMatrix(stdout, groups); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(stdout, cluster.Sizes(groups))
	return err
}
