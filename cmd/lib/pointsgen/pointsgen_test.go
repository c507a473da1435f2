package pointsgen

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"github.com/reddit/pointsgen/log"
	"github.com/reddit/pointsgen/points"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pointsgen.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestRunArgs(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing", "points.pts")

	for _, c := range []struct {
		label string
		args  []string
		code  int
	}{
		{
			label: "defaults",
			args:  []string{},
			code:  ExitOK,
		},
		{
			label: "count-2",
			args:  []string{"--count", "2"},
			code:  ExitOK,
		},
		{
			label: "radius-1",
			args:  []string{"--radius", "1"},
			code:  ExitOK,
		},
		{
			label: "count-1",
			args:  []string{"--count", "1"},
			code:  ExitInvalidArgument,
		},
		{
			label: "radius-0",
			args:  []string{"--radius", "0"},
			code:  ExitInvalidArgument,
		},
		{
			label: "bad-flag-value",
			args:  []string{"--count", "many"},
			code:  ExitInvalidArgument,
		},
		{
			label: "bad-log-level",
			args:  []string{"--log-level", "verbose"},
			code:  ExitInvalidArgument,
		},
		{
			label: "positional",
			args:  []string{"points.pts"},
			code:  ExitInvalidArgument,
		},
		{
			label: "help",
			args:  []string{"-h"},
			code:  ExitOK,
		},
		{
			label: "missing-dir",
			args:  []string{"--out", missing},
			code:  ExitFailure,
		},
		{
			label: "missing-config",
			args:  []string{"--config", filepath.Join(dir, "nope.yaml")},
			code:  ExitFailure,
		},
	} {
		t.Run(c.label, func(t *testing.T) {
			args := []string{
				"./pointsgen",
				"--log-level", string(log.NopLevel),
				"--out", filepath.Join(t.TempDir(), "points.pts"),
			}
			args = append(args, c.args...)
			err := RunArgs(args, io.Discard)
			if err != nil {
				t.Logf("error: %v", err)
			}
			if code := ExitCode(err); code != c.code {
				t.Errorf("Expected exit code %d, got %d", c.code, code)
			}
		})
	}
}

func TestRunArgsOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.pts")
	var stdout bytes.Buffer
	err := RunArgs(
		[]string{"./pointsgen", "--log-level", "nop", "--out", path, "--count", "5", "--radius", "0.3"},
		&stdout,
	)
	if err != nil {
		t.Fatalf("RunArgs failed: %v", err)
	}

	want := "Points file generated at '" + path + "' with 5 points.\n"
	if got := stdout.String(); got != want {
		t.Errorf("stdout got %q, want %q", got, want)
	}

	f, err := points.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if f.Radius != 0.3 {
		t.Errorf("Radius got %v, want 0.3", f.Radius)
	}
	if len(f.Points) != 5 {
		t.Errorf("Expected 5 points, got %d", len(f.Points))
	}
}

func TestRunArgsSeed(t *testing.T) {
	dir := t.TempDir()
	run := func(name string) []byte {
		t.Helper()
		path := filepath.Join(dir, name)
		err := RunArgs(
			[]string{"./pointsgen", "--log-level", "nop", "--out", path, "--seed", "42"},
			io.Discard,
		)
		if err != nil {
			t.Fatalf("RunArgs failed: %v", err)
		}
		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("Failed to read %q: %v", path, err)
		}
		return content
	}
	if diff := cmp.Diff(string(run("a.pts")), string(run("b.pts"))); diff != "" {
		t.Errorf("Same seed produced different files (-a +b):\n%s", diff)
	}
}

func TestRunArgsConfig(t *testing.T) {
	dir := t.TempDir()
	fromConfig := filepath.Join(dir, "config.pts")
	fromFlag := filepath.Join(dir, "flag.pts")

	config := writeConfig(t, `
out: `+fromConfig+`
count: 4
radius: 0.5
seed: "7"
log:
  level: nop
`)

	t.Run("config", func(t *testing.T) {
		if err := RunArgs([]string{"./pointsgen", "--config", config}, io.Discard); err != nil {
			t.Fatalf("RunArgs failed: %v", err)
		}
		f, err := points.ReadFile(fromConfig)
		if err != nil {
			t.Fatalf("ReadFile failed: %v", err)
		}
		if f.Radius != 0.5 || len(f.Points) != 4 {
			t.Errorf("Expected radius 0.5 and 4 points, got %v and %d", f.Radius, len(f.Points))
		}
	})

	t.Run("flags-override", func(t *testing.T) {
		err := RunArgs(
			[]string{"./pointsgen", "--config", config, "--out", fromFlag, "--count", "3"},
			io.Discard,
		)
		if err != nil {
			t.Fatalf("RunArgs failed: %v", err)
		}
		f, err := points.ReadFile(fromFlag)
		if err != nil {
			t.Fatalf("ReadFile failed: %v", err)
		}
		if f.Radius != 0.5 || len(f.Points) != 3 {
			t.Errorf("Expected radius 0.5 and 3 points, got %v and %d", f.Radius, len(f.Points))
		}
	})

	t.Run("unknown-key", func(t *testing.T) {
		bad := writeConfig(t, "count: 4\nradious: 0.5\n")
		err := RunArgs([]string{"./pointsgen", "--log-level", "nop", "--config", bad}, io.Discard)
		if err == nil {
			t.Error("Expected error for unknown config key, got none")
		}
	})
}

func TestRunArgsMetricsTextfile(t *testing.T) {
	dir := t.TempDir()
	metrics := filepath.Join(dir, "pointsgen.prom")
	err := RunArgs(
		[]string{
			"./pointsgen",
			"--log-level", "nop",
			"--out", filepath.Join(dir, "points.pts"),
			"--metrics-textfile", metrics,
		},
		io.Discard,
	)
	if err != nil {
		t.Fatalf("RunArgs failed: %v", err)
	}
	content, err := os.ReadFile(metrics)
	if err != nil {
		t.Fatalf("Failed to read metrics textfile: %v", err)
	}
	for _, name := range []string{
		"pointsgen_files_total",
		"pointsgen_points_total",
		"pointsgen_written_bytes_total",
	} {
		if !strings.Contains(string(content), name) {
			t.Errorf("Expected %q in metrics textfile, got:\n%s", name, content)
		}
	}
}

func TestExitCode(t *testing.T) {
	for _, c := range []struct {
		label string
		err   error
		want  int
	}{
		{label: "nil", err: nil, want: ExitOK},
		{label: "help", err: flag.ErrHelp, want: ExitOK},
		{label: "invalid", err: points.ErrInvalidArgument, want: ExitInvalidArgument},
		{label: "io", err: points.ErrIO, want: ExitFailure},
		{label: "other", err: errors.New("boom"), want: ExitFailure},
	} {
		t.Run(c.label, func(t *testing.T) {
			if got := ExitCode(c.err); got != c.want {
				t.Errorf("ExitCode(%v) got %d, want %d", c.err, got, c.want)
			}
		})
	}
}

func TestParseArgsConfigLogging(t *testing.T) {
	config := writeConfig(t, "count: 4\nlog:\n  level: nop\n")
	t.Cleanup(func() {
		log.InitLogger(log.NopLevel)
	})

	for _, c := range []struct {
		label string
		level string
		debug bool
	}{
		{label: "debug", level: "debug", debug: true},
		{label: "info", level: "info", debug: false},
	} {
		t.Run(c.label, func(t *testing.T) {
			cfg, err := parseArgs([]string{"./pointsgen", "--config", config, "--log-level", c.level})
			if err != nil {
				t.Fatalf("parseArgs failed: %v", err)
			}
			if cfg.Count != 4 {
				t.Errorf("Count got %d, want 4", cfg.Count)
			}
			// The config file was parsed with the flag's level in effect.
			if got := log.With().Desugar().Core().Enabled(zap.DebugLevel); got != c.debug {
				t.Errorf("Debug logging enabled got %v, want %v", got, c.debug)
			}
		})
	}
}

func TestRunArgsMetricsTextfileKeepsError(t *testing.T) {
	dir := t.TempDir()
	err := RunArgs(
		[]string{
			"./pointsgen",
			"--log-level", "nop",
			"--out", filepath.Join(dir, "missing", "points.pts"),
			"--metrics-textfile", filepath.Join(dir, "missing", "pointsgen.prom"),
		},
		io.Discard,
	)
	if !errors.Is(err, points.ErrIO) {
		t.Errorf("Expected error wrapping ErrIO, got %v", err)
	}
	if err == nil || !strings.Contains(err.Error(), "points: i/o error") {
		t.Errorf("Expected the generation error message to survive, got %v", err)
	}
	if code := ExitCode(err); code != ExitFailure {
		t.Errorf("Expected exit code %d, got %d", ExitFailure, code)
	}
}
