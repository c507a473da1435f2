package configbp_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"github.com/reddit/pointsgen/configbp"
	"github.com/reddit/pointsgen/log"
)

func init() {
	log.InitLogger(log.DebugLevel)
}

type config struct {
	Out    string               `yaml:"out"`
	Count  int                  `yaml:"count"`
	Radius float64              `yaml:"radius"`
	Seed   configbp.Int64String `yaml:"seed"`
	Log    log.Config           `yaml:"log"`
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("SETUP: failed to write file: %s", err)
	}
	return path
}

func TestParseStrictFile(t *testing.T) {
	t.Setenv("POINTS_OUT", "/tmp/fixture.pts")

	for _, c := range []struct {
		label   string
		name    string
		content string
		want    config
		wantErr string
	}{
		{
			label: "basic-env",
			name:  "pointsgen.yaml",
			content: `
out: $POINTS_OUT
count: 30
radius: 0.2
seed: "42"
log:
  level: debug
  json: true
`,
			want: config{
				Out:    "/tmp/fixture.pts",
				Count:  30,
				Radius: 0.2,
				Seed:   42,
				Log: log.Config{
					Level: log.DebugLevel,
					JSON:  true,
				},
			},
		},
		{
			label: "braces-env",
			name:  "pointsgen.yml",
			content: `
out: ${POINTS_OUT}
`,
			want: config{
				Out: "/tmp/fixture.pts",
			},
		},
		{
			label:   "empty",
			name:    "empty.yaml",
			content: "",
		},
		{
			label:   "unknown-field",
			name:    "pointsgen.yaml",
			content: "points: 30\n",
			wantErr: "not found in type",
		},
		{
			label:   "extension",
			name:    "pointsgen.json",
			content: "{}",
			wantErr: "unsupported config extension",
		},
	} {
		t.Run(c.label, func(t *testing.T) {
			path := writeConfig(t, c.name, c.content)
			var got config
			err := configbp.ParseStrictFile(path, &got)
			if c.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), c.wantErr) {
					t.Fatalf("ParseStrictFile(%q) got error %v, want containing %q", path, err, c.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStrictFile(%q): %s", path, err)
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("Parsed config incorrect: (-got +want)\n%s", diff)
			}
		})
	}
}

func TestParseStrictFileMissing(t *testing.T) {
	var cfg config
	path := filepath.Join(t.TempDir(), "missing.yaml")
	if err := configbp.ParseStrictFile(path, &cfg); err == nil {
		t.Errorf("ParseStrictFile(%q) expected error, got nil", path)
	}
}

func TestParseStrictYAMLDebugOutput(t *testing.T) {
	output := filepath.Join(t.TempDir(), "debug.log")
	zapCfg := zap.NewDevelopmentConfig()
	zapCfg.OutputPaths = []string{output}
	if err := log.InitLoggerWithConfig(log.DebugLevel, zapCfg); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}
	t.Cleanup(func() {
		log.InitLogger(log.DebugLevel)
	})

	var cfg config
	if err := configbp.ParseStrictYAML(strings.NewReader("count: 12\nradius: 0.25\n"), &cfg); err != nil {
		t.Fatalf("ParseStrictYAML returned error: %v", err)
	}
	log.Sync()

	content, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("Failed to read log output: %v", err)
	}
	for _, want := range []string{"Parsed configuration as", "count: 12", "radius: 0.25"} {
		if !strings.Contains(string(content), want) {
			t.Errorf("Expected %q in debug output, got:\n%s", want, content)
		}
	}
}
