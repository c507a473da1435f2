package promtest

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/reddit/pointsgen/errorsbp"
)

var (
	errPrefix         = errors.New("the prefix is not at the beginning of the metric name")
	errLength         = errors.New("metric name should have a minimum of 3 parts, like prefix_name_suffix")
	errCount          = errors.New("wrong metric count for prefix")
	errPrometheusLint = errors.New("problem with Prometheus GatherAndLint")
)

// ValidateSpec checks the metrics gathered from g whose names start with
// metricPrefix: each one must pass promlint and follow the
// <prefix>_<name>_<suffix> naming, and there must be wantMetricCount of them.
func ValidateSpec(t *testing.T, g prometheus.Gatherer, metricPrefix string, wantMetricCount int) {
	t.Helper()
	var batch errorsbp.Batch
	gotMetricCount, err := validateSpec(g, metricPrefix)
	batch.Add(err)
	if gotMetricCount != wantMetricCount {
		batch.Add(fmt.Errorf("%w: got %d, want %d", errCount, gotMetricCount, wantMetricCount))
	}
	if err := batch.Compile(); err != nil {
		t.Error(err)
	}
}

func validateSpec(g prometheus.Gatherer, metricPrefix string) (int, error) {
	var metricCount int
	var batch errorsbp.Batch

	families, err := g.Gather()
	if err != nil {
		return 0, err
	}
	for _, m := range families {
		name := m.GetName()
		if !strings.HasPrefix(name, metricPrefix) {
			continue
		}
		metricCount++
		batch.Add(validatePromLint(g, name))
		batch.Add(validateName(name, metricPrefix))
	}
	return metricCount, batch.Compile()
}

// validateName checks that the metric name has at least 3 "_" separated parts
// (https://prometheus.io/docs/practices/naming) and starts with prefix.
func validateName(name, prefix string) error {
	const metricPartSeparator = "_"
	var batch errorsbp.Batch
	if parts := strings.Split(name, metricPartSeparator); len(parts) < 3 {
		batch.Add(fmt.Errorf("%w: %s has %d parts", errLength, name, len(parts)))
	}
	if !strings.HasPrefix(name, prefix+metricPartSeparator) {
		batch.Add(fmt.Errorf("%w: got %s, want prefix %s", errPrefix, name, prefix+metricPartSeparator))
	}
	return batch.Compile()
}

func validatePromLint(g prometheus.Gatherer, metricName string) error {
	var batch errorsbp.Batch
	problems, err := testutil.GatherAndLint(g, metricName)
	batch.Add(err)
	for _, p := range problems {
		batch.Add(fmt.Errorf("%w: metric %s, problem %s", errPrometheusLint, metricName, p.Text))
	}
	return batch.Compile()
}
