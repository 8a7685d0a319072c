package promtest

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/reddit/twister.go/errorsbp"
)

var (
	errPrefix         = errors.New("the prefix is not at the beginning of the metric name")
	errLength         = errors.New("metric name should have a minimum of 3 parts, like prefix_name_suffix")
	errCount          = errors.New("wrong metric count for prefix")
	errPrometheusLint = errors.New("problem with Prometheus GatherAndLint")
)

// ValidateMetrics checks the metrics gathered from gatherer whose names begin
// with prefix.
//
// Every one of them must pass promlint and be named prefix_name_suffix,
// and there must be exactly wantCount of them.
// Vectors only show up once at least one child was created,
// so touch every vector before calling it.
func ValidateMetrics(tb testing.TB, gatherer prometheus.Gatherer, prefix string, wantCount int) {
	tb.Helper()
	if err := validateMetrics(gatherer, prefix, wantCount); err != nil {
		tb.Error(err)
	}
}

func validateMetrics(gatherer prometheus.Gatherer, prefix string, wantCount int) error {
	families, err := gatherer.Gather()
	if err != nil {
		return fmt.Errorf("promtest: gathering metrics: %w", err)
	}

	var batch errorsbp.Batch
	var count int
	for _, mf := range families {
		name := mf.GetName()
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		count++
		batch.Add(validateName(name, prefix))
		problems, err := testutil.GatherAndLint(gatherer, name)
		batch.Add(err)
		for _, p := range problems {
			batch.Add(fmt.Errorf("%w: metric %s, problem %s", errPrometheusLint, name, p.Text))
		}
	}
	if count != wantCount {
		batch.Add(fmt.Errorf("%w: got %d, want %d", errCount, count, wantCount))
	}
	return batch.Compile()
}

// validateName checks that the metric name has the prefix and at least 3
// parts separated by "_": <namespace>_<metric>_<suffix>.
//
// Ref: https://prometheus.io/docs/practices/naming
func validateName(name, prefix string) error {
	const separator = "_"
	var batch errorsbp.Batch
	if parts := strings.Split(name, separator); len(parts) < 3 {
		batch.Add(fmt.Errorf("%w: got %d, want >= 3", errLength, len(parts)))
	}
	if !strings.HasPrefix(name, prefix+separator) {
		batch.Add(fmt.Errorf("%w: got %s, want prefix %s", errPrefix, name, prefix+separator))
	}
	return batch.Compile()
}
