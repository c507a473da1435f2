// Package limitopen opens files for reading with size limits.
package limitopen

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/reddit/pointsgen/internal/prometheusbpint"
	"github.com/reddit/pointsgen/log"
)

const (
	promNamespace = "limitopen"

	pathLabel = "path"
)

var (
	sizeGauge = promauto.With(prometheusbpint.GlobalRegistry).NewGaugeVec(prometheus.GaugeOpts{
		Namespace: promNamespace,
		Name:      "file_size_bytes",
		Help:      "The size of the file opened by limitopen.OpenWithLimit",
	}, []string{pathLabel})

	softLimitCounter = promauto.With(prometheusbpint.GlobalRegistry).NewCounterVec(prometheus.CounterOpts{
		Namespace: promNamespace,
		Name:      "softlimit_violation_total",
		Help:      "The total number of violations of softlimit",
	}, []string{pathLabel})
)

// Open opens a path for read.
//
// Unlike os.Open it also returns the size reported by the system,
// and the returned reader never reads beyond that size
// (e.g. reading /dev/zero gives EOF immediately).
//
// It never returns both non-nil r and err.
// When err is nil it's the caller's responsibility to close r.
func Open(path string) (r io.ReadCloser, size int64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("limitopen.Open: failed to open file %q: %w", path, err)
	}

	var stats fs.FileInfo
	stats, err = f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("limitopen.Open: failed to get the size of %q: %w", path, err)
	}

	size = stats.Size()
	return readCloser{
		Reader: io.LimitReader(f, size),
		Closer: f,
	}, size, nil
}

type readCloser struct {
	io.Reader
	io.Closer
}

// OpenWithLimit calls Open with limit checks.
//
// The size is always reported as the limitopen_file_size_bytes gauge.
// When softLimit > 0 and the size is larger, it logs at warn level and
// increases limitopen_softlimit_violation_total.
// When hardLimit > 0 and the size is larger, the file is closed and an error
// returned.
func OpenWithLimit(path string, softLimit, hardLimit int64) (io.ReadCloser, error) {
	r, size, err := Open(path)
	if err != nil {
		return nil, err
	}

	pathValue := filepath.Base(path)
	sizeGauge.WithLabelValues(pathValue).Set(float64(size))

	if softLimit > 0 && size > softLimit {
		log.Warnw(
			"limitopen.OpenWithLimit: file size > soft limit",
			"path", path,
			"size", size,
			"limit", softLimit,
		)
		softLimitCounter.WithLabelValues(pathValue).Inc()
	}

	if hardLimit > 0 && size > hardLimit {
		r.Close()
		return nil, fmt.Errorf(
			"limitopen.OpenWithLimit: file size %d > hard limit %d for path %q",
			size,
			hardLimit,
			path,
		)
	}

	return r, nil
}
