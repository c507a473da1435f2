package points

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/reddit/pointsgen/internal/prometheusbpint"
)

const (
	promNamespace = "pointsgen"

	outcomeLabel = "outcome"

	outcomeOK      = "ok"
	outcomeInvalid = "invalid_argument"
	outcomeIO      = "io_error"
)

var (
	filesCounter = promauto.With(prometheusbpint.GlobalRegistry).NewCounterVec(prometheus.CounterOpts{
		Namespace: promNamespace,
		Name:      "files_total",
		Help:      "Total number of points file generations, by outcome",
	}, []string{outcomeLabel})

	pointsCounter = promauto.With(prometheusbpint.GlobalRegistry).NewCounter(prometheus.CounterOpts{
		Namespace: promNamespace,
		Name:      "points_total",
		Help:      "Total number of points written to points files",
	})

	bytesCounter = promauto.With(prometheusbpint.GlobalRegistry).NewCounter(prometheus.CounterOpts{
		Namespace: promNamespace,
		Name:      "written_bytes_total",
		Help:      "Total number of bytes written to points files",
	})
)
