// Package prometheusbpint holds the prometheus registry shared by pointsgen
// packages.
package prometheusbpint

import (
	"github.com/prometheus/client_golang/prometheus"
)

// GlobalRegistry is the registry all pointsgen metrics are registered with.
//
// It's separate from prometheus.DefaultRegisterer so a textfile dump only
// contains metrics from this module, without the go runtime collectors.
var GlobalRegistry = prometheus.NewRegistry()
