package prometheusbpint

import (
	"runtime/debug"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var goModules = promauto.With(GlobalRegistry).NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "pointsgen",
	Name:      "go_modules",
	Help:      "Version information of the main module and its dependencies. Always 1.",
}, []string{"go_module", "module_role", "replaced", "module_version"})

// RecordModuleVersions exports info as the pointsgen_go_modules gauge.
func RecordModuleVersions(info *debug.BuildInfo) {
	record := func(role string, mod *debug.Module) {
		goModules.WithLabelValues(
			mod.Path,
			role,
			strconv.FormatBool(mod.Replace != nil),
			mod.Version,
		).Set(1)
	}

	goModules.Reset()
	record("main", &info.Main)
	for _, dep := range info.Deps {
		record("dependency", dep)
	}
}

// RecordBuildInfo calls RecordModuleVersions with the running binary's build
// info, when it's available.
func RecordBuildInfo() {
	if info, ok := debug.ReadBuildInfo(); ok {
		RecordModuleVersions(info)
	}
}
