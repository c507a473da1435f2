package log

import (
	"os"
	"runtime/debug"
)

// Version is added to every log line under VersionLogKey and reported to
// sentry as the release.
//
// It can be stamped at build time:
//
//	go build -ldflags "-X github.com/reddit/pointsgen/log.Version=$(git rev-parse HEAD)"
//
// Otherwise it's read from the vcs info in the build, then from the VERSION
// environment variable.
// It must be set before the Init* functions are called to have any effect.
var (
	VersionLogKey = "v"

	Version string
)

func init() {
	if Version == "" {
		info, _ := debug.ReadBuildInfo()
		Version = resolveVersion(info, os.Getenv)
	}
}

const versionEnvVar = "VERSION"

// resolveVersion prefers the build info, then the VERSION environment
// variable. info can be nil.
func resolveVersion(info *debug.BuildInfo, getenv func(string) string) string {
	if info != nil {
		if v := getVersionFromBuildInfo(info); v != "" {
			return v
		}
	}
	return getenv(versionEnvVar)
}

func getVersionFromBuildInfo(info *debug.BuildInfo) string {
	const (
		versionKey  = "vcs.revision"
		dirtyKey    = "vcs.modified"
		dirtySuffix = "-dirty"

		untaggedMainVersion = "(devel)"
	)
	var v string
	var dirty bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case versionKey:
			v = setting.Value
		case dirtyKey:
			dirty = setting.Value == "true"
		}
	}
	if v != "" {
		if dirty {
			v += dirtySuffix
		}
		return v
	}
	if info.Main.Version != untaggedMainVersion {
		return info.Main.Version
	}
	return ""
}
