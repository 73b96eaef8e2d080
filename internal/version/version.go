// Package version reports the build version of the rag binary.
package version

import (
	"runtime/debug"
	"strings"
	"time"
)

// Version is set with -ldflags "-X github.com/bnema/rag-cli/internal/version.Version=...".
var Version = ""

const unknown = "v0.0.0-unknown"

// Current prefers the linker-provided version, then module build info, then
// a pseudo-version derived from VCS stamps.
func Current() string {
	if v := strings.TrimSpace(Version); v != "" {
		return v
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return unknown
	}
	return fromBuildInfo(info)
}

func fromBuildInfo(info *debug.BuildInfo) string {
	if info == nil {
		return unknown
	}
	if v := strings.TrimSpace(info.Main.Version); v != "" && v != "(devel)" {
		return v
	}

	var revision, stamp string
	var dirty bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.time":
			stamp = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	if revision == "" || stamp == "" {
		return unknown
	}
	parsed, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		return unknown
	}
	if len(revision) > 12 {
		revision = revision[:12]
	}
	v := "v0.0.0-" + parsed.UTC().Format("20060102150405") + "-" + revision
	if dirty {
		v += "+dirty"
	}
	return v
}
