// Package buildinfo contains build information.
//
// Build information should be set during compilation by passing
// -ldflags "-X src.anchorpwd.dev/pkg/buildinfo.Var=value" to "go build" or
// "go get".
package buildinfo

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"src.anchorpwd.dev/pkg/prog"
)

// VersionBase is the version of anchorpwd. On development commits, it
// identifies the next release.
const VersionBase = "0.1.0"

// Release identifies whether this is a release build. It can be set to
// "true" when building a release.
var Release = "false"

// VCSOverride may be set to identify the commit of a development build when
// the Go toolchain can't read VCS information, for example when building
// from a source tarball. It should look like "20220401235958-123456789012".
var VCSOverride string

// Type contains all the build information fields.
type Type struct {
	Version   string `json:"version"`
	GoVersion string `json:"goversion"`
}

// Value contains all the build information.
var Value = Type{
	Version:   version(),
	GoVersion: runtime.Version(),
}

func version() string {
	if Release == "true" {
		return VersionBase
	}
	return devVersion(VersionBase, VCSOverride, debug.ReadBuildInfo)
}

func devVersion(next, vcsOverride string, readBuildInfo func() (*debug.BuildInfo, bool)) string {
	if vcsOverride != "" {
		return next + "-dev.0." + vcsOverride
	}
	fallback := next + "-dev.unknown"
	bi, ok := readBuildInfo()
	if !ok {
		return fallback
	}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		return strings.TrimPrefix(v, "v")
	}
	var revision, modified string
	var vcsTime time.Time
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.time":
			t, err := time.Parse(time.RFC3339, setting.Value)
			if err != nil {
				return fallback
			}
			vcsTime = t
		case "vcs.modified":
			modified = setting.Value
		}
	}
	if len(revision) < 12 || vcsTime.IsZero() {
		return fallback
	}
	v := fmt.Sprintf("%s-dev.0.%s-%s",
		next, vcsTime.UTC().Format("20060102150405"), revision[:12])
	if modified == "true" {
		v += "-dirty"
	}
	return v
}

// Program is the buildinfo subprogram.
type Program struct{}

// Run prints the version with -version and all build information with
// -buildinfo, and is not suitable otherwise.
func (Program) Run(fds [3]*os.File, f *prog.Flags, _ []string) error {
	switch {
	case f.BuildInfo:
		if f.JSON {
			fmt.Fprintln(fds[1], mustToJSON(Value))
		} else {
			fmt.Fprintln(fds[1], "Version:", Value.Version)
			fmt.Fprintln(fds[1], "Go version:", Value.GoVersion)
		}
	case f.Version:
		if f.JSON {
			fmt.Fprintln(fds[1], mustToJSON(Value.Version))
		} else {
			fmt.Fprintln(fds[1], Value.Version)
		}
	default:
		return prog.ErrNotSuitable
	}
	return nil
}

func mustToJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}
