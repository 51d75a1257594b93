package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	// Version is the release version.
	Version = "0.0.0"

	// Revision is the VCS revision the binary was built from.
	Revision = "unknown"
)

func init() {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	if Version == "0.0.0" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		Version = bi.Main.Version
	}

	if Revision != "unknown" {
		return
	}

	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			Revision = s.Value
		}
	}
}

// String returns the version, revision and Go version.
func String() string {
	return fmt.Sprintf("%s (%s, %s)", Version, Revision, runtime.Version())
}
