package version

import "fmt"

// Build metadata, injected through -ldflags at release time. Local builds
// report the defaults below.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
	Dirty   = "false"
)

// String renders the build identity in one line for startup logs.
func String() string {
	s := fmt.Sprintf("%s (%s, %s)", Version, Commit, Date)
	if Dirty == "true" {
		s += " dirty"
	}
	return s
}
