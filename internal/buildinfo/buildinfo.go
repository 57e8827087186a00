package buildinfo

import "fmt"

// Set with -ldflags "-X github.com/hupe1980/zipstate/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("zipstate %s (commit=%s, date=%s)", Version, Commit, Date)
}
