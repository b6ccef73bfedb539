// Package buildinfo holds version data stamped in with
// -ldflags "-X voxelspace/internal/buildinfo.Version=...".
package buildinfo

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for titles and the splash.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Long returns version, commit and date for the startup log.
func Long() string {
	return Version + " (" + Commit + ", " + Date + ")"
}
