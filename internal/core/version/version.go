// Package version carries the classifier contract version and build metadata.
package version

// CoreVersion is the classifier contract version. Warm-up returns it and
// the version endpoints report it alongside the build info
const CoreVersion = "1.2.0"

// BuildInfo holds version information about a binary build.
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the build information for the named binary. The version,
// commit, and date variables are intended to be set at build time using -ldflags.
func Info(service string) BuildInfo {
	// Set via -ldflags "-X 'langid/internal/core/version.version=v0.1.0'
	// -X 'langid/internal/core/version.commit=abcd' -X 'langid/internal/core/version.date=2025-09-02'"
	return BuildInfo{
		Service: service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
