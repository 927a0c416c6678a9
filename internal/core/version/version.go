// Package version provides information about the build version of the service.
package version

import "fmt"

// BuildInfo holds version information about the service build.
type BuildInfo struct {
	Service string `json:"service" example:"tgage-api"`
	Version string `json:"version" example:"v0.1.0"`
	Commit  string `json:"commit"  example:"abcd123"`
	Date    string `json:"date"    example:"2025-07-18"`
}

// String renders a one line summary for CLIs and logs
func (b BuildInfo) String() string {
	return fmt.Sprintf("%s %s (%s, %s)", b.Service, b.Version, b.Commit, b.Date)
}

// Info returns the build information for the API binary.
func Info() BuildInfo { return For("tgage-api") }

// For returns the build information labelled with service
func For(service string) BuildInfo {
	// Set via -ldflags "-X 'tgage/internal/core/version.version=v0.1.0'
	// -X 'tgage/internal/core/version.commit=abcd' -X 'tgage/internal/core/version.date=2025-07-18'"
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
