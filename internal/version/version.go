// Package version provides build-time version information.
//
// Variables are set at build time via ldflags:
//
//	go build -ldflags "-X github.com/rickgao/eve-appraisal/internal/version.Version=1.0.0 \
//	                   -X github.com/rickgao/eve-appraisal/internal/version.Commit=$(git rev-parse --short HEAD) \
//	                   -X github.com/rickgao/eve-appraisal/internal/version.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package version

// Build-time variables (set via ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Product names the program towards price providers.
const Product = "eve-appraisal"

// String returns a formatted version string.
func String() string {
	return Product + " " + Version + " (" + Commit + ") built " + BuildTime
}

// UserAgent is sent to providers when no user agent is configured.
func UserAgent() string {
	return Product + "/" + Version + " +https://github.com/rickgao/eve-appraisal"
}
