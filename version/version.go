package version

// Overridden at build time via -ldflags.
var (
	Version  = "dev"
	Revision = "unknown"
)
