package version

// Set via -ldflags at build time.
var (
	VERSION = "dev"
	COMMIT  = "unknown"
)
