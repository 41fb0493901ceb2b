// Package build holds build-time metadata.
package build

// Version is the lode version string. It defaults to "dev" and is set by
// linker flags in release builds.
var Version = "dev"
