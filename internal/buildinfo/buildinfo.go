// Package buildinfo reports the version the binary was built with, for the
// CLI's --version flag.
package buildinfo

import "runtime/debug"

// Version is the module version this binary was built from, "(devel)" when
// the main module carries no version (e.g. a plain `go build` outside a
// tagged module checkout), or "(unknown)" when no build information is
// embedded at all.
func Version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "(unknown)"
	}
	if info.Main.Version == "" {
		return "(devel)"
	}
	return info.Main.Version
}
