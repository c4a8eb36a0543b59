// Package misc provides program identity helpers shared by logging and the
// command line surface.
package misc

import "runtime/debug"

const appName = "cssb"

// set at build time via -ldflags "-X cssb/misc.appVersion=..."
var appVersion = "development"

// GetAppName returns the short program name used for logger naming and
// temporary files.
func GetAppName() string {
	return appName
}

// GetVersion returns program version.
func GetVersion() string {
	return appVersion
}

// GetGitHash returns the VCS revision recorded in build info, or "unknown"
// when building outside of a repository.
func GetGitHash() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
