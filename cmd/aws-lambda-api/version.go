package main

import "runtime/debug"

// version can be set via ldflags: -ldflags "-X main.version=v1.0.0".
var version = ""

// getVersion prefers the ldflags value, then the module version recorded by
// "go install @version", and falls back to "dev".
func getVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return info.Main.Version
		}
	}
	return "dev"
}
