// ============================================================================
// chbrowse - OCR Coding Challenge Browser
// ============================================================================
//
// Package:     version
// Description: Central version management for the browser and its challenges
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
	"strings"
)

// Version constants
const (
	// Browser version
	Browser = "1.0.0"

	// Challenge versions
	FactorialFinder = "1.0.0"
	SpeedTracker    = "1.1.0"
)

// Set at build time via -ldflags "-X ..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ChallengeVersion returns the version for a given challenge name. Unknown
// names get the browser version.
func ChallengeVersion(name string) string {
	switch strings.ToLower(name) {
	case "factorialfinder":
		return FactorialFinder
	case "speedtracker":
		return SpeedTracker
	default:
		return Browser
	}
}

// String returns the one-line version banner
func String() string {
	return fmt.Sprintf("chbrowse %s (commit %s, built %s, %s/%s)",
		Browser, Commit, BuildDate, runtime.GOOS, runtime.GOARCH)
}
