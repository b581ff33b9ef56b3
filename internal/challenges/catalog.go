// ============================================================================
// chbrowse - OCR Coding Challenge Browser
// ============================================================================
//
// Package:     challenges
// Description: Static registration table binding challenge handlers to
//              registry descriptors
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package challenges

import (
	"github.com/msto63/chbrowse/internal/challenges/factorial"
	"github.com/msto63/chbrowse/internal/challenges/speedtrack"
	"github.com/msto63/chbrowse/internal/registry"

	cblog "github.com/msto63/chbrowse/foundation/core/log"
)

// Settings carries the configuration challenges need
type Settings struct {
	SpeedTracker speedtrack.Settings
	Logger       *cblog.Logger
}

// DefaultSettings returns the booklet defaults
func DefaultSettings() Settings {
	return Settings{SpeedTracker: speedtrack.DefaultSettings()}
}

// Commands returns the descriptors of every shipped challenge
func Commands(s Settings) []registry.Command {
	return []registry.Command{
		{
			Name:        factorial.Name,
			Index:       factorial.Index,
			Aliases:     factorial.Aliases,
			MinArgs:     1,
			MaxArgs:     2,
			Summary:     factorial.Summary,
			Usage:       factorial.Usage,
			Description: factorial.Description,
			Handler:     factorial.Run,
		},
		{
			Name:        speedtrack.Name,
			Index:       speedtrack.Index,
			Aliases:     speedtrack.Aliases,
			MinArgs:     1,
			MaxArgs:     3,
			Summary:     speedtrack.Summary,
			Usage:       speedtrack.Usage,
			Description: speedtrack.Description,
			Handler:     s.SpeedTracker.Run,
		},
	}
}

// Aliases is the cross-challenge alias table. Per-challenge aliases live on
// the descriptors.
var Aliases = map[string]string{
	"factorialfind": "factorial",
	"speedcamera":   "speed",
}

// New builds the challenge registry
func New(s Settings) (*registry.Registry, error) {
	return registry.BuildWithOptions(Commands(s), Aliases, registry.Options{Logger: s.Logger})
}
