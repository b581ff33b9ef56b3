// File: level.go
// Title: Log Levels
// Description: Log levels backed by a name table. Levels round-trip through
//              config text and resolve together with the --verbose flag.
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Standard log levels
// - 2026-10-19 v0.3.0: Name table, text marshalling, ResolveLevel

package log

import (
	"strings"
)

// Level represents the importance level of a log message
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

// levelNames holds the canonical name, the three letter tag used by the text
// formatter and accepted aliases. Indexed by Level.
var levelNames = [...]struct {
	name    string
	short   string
	aliases []string
}{
	LevelTrace: {"trace", "TRC", nil},
	LevelDebug: {"debug", "DBG", nil},
	LevelInfo:  {"info", "INF", []string{"information"}},
	LevelWarn:  {"warn", "WRN", []string{"warning"}},
	LevelError: {"error", "ERR", []string{"err"}},
	LevelFatal: {"fatal", "FTL", nil},
}

func (l Level) valid() bool {
	return l >= LevelTrace && int(l) < len(levelNames)
}

// String returns the canonical lower-case name
func (l Level) String() string {
	if !l.valid() {
		return "unknown"
	}
	return levelNames[l].name
}

// ShortString returns the tag printed by the text formatter
func (l Level) ShortString() string {
	if !l.valid() {
		return "???"
	}
	return levelNames[l].short
}

// Enabled reports whether a message at l passes the minimum level
func (l Level) Enabled(min Level) bool {
	return l >= min
}

// MarshalText writes the canonical name
func (l Level) MarshalText() ([]byte, error) {
	if !l.valid() {
		return nil, &ParseError{Input: l.String(), Type: "level"}
	}
	return []byte(l.String()), nil
}

// UnmarshalText accepts anything ParseLevel does
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel parses a level name, its short tag or an alias, ignoring case
// and surrounding whitespace.
func ParseLevel(level string) (Level, error) {
	s := strings.ToLower(strings.TrimSpace(level))
	for i, n := range levelNames {
		if s == n.name || s == strings.ToLower(n.short) {
			return Level(i), nil
		}
		for _, alias := range n.aliases {
			if s == alias {
				return Level(i), nil
			}
		}
	}
	return LevelInfo, &ParseError{Input: level, Type: "level"}
}

// LevelNames lists the canonical names from most to least verbose
func LevelNames() []string {
	names := make([]string, len(levelNames))
	for i, n := range levelNames {
		names[i] = n.name
	}
	return names
}

// ResolveLevel combines the configured level with the --verbose flag. An
// empty name means DefaultLevel. Verbose never raises a level that is
// already below debug.
func ResolveLevel(name string, verbose bool) (Level, error) {
	level := DefaultLevel()
	if strings.TrimSpace(name) != "" {
		parsed, err := ParseLevel(name)
		if err != nil {
			return level, err
		}
		level = parsed
	}
	if verbose && level > LevelDebug {
		level = LevelDebug
	}
	return level, nil
}

// ParseError represents an error parsing a log configuration value
type ParseError struct {
	Input string
	Type  string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// DefaultLevel returns the level used when nothing is configured. The browser
// writes its own output to stdout, so only warnings and errors are logged.
func DefaultLevel() Level {
	return LevelWarn
}
