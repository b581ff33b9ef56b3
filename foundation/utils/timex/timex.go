// File: timex.go
// Title: Core Time Utilities
// Description: Multi-layout time parsing.
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time utilities
// - 2025-07-26 v0.1.1: Added FormatDurationCompact function, fixed business day logic
// - 2026-10-19 v0.2.0: Reduced to layout parsing, added ParseWith

package timex

import (
	"fmt"
	"strings"
	"time"
)

// Layouts accepted by Parse
const (
	ClockTime     = "15:04:05"
	ClockTimeNano = "15:04:05.999999999"
)

// DefaultLayouts are tried in order by Parse
var DefaultLayouts = []string{
	ClockTime,
	ClockTimeNano,
	time.RFC3339,
	time.RFC3339Nano,
}

// ===============================
// Parsing Functions
// ===============================

// Parse parses value with the first of DefaultLayouts that fits
func Parse(value string) (time.Time, error) {
	return ParseWith(value, DefaultLayouts...)
}

// ParseWith parses value with the first layout that fits. Surrounding
// whitespace is ignored.
func ParseWith(value string, layouts ...string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty time string")
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse time string: %s", value)
}
