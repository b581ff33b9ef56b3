// File: severity.go
// Title: Error Severity Levels
// Description: Severity classification used by the logger to pick a level
//              when an error is logged.
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow is a user mistake. The browser reports it and continues.
	SeverityLow Severity = iota

	// SeverityMedium affects a single operation.
	SeverityMedium

	// SeverityHigh prevents a component from working (config, storage).
	SeverityHigh

	// SeverityCritical makes the program unusable.
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}
