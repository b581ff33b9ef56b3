// File: codes.go
// Title: Error Code Definitions
// Description: Standardized error codes. A Code is itself an error so that
//              callers can match with errors.Is(err, CodeOverflow).
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown         Code = "UNKNOWN"
	CodeInternal        Code = "INTERNAL"
	CodeInvalidArgument Code = "INVALID_ARGUMENT"

	// Command dispatch
	CodeUnknownCommand  Code = "UNKNOWN_COMMAND"
	CodeArgumentCount   Code = "ARGUMENT_COUNT"
	CodeInvalidRegistry Code = "INVALID_REGISTRY"

	// Numeric challenges
	CodeInvalidNumber Code = "INVALID_NUMBER"
	CodeNegativeInput Code = "NEGATIVE_INPUT"
	CodeOverflow      Code = "OVERFLOW"

	// Record files
	CodeFileNotFound    Code = "FILE_NOT_FOUND"
	CodeMalformedRecord Code = "MALFORMED_RECORD"

	// Ambient
	CodeConfigError  Code = "CONFIG_ERROR"
	CodeStorageError Code = "STORAGE_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// Error makes Code usable as an errors.Is target
func (c Code) Error() string {
	return string(c)
}

// IsUserError reports whether the code describes bad user input rather than
// a failure of the program or its environment.
func (c Code) IsUserError() bool {
	switch c {
	case CodeInvalidArgument, CodeUnknownCommand, CodeArgumentCount,
		CodeInvalidNumber, CodeNegativeInput, CodeOverflow,
		CodeFileNotFound, CodeMalformedRecord:
		return true
	default:
		return false
	}
}

// DefaultSeverity returns the severity an error with this code gets unless
// one is set explicitly.
func (c Code) DefaultSeverity() Severity {
	switch {
	case c.IsUserError():
		return SeverityLow
	case c == CodeConfigError, c == CodeStorageError, c == CodeInvalidRegistry:
		return SeverityHigh
	default:
		return SeverityMedium
	}
}
