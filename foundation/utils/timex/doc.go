// Package timex provides time parsing helpers for chbrowse.
//
// Package: timex
// Title: Extended Time Operations for Go
// Description: Parses time values that may come in one of several layouts,
//              such as the clock times and timestamps typed for speed cameras.
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time utilities
// - 2026-10-19 v0.2.0: Reduced to layout parsing
//
// Usage:
//
//	t, err := timex.Parse("08:15:00")
//	t, err = timex.ParseWith("2016-03-01", "2006-01-02")
package timex
