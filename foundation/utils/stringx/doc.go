// File: doc.go
// Title: String Utilities Package Documentation
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19

/*
Package stringx holds the small string helpers shared by the registry, the
shell and the console renderer: blank checks, case-insensitive membership,
rune-aware padding and truncation.
*/
package stringx
