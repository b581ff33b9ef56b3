// ============================================================================
// chbrowse - OCR Coding Challenge Browser
// ============================================================================
//
// Package:     registry
// Description: Immutable command registry with alias resolution
// Created:     2026-10-19
// License:     MIT
// ============================================================================

/*
Package registry maps command identifiers typed at the browser prompt to
command descriptors.

A Registry is built once from a static list of commands and an alias table
and is read-only afterwards, so it can be shared without locking. Lookups are
case-insensitive. Aliases may point at other aliases; Build rejects dangling
aliases and cycles so that every alias ends at exactly one command.
*/
package registry
