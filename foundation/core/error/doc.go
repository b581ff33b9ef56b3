// Package error provides coded, contextual errors for chbrowse.
//
// Package: error
// Title: chbrowse Error Handling
// Description: Structured errors carrying a Code, a severity, the failing
//              operation and free-form details. Every user-facing failure in
//              the browser (unknown command, wrong argument count, bad number,
//              overflow, malformed record) is one of these, so the shell can
//              print a single line and keep going.
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Challenge browser codes, errors.Is support by code
//
// Usage:
//   import cberror "github.com/msto63/chbrowse/foundation/core/error"
//
//   err := cberror.New("factorial of 21 does not fit in 64 bits").
//     WithCode(cberror.CodeOverflow).
//     WithOperation("factorial.Iterative").
//     WithDetail("input", 21)
//
//   if errors.Is(err, cberror.CodeOverflow) {
//     // ...
//   }
package error
