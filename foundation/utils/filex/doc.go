// Package filex provides small file system helpers shared by chbrowse
// packages.
//
// Package: filex
// Title: Extended File Operations for Go
// Description: Existence checks, parent directory creation and atomic file
//              replacement.
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2026-10-19 v0.2.0: Reduced to the helpers chbrowse uses
//
// WriteFileAtomic is used for generated files that other processes may be
// reading or watching, such as the speed tracker's offenders file:
//
//	if err := filex.WriteFileAtomic(path, data, 0644); err != nil {
//		return err
//	}
package filex
