// Package log provides structured logging for chbrowse.
//
// Package: log
// Title: chbrowse Structured Logging
// Description: Leveled, structured logger with persistent context fields,
//              session tagging and JSON, text or colored console output.
//              Coded errors from foundation/core/error are logged with their
//              code, severity and details as fields.
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Usage:
//   import cblog "github.com/msto63/chbrowse/foundation/core/log"
//
//   logger := cblog.New().
//     WithLevel(cblog.LevelDebug).
//     WithFormat(cblog.FormatJSON).
//     WithField("component", "shell")
//
//   logger.Info("command dispatched", cblog.Fields{
//     "command": "FactorialFinder",
//     "args":    1,
//   })
//   logger.LogError(err)
package log
