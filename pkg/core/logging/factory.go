// ============================================================================
// chbrowse - OCR Coding Challenge Browser
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating configured loggers
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	cberror "github.com/msto63/chbrowse/foundation/core/error"
	cblog "github.com/msto63/chbrowse/foundation/core/log"
	"github.com/msto63/chbrowse/foundation/utils/filex"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name, usually the program name
	Name string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format: text, json or console (default: text)
	Format string

	// File receives log output in addition to Output when set
	File string

	// Output defaults to stderr. Stdout belongs to the browser.
	Output io.Writer

	// Verbose lowers the level to debug regardless of Level
	Verbose bool
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  cblog.DefaultLevel().String(),
		Format: "text",
	}
}

// NewLogger creates a logger from cfg. The returned closer releases the log
// file and is never nil.
func NewLogger(cfg LoggerConfig) (*cblog.Logger, io.Closer, error) {
	level, err := cblog.ResolveLevel(cfg.Level, cfg.Verbose)
	if err != nil {
		return nil, nopCloser{}, invalid(err, "level", cfg.Level)
	}

	format := cblog.FormatText
	if cfg.Format != "" {
		f, err := cblog.ParseFormat(cfg.Format)
		if err != nil {
			return nil, nopCloser{}, invalid(err, "format", cfg.Format)
		}
		format = f
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		file, err := openLogFile(cfg.File)
		if err != nil {
			return nil, nopCloser{}, err
		}
		output = io.MultiWriter(output, file)
		closer = file
	}

	logger := cblog.NewWithConfig(cblog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.Name,
	})

	return logger, closer, nil
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(name string) *cblog.Logger {
	logger, _, _ := NewLogger(DefaultLoggerConfig(name))
	return logger
}

func openLogFile(path string) (*os.File, error) {
	if err := filex.EnsureParent(path); err != nil {
		return nil, cberror.Wrap(err, "failed to create log directory").
			WithCode(cberror.CodeConfigError).
			WithDetail("path", path)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, cberror.Wrap(err, "failed to open log file").
			WithCode(cberror.CodeConfigError).
			WithDetail("path", path)
	}
	return file, nil
}

func invalid(err error, field, value string) error {
	return cberror.Wrap(err, "invalid log "+field).
		WithCode(cberror.CodeConfigError).
		WithOperation("logging.NewLogger").
		WithDetail(field, value)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
