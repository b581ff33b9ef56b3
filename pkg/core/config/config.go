// ============================================================================
// chbrowse - OCR Coding Challenge Browser
// ============================================================================
//
// Package:     config
// Description: Typed TOML/YAML configuration with defaults
// Created:     2025-12-01
// License:     MIT
// ============================================================================

package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	cberror "github.com/msto63/chbrowse/foundation/core/error"
	cblog "github.com/msto63/chbrowse/foundation/core/log"
	"github.com/msto63/chbrowse/foundation/utils/filex"
)

// EnvConfigPath names the environment variable holding the config path
const EnvConfigPath = "CHBROWSE_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General      GeneralConfig      `toml:"general" yaml:"general"`
	SpeedTracker SpeedTrackerConfig `toml:"speedtracker" yaml:"speedtracker"`
	History      HistoryConfig      `toml:"history" yaml:"history"`

	// Path is the file the configuration was loaded from, empty for defaults
	Path string `toml:"-" yaml:"-"`
}

// GeneralConfig holds browser and logging settings
type GeneralConfig struct {
	Prompt      string `toml:"prompt" yaml:"prompt"`
	Color       bool   `toml:"color" yaml:"color"`
	ConfirmExit bool   `toml:"confirm_exit" yaml:"confirm_exit"`
	LogLevel    string `toml:"log_level" yaml:"log_level"`
	LogFormat   string `toml:"log_format" yaml:"log_format"`
	LogFile     string `toml:"log_file" yaml:"log_file"`
}

// SpeedTrackerConfig holds the road section parameters
type SpeedTrackerConfig struct {
	SpeedLimitMPH       float64 `toml:"speed_limit_mph" yaml:"speed_limit_mph"`
	CameraDistanceMiles float64 `toml:"camera_distance_miles" yaml:"camera_distance_miles"`
	OutputDir           string  `toml:"output_dir" yaml:"output_dir"`
}

// HistoryConfig holds command history settings
type HistoryConfig struct {
	Enabled   bool     `toml:"enabled" yaml:"enabled"`
	Path      string   `toml:"path" yaml:"path"`
	Retention Duration `toml:"retention" yaml:"retention"`
	Limit     int      `toml:"limit" yaml:"limit"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration
func Default() *Config {
	cfg := &Config{
		General: GeneralConfig{
			Color:       true,
			ConfirmExit: true,
		},
		History: HistoryConfig{
			Enabled: true,
		},
	}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file. Keys missing from the
// file keep their default values.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, configError(nil, "config file not found: "+path, path)
		}
		return nil, configError(err, "failed to read config", path)
	}

	cfg := Default()
	if err := decode(path, data, cfg); err != nil {
		return nil, configError(err, "failed to parse config", path)
	}
	cfg.Path = path

	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromEnv loads the file named by CHBROWSE_CONFIG, or the first default
// location that exists. Without any file the built-in defaults are returned.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	for _, p := range DefaultPaths() {
		if filex.IsFile(p) {
			return Load(p)
		}
	}

	return Default(), nil
}

// DefaultPaths lists the locations searched when no path is given
func DefaultPaths() []string {
	paths := []string{
		"./configs/config.toml",
		"./config.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "chbrowse", "config.toml"),
			filepath.Join(home, ".config", "chbrowse", "config.yaml"),
		)
	}
	return paths
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	default:
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return cberror.Newf("unknown keys: %s", strings.Join(keys, ", "))
		}
		return nil
	}
}

// Validate checks value ranges and enumerations
func (c *Config) Validate() error {
	if c.SpeedTracker.SpeedLimitMPH < 0 {
		return invalid("speedtracker.speed_limit_mph must not be negative", c.SpeedTracker.SpeedLimitMPH)
	}
	if c.SpeedTracker.CameraDistanceMiles <= 0 {
		return invalid("speedtracker.camera_distance_miles must be positive", c.SpeedTracker.CameraDistanceMiles)
	}
	if c.History.Limit < 0 {
		return invalid("history.limit must not be negative", c.History.Limit)
	}
	if c.History.Retention.Duration < 0 {
		return invalid("history.retention must not be negative", c.History.Retention.String())
	}
	if _, err := cblog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level must be one of "+strings.Join(cblog.LevelNames(), ", "), c.General.LogLevel)
	}
	if _, err := cblog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format must be one of text, json, console", c.General.LogFormat)
	}
	return nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Prompt == "" {
		c.General.Prompt = "> "
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	// SpeedTracker
	if c.SpeedTracker.SpeedLimitMPH == 0 {
		c.SpeedTracker.SpeedLimitMPH = 70
	}
	if c.SpeedTracker.CameraDistanceMiles == 0 {
		c.SpeedTracker.CameraDistanceMiles = 1
	}

	// History
	if c.History.Path == "" {
		c.History.Path = defaultHistoryPath()
	}
	if c.History.Limit == 0 {
		c.History.Limit = 20
	}
}

// expandEnvVars expands environment variables in path values
func (c *Config) expandEnvVars() {
	c.General.LogFile = os.ExpandEnv(c.General.LogFile)
	c.SpeedTracker.OutputDir = os.ExpandEnv(c.SpeedTracker.OutputDir)
	c.History.Path = os.ExpandEnv(c.History.Path)
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./data/history.db"
	}
	return filepath.Join(home, ".local", "share", "chbrowse", "history.db")
}

func configError(err error, msg, path string) error {
	var e *cberror.Error
	if err != nil {
		e = cberror.Wrap(err, msg)
	} else {
		e = cberror.New(msg)
	}
	return e.WithCode(cberror.CodeConfigError).
		WithOperation("config.Load").
		WithDetail("path", path)
}

func invalid(msg string, value interface{}) error {
	return cberror.New(msg).
		WithCode(cberror.CodeConfigError).
		WithOperation("config.Validate").
		WithDetail("value", value)
}
