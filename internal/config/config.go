package config

import (
	"os"

	"github.com/prettymuchbryce/mobiletest/internal/pathutil"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file settings.
const (
	EnvLogLevel   = "MOBILETEST_LOG_LEVEL"
	EnvReportPath = "MOBILETEST_REPORT_PATH"
	EnvProfile    = "MOBILETEST_PROFILE"
)

// Config represents the top-level configuration.
type Config struct {
	Report  ReportConfig  `yaml:"report"`
	Logging LoggingConfig `yaml:"logging"`

	// Profile is an optional path to an alternate device profile.
	// Empty uses the built-in tables.
	Profile string `yaml:"profile"`

	// Categories restricts the run to categories matching these globs.
	Categories []string `yaml:"categories"`
}

// ReportConfig represents report output configuration.
type ReportConfig struct {
	// Path is a template; relative paths are resolved beside the executable.
	// Empty writes mobile-test-report.json beside the executable.
	Path string `yaml:"path"`
}

// LoggingConfig represents logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultReportConfig returns the default report configuration.
func DefaultReportConfig() ReportConfig {
	return ReportConfig{}
}

// DefaultLoggingConfig returns the default logging configuration.
func DefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Level: "warn",
	}
}

// Default returns a config with every default applied.
func Default() *Config {
	return &Config{
		Report:  DefaultReportConfig(),
		Logging: DefaultLoggingConfig(),
	}
}

// Load reads and parses a configuration file using the real filesystem.
func Load(path string) (*Config, error) {
	return LoadWithFs(path, afero.NewOsFs())
}

// LoadWithFs reads and parses a configuration file using the provided filesystem.
// An empty path returns the defaults.
func LoadWithFs(path string, afs afero.Fs) (*Config, error) {
	config := Default()
	if path == "" {
		return config, nil
	}

	data, err := afero.ReadFile(afs, pathutil.ExpandTilde(path))
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// ApplyEnv overrides settings from the environment.
func (c *Config) ApplyEnv() {
	c.applyEnv(os.LookupEnv)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookup(EnvReportPath); ok && v != "" {
		c.Report.Path = v
	}
	if v, ok := lookup(EnvProfile); ok && v != "" {
		c.Profile = v
	}
}
