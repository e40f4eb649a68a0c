// Package config contains the configuration controlling how the wrapped
// libraries are resolved and how the aggregation layer logs.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"myfinlab/loader"
)

// EnvPluginPath, when set, prepends extra plugin search directories. It uses
// the platform path-list separator.
const EnvPluginPath = "MYFINLAB_PLUGIN_PATH"

// EnvLogLevel, when set, overrides the configured log level.
const EnvLogLevel = "MYFINLAB_LOG_LEVEL"

// Config controls library resolution and logging for the unified namespace.
type Config struct {
	Libraries   map[string]*LibraryConfig `yaml:"libraries"`
	SearchPaths []string                  `yaml:"search_paths,omitempty"`
	Logging     *LoggingConfig            `yaml:"logging,omitempty"`
}

// LibraryConfig configures the resolution of a single wrapped library.
type LibraryConfig struct {
	Enabled bool `yaml:"enabled"`

	// PluginPath points at an explicit plugin file, bypassing the search
	// paths.
	PluginPath string `yaml:"plugin_path,omitempty"`
}

// LoggingConfig configures the shared loggers.
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`
	OutputFile string `yaml:"output_file,omitempty"`
	MaxSizeMB  int    `yaml:"max_size_mb,omitempty"`
	MaxBackups int    `yaml:"max_backups,omitempty"`
	MaxAgeDays int    `yaml:"max_age_days,omitempty"`
	Compress   bool   `yaml:"compress,omitempty"`
}

// LoadConfig loads configuration from a YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	config.ApplyEnv()

	return &config, nil
}

// SaveConfig saves configuration to a YAML file.
func SaveConfig(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GenerateDefaultConfig writes the default configuration to path.
func GenerateDefaultConfig(path string) error {
	return SaveConfig(GetDefaultConfig(), path)
}

// validateConfig rejects configuration for libraries the manifests do not
// declare.
func validateConfig(config *Config) error {
	if config.Libraries == nil {
		config.Libraries = make(map[string]*LibraryConfig)
	}

	known := make(map[string]bool)
	for _, m := range loader.Manifests() {
		known[m.Library] = true
	}

	for name := range config.Libraries {
		if !known[name] {
			return fmt.Errorf("unknown library %s", name)
		}
	}

	return nil
}

// ApplyEnv applies environment overrides on top of the loaded configuration.
func (c *Config) ApplyEnv() {
	if extra := os.Getenv(EnvPluginPath); extra != "" {
		c.SearchPaths = append(filepath.SplitList(extra), c.SearchPaths...)
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		if c.Logging == nil {
			c.Logging = &LoggingConfig{}
		}
		c.Logging.Level = level
	}
}

// LibraryEnabled reports whether a library should be resolved at all.
// Libraries without an explicit block default to enabled.
func (c *Config) LibraryEnabled(name string) bool {
	lc, exists := c.Libraries[name]
	if !exists {
		return true
	}
	return lc.Enabled
}

// PluginOverrides collects the explicit plugin paths per library.
func (c *Config) PluginOverrides() map[string]string {
	overrides := make(map[string]string)
	for name, lc := range c.Libraries {
		if lc != nil && lc.PluginPath != "" {
			overrides[name] = lc.PluginPath
		}
	}
	return overrides
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".myfinlab", "config.yaml")
}

// GetDefaultConfig returns a configuration that resolves both wrapped
// libraries from the default plugin directories.
func GetDefaultConfig() *Config {
	libraries := make(map[string]*LibraryConfig)
	for _, m := range loader.Manifests() {
		libraries[m.Library] = &LibraryConfig{Enabled: true}
	}

	searchPaths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		searchPaths = append([]string{filepath.Join(home, ".myfinlab", "plugins")}, searchPaths...)
	}

	config := &Config{
		Libraries:   libraries,
		SearchPaths: searchPaths,
		Logging: &LoggingConfig{
			Level:      "info",
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}
	config.ApplyEnv()

	return config
}
