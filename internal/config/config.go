package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Global settings
	Format  string `mapstructure:"format"`
	Quiet   bool   `mapstructure:"quiet"`
	Verbose bool   `mapstructure:"verbose"`
	NoColor bool   `mapstructure:"no_color"`

	// Report section limits
	Report ReportConfig `mapstructure:"report"`
}

// ReportConfig caps how many findings each report section lists in full.
type ReportConfig struct {
	MaxErrors      int `mapstructure:"max_errors"`
	MaxSecurity    int `mapstructure:"max_security"`
	MaxPerformance int `mapstructure:"max_performance"`
	MaxTraces      int `mapstructure:"max_traces"`
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		Format:  "text",
		Quiet:   false,
		Verbose: false,
		Report: ReportConfig{
			MaxErrors:      10,
			MaxSecurity:    10,
			MaxPerformance: 5,
			MaxTraces:      3,
		},
	}
}

// Load loads configuration from files and environment
// Config file search order (highest precedence first):
// 1. ./.fltriage.yaml or ./.fltriage.yml
// 2. ~/.fltriage.yaml or ~/.fltriage.yml
// 3. $XDG_CONFIG_HOME/fltriage/config.yaml (or ~/.config/fltriage/config.yaml)
// 4. /etc/fltriage/config.yaml
func Load() (*Config, error) {
	cfg := Default()

	configFile := findConfigFile()
	if configFile != "" {
		v := viper.New()
		v.SetConfigFile(configFile)

		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}

		if err := v.Unmarshal(cfg); err != nil {
			return nil, err
		}
	}

	// Override with environment variables
	applyEnvOverrides(cfg)

	return cfg, nil
}

// findConfigFile searches for config file in standard locations
func findConfigFile() string {
	names := []string{".fltriage.yaml", ".fltriage.yml", "fltriage.yaml", "fltriage.yml"}

	home, homeErr := os.UserHomeDir()
	configDir, configDirErr := os.UserConfigDir()

	// Search locations in order of precedence (highest first)
	var searchPaths []string

	cwd, err := os.Getwd()
	if err == nil {
		searchPaths = append(searchPaths, cwd)
	}
	if homeErr == nil {
		searchPaths = append(searchPaths, home)
	}
	if configDirErr == nil {
		searchPaths = append(searchPaths, filepath.Join(configDir, "fltriage"))
	}
	searchPaths = append(searchPaths, "/etc/fltriage")

	for _, dir := range searchPaths {
		for _, name := range names {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
		// Also check for config.yaml in subdirs
		path := filepath.Join(dir, "config.yaml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FLTRIAGE_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("FLTRIAGE_QUIET"); v == "true" || v == "1" {
		cfg.Quiet = true
	}
	if v := os.Getenv("FLTRIAGE_VERBOSE"); v == "true" || v == "1" {
		cfg.Verbose = true
	}
	if v := os.Getenv("FLTRIAGE_NO_COLOR"); v == "true" || v == "1" {
		cfg.NoColor = true
	}
}

// LoadFromFile loads configuration from a specific file
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ConfigFile returns the path to the config file that would be loaded
func ConfigFile() string {
	return findConfigFile()
}
