// Package config provides configuration management for netupdate.
//
// Settings come from, in increasing priority: built-in defaults, the config
// file, NETUPDATE_* environment variables (including those set by .env
// files), and command line flags bound to the same keys.
//
// Config file locations (priority order):
//  1. --config flag or $NETUPDATE_CONFIG
//  2. ./netupdate.yaml
//  3. $XDG_CONFIG_HOME/netupdate/config.yaml
//  4. ~/.config/netupdate/config.yaml
//  5. /etc/netupdate/config.yaml
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable key
const EnvPrefix = "NETUPDATE"

// Config is the complete netupdate configuration
type Config struct {
	Inventory InventoryConfig `mapstructure:"inventory" yaml:"inventory"`
	Output    OutputConfig    `mapstructure:"output" yaml:"output"`
	Session   SessionConfig   `mapstructure:"session" yaml:"session"`
	Logging   LoggingConfig   `mapstructure:"logging" yaml:"logging"`
}

// InventoryConfig names the router and switch sources. A source is a file
// path (JSON or YAML) or "sqlite:<path>".
type InventoryConfig struct {
	Routers  string `mapstructure:"routers" yaml:"routers"`
	Switches string `mapstructure:"switches" yaml:"switches"`
}

// OutputConfig names the two result files and their format
type OutputConfig struct {
	Updated string `mapstructure:"updated" yaml:"updated"`
	Errors  string `mapstructure:"errors" yaml:"errors"`
	Format  string `mapstructure:"format" yaml:"format"`
}

// SessionConfig tunes the interactive loop
type SessionConfig struct {
	// MaxIPAttempts bounds consecutive rejected IPs for one device; 0 means unlimited
	MaxIPAttempts int `mapstructure:"max_ip_attempts" yaml:"max_ip_attempts"`
	// EOFQuits treats end of input at the device prompt as the quit sentinel
	EOFQuits bool `mapstructure:"eof_quits" yaml:"eof_quits"`
}

// LoggingConfig controls diagnostic log output
type LoggingConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`
	Format     string `mapstructure:"format" yaml:"format"`
	Output     string `mapstructure:"output" yaml:"output"`
	File       string `mapstructure:"file" yaml:"file,omitempty"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" yaml:"max_size_mb,omitempty"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups,omitempty"`
	MaxAgeDays int    `mapstructure:"max_age_days" yaml:"max_age_days,omitempty"`
	Compress   bool   `mapstructure:"compress" yaml:"compress,omitempty"`
}

// DefaultConfig returns the settings used when nothing is configured
func DefaultConfig() *Config {
	return &Config{
		Inventory: InventoryConfig{
			Routers:  "equip_r.txt",
			Switches: "equip_s.txt",
		},
		Output: OutputConfig{
			Updated: "updated.txt",
			Errors:  "errors.txt",
			Format:  "json",
		},
		Session: SessionConfig{
			MaxIPAttempts: 0,
			EOFQuits:      true,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
			Output: "stderr",
		},
	}
}

// SetDefaults registers DefaultConfig values with v
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("inventory.routers", d.Inventory.Routers)
	v.SetDefault("inventory.switches", d.Inventory.Switches)
	v.SetDefault("output.updated", d.Output.Updated)
	v.SetDefault("output.errors", d.Output.Errors)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("session.max_ip_attempts", d.Session.MaxIPAttempts)
	v.SetDefault("session.eof_quits", d.Session.EOFQuits)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.output", d.Logging.Output)
	v.SetDefault("logging.max_size_mb", 10)
	v.SetDefault("logging.max_backups", 3)
	v.SetDefault("logging.max_age_days", 28)
	v.SetDefault("logging.file", "")
	v.SetDefault("logging.compress", false)
}

// Load resolves the configuration held by v. The config file is taken from
// the "config" key, then FindConfigPath. The returned path is empty when no
// file was read.
func Load(v *viper.Viper) (*Config, string, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path := v.GetString("config")
	if path == "" {
		path = FindConfigPath()
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, path, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, path, err
	}

	return &cfg, path, nil
}

// LoadEnvFiles loads each existing .env file into the process environment.
// Variables that are already set are not overridden; missing files are skipped.
func LoadEnvFiles(paths ...string) error {
	for _, path := range paths {
		if !fileExists(path) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
	}
	return nil
}

// Save writes config to the specified path
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// Validate rejects settings the program cannot act on
func (c *Config) Validate() error {
	var errs []error
	switch strings.ToLower(c.Output.Format) {
	case "json", "yaml", "yml":
	default:
		errs = append(errs, fmt.Errorf("output.format %q must be json or yaml", c.Output.Format))
	}
	if c.Session.MaxIPAttempts < 0 {
		errs = append(errs, fmt.Errorf("session.max_ip_attempts must be >= 0, got %d", c.Session.MaxIPAttempts))
	}
	if c.Output.Updated == c.Output.Errors {
		errs = append(errs, fmt.Errorf("output.updated and output.errors must differ (both %q)", c.Output.Updated))
	}
	return errors.Join(errs...)
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if c.Output.Updated == "" {
		c.Output.Updated = d.Output.Updated
	}
	if c.Output.Errors == "" {
		c.Output.Errors = d.Output.Errors
	}
	if c.Output.Format == "" {
		c.Output.Format = d.Output.Format
	}
	if c.Logging.Level == "" {
		c.Logging.Level = d.Logging.Level
	}
	if c.Logging.Format == "" {
		c.Logging.Format = d.Logging.Format
	}
	if c.Logging.Output == "" {
		c.Logging.Output = d.Logging.Output
	}
}
