// Package config handles lladdr configuration loading using viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the lladdr configuration.
// Maps to the `lladdr:` root key in YAML.
type Config struct {
	Output    string         `mapstructure:"output"`     // text / json / yaml
	SysfsRoot string         `mapstructure:"sysfs_root"` // where class/net/<if>/type is read from
	Defaults  DefaultsConfig `mapstructure:"defaults"`
	Log       LogConfig      `mapstructure:"log"`
}

// DefaultsConfig holds values used when a command flag is not given.
type DefaultsConfig struct {
	Protocol string `mapstructure:"protocol"` // name or number, see sockaddr.ParseProtocol
	SnapLen  uint32 `mapstructure:"snap_len"`
}

// ─── Log ───

// LogConfig contains logging settings.
type LogConfig struct {
	Level   string           `mapstructure:"level"`  // debug / info / warn / error
	Format  string           `mapstructure:"format"` // json / text
	Outputs LogOutputsConfig `mapstructure:"outputs"`
}

// LogOutputsConfig contains structured log output destinations.
type LogOutputsConfig struct {
	File FileOutputConfig `mapstructure:"file"`
}

// FileOutputConfig configures file log output.
type FileOutputConfig struct {
	Enabled  bool           `mapstructure:"enabled"`
	Path     string         `mapstructure:"path"`
	Rotation RotationConfig `mapstructure:"rotation"`
}

// RotationConfig configures log file rotation.
type RotationConfig struct {
	MaxSizeMB  int  `mapstructure:"max_size_mb"`
	MaxAgeDays int  `mapstructure:"max_age_days"`
	MaxBackups int  `mapstructure:"max_backups"`
	Compress   bool `mapstructure:"compress"`
}

// ─── Loading ───

type configRoot struct {
	Lladdr Config `mapstructure:"lladdr"`
}

// Load loads configuration from path. An empty path loads defaults and
// environment overrides only. Env vars use the LLADDR_ prefix
// (key "lladdr.log.level" → LLADDR_LOG_LEVEL).
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	var root configRoot
	if err := v.Unmarshal(&root); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg := root.Lladdr

	if err := cfg.ValidateAndApplyDefaults(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default values. Every key is registered so AutomaticEnv
// can override it during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("lladdr.output", "text")
	v.SetDefault("lladdr.sysfs_root", "/sys")
	v.SetDefault("lladdr.defaults.protocol", "all")
	v.SetDefault("lladdr.defaults.snap_len", 65535)

	v.SetDefault("lladdr.log.level", "warn")
	v.SetDefault("lladdr.log.format", "text")
	v.SetDefault("lladdr.log.outputs.file.enabled", false)
	v.SetDefault("lladdr.log.outputs.file.path", "")
	v.SetDefault("lladdr.log.outputs.file.rotation.max_size_mb", 10)
	v.SetDefault("lladdr.log.outputs.file.rotation.max_age_days", 7)
	v.SetDefault("lladdr.log.outputs.file.rotation.max_backups", 3)
	v.SetDefault("lladdr.log.outputs.file.rotation.compress", true)
}

// ValidateAndApplyDefaults validates configuration values.
func (cfg *Config) ValidateAndApplyDefaults() error {
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Log.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug/info/warn/error)", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" && cfg.Log.Format != "text" {
		return fmt.Errorf("invalid log format: %s (must be json/text)", cfg.Log.Format)
	}
	if cfg.Log.Outputs.File.Enabled && cfg.Log.Outputs.File.Path == "" {
		return fmt.Errorf("log.outputs.file.path is required when file output is enabled")
	}

	switch cfg.Output {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("invalid output: %s (must be text/json/yaml)", cfg.Output)
	}

	if cfg.SysfsRoot == "" {
		cfg.SysfsRoot = "/sys"
	}
	if cfg.Defaults.SnapLen == 0 {
		cfg.Defaults.SnapLen = 65535
	}
	return nil
}
